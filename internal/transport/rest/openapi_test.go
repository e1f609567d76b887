package rest_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestOpenAPIDocument(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "OpenAPI Document Suite")
}

var _ = Describe("api/openapi.yml", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should be a valid OpenAPI 3 document", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("should describe every served route", func() {
		for _, path := range []string{
			"/auth/signup",
			"/auth/login",
			"/auth/refresh",
			"/auth/logout",
			"/users/me",
			"/users/managers",
			"/users/associates",
			"/schedules/{userID}",
			"/leaves",
			"/leaves/{id}/approve",
			"/leaves/{id}/reject",
			"/leave-types",
			"/calendar",
			"/health",
			"/ping",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})

	It("should enumerate the leave status values", func() {
		leaveSchema := doc.Components.Schemas["Leave"]
		Expect(leaveSchema).NotTo(BeNil())
		status := leaveSchema.Value.Properties["status"]
		Expect(status).NotTo(BeNil())
		Expect(status.Value.Enum).To(ConsistOf("pending", "approved", "rejected"))
	})
})
