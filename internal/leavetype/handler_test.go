package leavetype_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	leavetypeDatamodel "github.com/frahmantamala/shift-roster/internal/core/datamodel/leavetype"
	"github.com/frahmantamala/shift-roster/internal/leavetype"
	leavetypePostgres "github.com/frahmantamala/shift-roster/internal/leavetype/postgres"
	"github.com/frahmantamala/shift-roster/internal/transport"
)

func TestLeaveType(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "LeaveType Suite")
}

// SQLiteLeaveType is a SQLite-compatible model for testing
type SQLiteLeaveType struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"column:name;uniqueIndex;not null"`
	Description string    `gorm:"column:description"`
	IsActive    bool      `gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (SQLiteLeaveType) TableName() string {
	return "leave_types"
}

var _ = Describe("LeaveType Handler Integration", func() {
	var (
		db      *gorm.DB
		repo    leavetype.RepositoryAPI
		service *leavetype.Service
		handler *leavetype.Handler
		slogger *slog.Logger
	)

	BeforeEach(func() {
		var err error
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteLeaveType{})
		Expect(err).NotTo(HaveOccurred())

		repo = leavetypePostgres.NewLeaveTypeRepository(db)
		service = leavetype.NewService(repo, slogger)
		baseHandler := &transport.BaseHandler{Logger: slogger}
		handler = leavetype.NewHandler(baseHandler, service)

		for _, lt := range []*leavetype.LeaveType{
			leavetype.NewLeaveType("Casual Leave", "Short-notice personal time off"),
			leavetype.NewLeaveType("Sick Leave", "Illness or medical appointments"),
		} {
			Expect(repo.Create(leavetype.ToDataModel(lt))).To(Succeed())
		}

		retired := &leavetypeDatamodel.LeaveType{
			Name:        "Retired Type",
			Description: "No longer offered",
			IsActive:    false,
		}
		Expect(repo.Create(retired)).To(Succeed())
	})

	It("should handle GET /leave-types and omit inactive types", func() {
		req := httptest.NewRequest(http.MethodGet, "/leave-types", nil)
		w := httptest.NewRecorder()

		handler.GetLeaveTypes(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var response leavetype.LeaveTypesResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())

		names := make([]string, len(response.LeaveTypes))
		for i, lt := range response.LeaveTypes {
			names[i] = lt.Name
		}
		Expect(names).To(ConsistOf("Casual Leave", "Sick Leave"))
	})

	Describe("IsValidLeaveType", func() {
		It("should accept an active type", func() {
			Expect(service.IsValidLeaveType("Sick Leave")).To(BeTrue())
		})

		It("should reject an inactive type", func() {
			Expect(service.IsValidLeaveType("Retired Type")).To(BeFalse())
		})

		It("should reject an unknown type", func() {
			Expect(service.IsValidLeaveType("Mystery Leave")).To(BeFalse())
		})
	})
})
