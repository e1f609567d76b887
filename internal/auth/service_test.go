package auth

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock user repository for testing
type mockUserRepository struct {
	passwords   map[string]string // email -> password hash
	userIDs     map[string]int64  // email -> userID
	usersByID   map[int64]*User
	managers    map[string]int64 // manager email -> userID
	created     []*User
	returnError error
	nextID      int64
}

func newMockUserRepository() *mockUserRepository {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.DefaultCost)

	managerID := int64(1)
	return &mockUserRepository{
		passwords: map[string]string{
			"manager@example.com":   string(hashedPassword),
			"associate@example.com": string(hashedPassword),
		},
		userIDs: map[string]int64{
			"manager@example.com":   1,
			"associate@example.com": 2,
		},
		usersByID: map[int64]*User{
			1: {ID: 1, Email: "manager@example.com", FullName: "Mandy", Role: RoleManager},
			2: {ID: 2, Email: "associate@example.com", FullName: "Asha", Role: RoleAssociate, ManagerID: &managerID},
		},
		managers: map[string]int64{
			"manager@example.com": 1,
		},
		nextID: 10,
	}
}

func (m *mockUserRepository) GetPasswordForEmail(email string) (string, int64, error) {
	if m.returnError != nil {
		return "", 0, m.returnError
	}
	if hash, ok := m.passwords[email]; ok {
		return hash, m.userIDs[email], nil
	}
	return "", 0, errors.New("user not found")
}

func (m *mockUserRepository) GetUserByID(userID int64) (*User, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	if u, ok := m.usersByID[userID]; ok {
		return u, nil
	}
	return nil, ErrProfileNotFound
}

func (m *mockUserRepository) GetManagerIDByEmail(email string) (int64, error) {
	if id, ok := m.managers[email]; ok {
		return id, nil
	}
	return 0, errors.New("manager not found")
}

func (m *mockUserRepository) EmailExists(email string) (bool, error) {
	if m.returnError != nil {
		return false, m.returnError
	}
	_, ok := m.passwords[email]
	return ok, nil
}

func (m *mockUserRepository) CreateUser(u *User, passwordHash string) error {
	if m.returnError != nil {
		return m.returnError
	}
	u.ID = m.nextID
	m.nextID++
	m.passwords[u.Email] = passwordHash
	m.userIDs[u.Email] = u.ID
	m.usersByID[u.ID] = u
	m.created = append(m.created, u)
	return nil
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		mockRepo *mockUserRepository
		tokenGen *JWTTokenGenerator
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		tokenGen = NewJWTTokenGenerator(
			"test-access-secret-0123456789abcdef",
			"test-refresh-secret-0123456789abcdef",
			15*time.Minute,
			7*24*time.Hour,
		)
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = NewService(mockRepo, tokenGen, bcrypt.MinCost, logger)
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.Context("with valid credentials", func() {
			ginkgo.It("should return an access and refresh token pair", func() {
				tokens, err := service.Authenticate(LoginDTO{
					Email:    "associate@example.com",
					Password: "correct_password",
				})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(tokens.AccessToken).ToNot(gomega.BeEmpty())
				gomega.Expect(tokens.RefreshToken).ToNot(gomega.BeEmpty())
			})

			ginkgo.It("should return tokens that validate to the caller's claims", func() {
				tokens, err := service.Authenticate(LoginDTO{
					Email:    "manager@example.com",
					Password: "correct_password",
				})
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				claims, err := service.ValidateAccessToken(tokens.AccessToken)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.UserID).To(gomega.Equal(int64(1)))
				gomega.Expect(claims.Email).To(gomega.Equal("manager@example.com"))
			})
		})

		ginkgo.Context("with a wrong password", func() {
			ginkgo.It("should return invalid credentials", func() {
				_, err := service.Authenticate(LoginDTO{
					Email:    "associate@example.com",
					Password: "wrong_password",
				})

				gomega.Expect(err).To(gomega.MatchError(ErrInvalidCredentials))
			})
		})

		ginkgo.Context("with an unknown email", func() {
			ginkgo.It("should return invalid credentials, not a lookup error", func() {
				_, err := service.Authenticate(LoginDTO{
					Email:    "ghost@example.com",
					Password: "correct_password",
				})

				gomega.Expect(err).To(gomega.MatchError(ErrInvalidCredentials))
			})
		})
	})

	ginkgo.Describe("SignUp", func() {
		ginkgo.Context("as a manager", func() {
			ginkgo.It("should create the account without manager linkage", func() {
				u, err := service.SignUp(SignupDTO{
					Email:    "newmanager@example.com",
					Password: "longenough",
					FullName: "New Manager",
					Role:     RoleManager,
				})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(u.ID).To(gomega.BeNumerically(">", 0))
				gomega.Expect(u.ManagerID).To(gomega.BeNil())
			})
		})

		ginkgo.Context("as an associate", func() {
			ginkgo.It("should link to the named manager", func() {
				u, err := service.SignUp(SignupDTO{
					Email:        "newassociate@example.com",
					Password:     "longenough",
					FullName:     "New Associate",
					Role:         RoleAssociate,
					ManagerEmail: "manager@example.com",
				})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(u.ManagerID).ToNot(gomega.BeNil())
				gomega.Expect(*u.ManagerID).To(gomega.Equal(int64(1)))
			})

			ginkgo.It("should fail when the manager email does not resolve", func() {
				_, err := service.SignUp(SignupDTO{
					Email:        "orphan@example.com",
					Password:     "longenough",
					FullName:     "Orphan",
					Role:         RoleAssociate,
					ManagerEmail: "nobody@example.com",
				})

				gomega.Expect(err).To(gomega.MatchError(ErrManagerNotFound))
				gomega.Expect(mockRepo.created).To(gomega.BeEmpty())
			})
		})

		ginkgo.Context("with an already registered email", func() {
			ginkgo.It("should return the already registered error", func() {
				_, err := service.SignUp(SignupDTO{
					Email:    "associate@example.com",
					Password: "longenough",
					FullName: "Duplicate",
					Role:     RoleManager,
				})

				gomega.Expect(err).To(gomega.MatchError(ErrAlreadyRegistered))
			})
		})

		ginkgo.Context("with a short password", func() {
			ginkgo.It("should fail validation before touching the store", func() {
				_, err := service.SignUp(SignupDTO{
					Email:    "short@example.com",
					Password: "short",
					FullName: "Shorty",
					Role:     RoleManager,
				})

				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(mockRepo.created).To(gomega.BeEmpty())
			})
		})
	})

	ginkgo.Describe("RefreshTokens", func() {
		ginkgo.It("should rotate the pair for a valid refresh token", func() {
			tokens, err := service.Authenticate(LoginDTO{
				Email:    "associate@example.com",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			rotated, err := service.RefreshTokens(tokens.RefreshToken)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(rotated.AccessToken).ToNot(gomega.BeEmpty())
			gomega.Expect(rotated.RefreshToken).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("should reject garbage tokens", func() {
			_, err := service.RefreshTokens("not-a-token")
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("ResolveUser", func() {
		ginkgo.It("should return the profile for a known user", func() {
			u, err := service.ResolveUser(2)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(u.Role).To(gomega.Equal(RoleAssociate))
			gomega.Expect(u.RoleResolved()).To(gomega.BeTrue())
		})

		ginkgo.It("should surface a missing profile as its own error", func() {
			_, err := service.ResolveUser(999)

			gomega.Expect(err).To(gomega.MatchError(ErrProfileNotFound))
		})
	})
})
