package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/shift-roster/internal/leave"
	leavePostgres "github.com/frahmantamala/shift-roster/internal/leave/postgres"
)

func TestLeaveRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Leave Repository Suite")
}

// SQLite-compatible models for testing
type SQLiteUser struct {
	ID           int64  `gorm:"primaryKey"`
	Email        string `gorm:"column:email;uniqueIndex;not null"`
	FullName     string `gorm:"column:full_name;not null"`
	PasswordHash string `gorm:"column:password_hash"`
	Role         string `gorm:"column:role"`
	ManagerID    *int64 `gorm:"column:manager_id"`
	IsActive     bool   `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (SQLiteUser) TableName() string {
	return "users"
}

type SQLiteLeave struct {
	ID          int64  `gorm:"primaryKey"`
	UserID      int64  `gorm:"column:user_id;index;not null"`
	LeaveType   string `gorm:"column:leave_type;not null"`
	StartDate   time.Time
	EndDate     time.Time
	Status      string `gorm:"column:status;default:pending"`
	Comment     *string
	ProcessedBy *int64
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SQLiteLeave) TableName() string {
	return "leaves"
}

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

var _ = Describe("Leave PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo leave.Repository
	)

	const (
		managerID      = int64(1)
		associateID    = int64(2)
		otherManagerID = int64(3)
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteUser{}, &SQLiteLeave{})
		Expect(err).NotTo(HaveOccurred())

		mgr := managerID
		Expect(db.Create(&SQLiteUser{ID: managerID, Email: "manager@mail.com", FullName: "Maya Manager", Role: "manager"}).Error).To(Succeed())
		Expect(db.Create(&SQLiteUser{ID: associateID, Email: "associate@mail.com", FullName: "Arun Associate", Role: "associate", ManagerID: &mgr}).Error).To(Succeed())
		Expect(db.Create(&SQLiteUser{ID: otherManagerID, Email: "other@mail.com", FullName: "Omar Other", Role: "manager"}).Error).To(Succeed())

		repo = leavePostgres.NewLeaveRepository(db)
	})

	Describe("Create and GetByID", func() {
		It("should persist the leave and assign an ID", func() {
			l := &leave.Leave{
				UserID:    associateID,
				LeaveType: "Sick Leave",
				StartDate: date("2024-06-10"),
				EndDate:   date("2024-06-12"),
				Status:    leave.StatusPending,
			}

			Expect(repo.Create(l)).To(Succeed())
			Expect(l.ID).To(BeNumerically(">", 0))

			found, err := repo.GetByID(l.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.LeaveType).To(Equal("Sick Leave"))
			Expect(found.Status).To(Equal(leave.StatusPending))
		})

		It("should error for a missing ID", func() {
			_, err := repo.GetByID(12345)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetForManager", func() {
		BeforeEach(func() {
			Expect(repo.Create(&leave.Leave{
				UserID:    associateID,
				LeaveType: "Casual Leave",
				StartDate: date("2024-06-03"),
				EndDate:   date("2024-06-03"),
				Status:    leave.StatusPending,
			})).To(Succeed())
		})

		It("should list leaves of linked associates with the owner's name", func() {
			leaves, err := repo.GetForManager(managerID, 20, 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(leaves).To(HaveLen(1))
			Expect(leaves[0].OwnerName).To(Equal("Arun Associate"))
		})

		It("should return nothing for a manager without linked associates", func() {
			leaves, err := repo.GetForManager(otherManagerID, 20, 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(leaves).To(BeEmpty())
		})
	})

	Describe("GetByUserIDIntersecting", func() {
		BeforeEach(func() {
			Expect(repo.Create(&leave.Leave{
				UserID:    associateID,
				LeaveType: "Annual Leave",
				StartDate: date("2024-05-28"),
				EndDate:   date("2024-06-02"),
				Status:    leave.StatusApproved,
			})).To(Succeed())
			Expect(repo.Create(&leave.Leave{
				UserID:    associateID,
				LeaveType: "Sick Leave",
				StartDate: date("2024-07-01"),
				EndDate:   date("2024-07-02"),
				Status:    leave.StatusPending,
			})).To(Succeed())
		})

		It("should include leaves overlapping the range edge", func() {
			leaves, err := repo.GetByUserIDIntersecting(associateID, date("2024-06-01"), date("2024-06-30"))

			Expect(err).NotTo(HaveOccurred())
			Expect(leaves).To(HaveLen(1))
			Expect(leaves[0].LeaveType).To(Equal("Annual Leave"))
		})

		It("should exclude leaves entirely outside the range", func() {
			leaves, err := repo.GetByUserIDIntersecting(associateID, date("2024-08-01"), date("2024-08-31"))

			Expect(err).NotTo(HaveOccurred())
			Expect(leaves).To(BeEmpty())
		})
	})

	Describe("GetOwnerManagerID", func() {
		It("should resolve the associate's manager", func() {
			id, err := repo.GetOwnerManagerID(associateID)

			Expect(err).NotTo(HaveOccurred())
			Expect(id).NotTo(BeNil())
			Expect(*id).To(Equal(managerID))
		})

		It("should return nil for a user without a manager", func() {
			id, err := repo.GetOwnerManagerID(managerID)

			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(BeNil())
		})
	})

	Describe("UpdateStatus", func() {
		It("should set the status and processing fields", func() {
			l := &leave.Leave{
				UserID:    associateID,
				LeaveType: "Sick Leave",
				StartDate: date("2024-06-10"),
				EndDate:   date("2024-06-10"),
				Status:    leave.StatusPending,
			}
			Expect(repo.Create(l)).To(Succeed())

			processedAt := time.Now()
			Expect(repo.UpdateStatus(l.ID, leave.StatusApproved, managerID, processedAt)).To(Succeed())

			found, err := repo.GetByID(l.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Status).To(Equal(leave.StatusApproved))
			Expect(found.ProcessedBy).NotTo(BeNil())
			Expect(*found.ProcessedBy).To(Equal(managerID))
			Expect(found.ProcessedAt).NotTo(BeNil())
		})
	})
})
