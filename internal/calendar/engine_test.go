package calendar_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/shift-roster/internal/calendar"
	"github.com/frahmantamala/shift-roster/internal/leave"
	"github.com/frahmantamala/shift-roster/internal/schedule"
)

func TestCalendarEngine(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Calendar Engine Suite")
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

var _ = Describe("MonthStatuses", func() {
	var sched *schedule.Schedule

	BeforeEach(func() {
		// Sundays and Saturdays off, day shift
		sched = &schedule.Schedule{
			UserID:     2,
			Weekoff1:   0,
			Weekoff2:   6,
			ShiftStart: "09:00",
			ShiftEnd:   "18:00",
		}
	})

	Context("without an assigned schedule", func() {
		It("should mark every day unresolved", func() {
			days := calendar.MonthStatuses(2024, time.June, nil, nil)

			Expect(days).To(HaveLen(30))
			for _, d := range days {
				Expect(d.Status).To(Equal(calendar.StatusUnresolved))
				Expect(d.Detail).To(BeEmpty())
			}
		})
	})

	Context("with a schedule and no leaves", func() {
		It("should mark week-off weekdays as week-off", func() {
			days := calendar.MonthStatuses(2024, time.June, sched, nil)

			// June 2024 starts on a Saturday
			Expect(days[0].Date).To(Equal("2024-06-01"))
			Expect(days[0].Status).To(Equal(calendar.StatusWeekOff))
			Expect(days[1].Status).To(Equal(calendar.StatusWeekOff)) // Sunday the 2nd
			Expect(days[2].Status).To(Equal(calendar.StatusWorking)) // Monday the 3rd
		})

		It("should label working days with the shift window", func() {
			days := calendar.MonthStatuses(2024, time.June, sched, nil)

			Expect(days[2].Status).To(Equal(calendar.StatusWorking))
			Expect(days[2].Detail).To(Equal("09:00 - 18:00"))
		})

		It("should resolve every day of the month to some status", func() {
			days := calendar.MonthStatuses(2024, time.June, sched, nil)

			Expect(days).To(HaveLen(30))
			for _, d := range days {
				Expect(d.Status).ToNot(BeEmpty())
			}
		})
	})

	Context("with a pending leave", func() {
		It("should mark covered working days as pending leave with the type", func() {
			leaves := []*leave.Leave{{
				UserID:    2,
				LeaveType: "Sick Leave",
				StartDate: day("2024-06-10"),
				EndDate:   day("2024-06-12"),
				Status:    leave.StatusPending,
			}}

			days := calendar.MonthStatuses(2024, time.June, sched, leaves)

			// June 10-12 2024 are Monday through Wednesday
			for _, idx := range []int{9, 10, 11} {
				Expect(days[idx].Status).To(Equal(calendar.StatusLeavePending))
				Expect(days[idx].Detail).To(Equal("Sick Leave"))
			}
			Expect(days[12].Status).To(Equal(calendar.StatusWorking))
		})
	})

	Context("with an approved leave", func() {
		It("should mark covered days as approved leave", func() {
			leaves := []*leave.Leave{{
				UserID:    2,
				LeaveType: "Annual Leave",
				StartDate: day("2024-06-17"),
				EndDate:   day("2024-06-17"),
				Status:    leave.StatusApproved,
			}}

			days := calendar.MonthStatuses(2024, time.June, sched, leaves)

			Expect(days[16].Status).To(Equal(calendar.StatusLeaveApproved))
			Expect(days[16].Detail).To(Equal("Annual Leave"))
		})
	})

	Context("with a rejected leave", func() {
		It("should never mark any day from it", func() {
			leaves := []*leave.Leave{{
				UserID:    2,
				LeaveType: "Casual Leave",
				StartDate: day("2024-06-10"),
				EndDate:   day("2024-06-12"),
				Status:    leave.StatusRejected,
			}}

			days := calendar.MonthStatuses(2024, time.June, sched, leaves)

			for _, idx := range []int{9, 10, 11} {
				Expect(days[idx].Status).To(Equal(calendar.StatusWorking))
			}
		})
	})

	Context("when a leave spans a week-off day", func() {
		It("should keep week-off precedence over the leave", func() {
			// Friday 7th through Monday 10th covers a Sat+Sun week-off
			leaves := []*leave.Leave{{
				UserID:    2,
				LeaveType: "Annual Leave",
				StartDate: day("2024-06-07"),
				EndDate:   day("2024-06-10"),
				Status:    leave.StatusApproved,
			}}

			days := calendar.MonthStatuses(2024, time.June, sched, leaves)

			Expect(days[6].Status).To(Equal(calendar.StatusLeaveApproved)) // Friday 7th
			Expect(days[7].Status).To(Equal(calendar.StatusWeekOff))       // Saturday 8th
			Expect(days[8].Status).To(Equal(calendar.StatusWeekOff))       // Sunday 9th
			Expect(days[9].Status).To(Equal(calendar.StatusLeaveApproved)) // Monday 10th
		})
	})

	Context("with overlapping leaves on the same day", func() {
		It("should take the first matching record", func() {
			leaves := []*leave.Leave{
				{
					UserID:    2,
					LeaveType: "Sick Leave",
					StartDate: day("2024-06-10"),
					EndDate:   day("2024-06-10"),
					Status:    leave.StatusPending,
				},
				{
					UserID:    2,
					LeaveType: "Casual Leave",
					StartDate: day("2024-06-10"),
					EndDate:   day("2024-06-10"),
					Status:    leave.StatusApproved,
				},
			}

			days := calendar.MonthStatuses(2024, time.June, sched, leaves)

			Expect(days[9].Status).To(Equal(calendar.StatusLeavePending))
			Expect(days[9].Detail).To(Equal("Sick Leave"))
		})
	})

	Context("with a leave extending beyond the month", func() {
		It("should only mark days inside the month", func() {
			leaves := []*leave.Leave{{
				UserID:    2,
				LeaveType: "Annual Leave",
				StartDate: day("2024-06-27"),
				EndDate:   day("2024-07-03"),
				Status:    leave.StatusApproved,
			}}

			days := calendar.MonthStatuses(2024, time.June, sched, leaves)

			Expect(days).To(HaveLen(30))
			Expect(days[26].Status).To(Equal(calendar.StatusLeaveApproved)) // Thursday 27th
			Expect(days[27].Status).To(Equal(calendar.StatusLeaveApproved)) // Friday 28th
			Expect(days[28].Status).To(Equal(calendar.StatusWeekOff))       // Saturday 29th
		})
	})
})
