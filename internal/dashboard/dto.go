package dashboard

import "github.com/changhyeonkim/studio-manager/go-api-server/internal/class"

// expiringWithinDays is the look-ahead window of the "expiring soon" list
const expiringWithinDays = 7

type SettlementQuery struct {
	Month string `form:"month" binding:"omitempty,month"` // YYYY-MM, 기본값: 이번 달
}

type MemberCounts struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Expired      int `json:"expired"`
	Unregistered int `json:"unregistered"`
	Unset        int `json:"unset"`
	Temporary    int `json:"temporary"`
}

type ExpiringMember struct {
	MemberID          uint32 `json:"member_id"`
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	ExpiresAt         string `json:"expires_at"`
	RemainingSessions *int   `json:"remaining_sessions"`
}

type SummaryResponse struct {
	Date         string                `json:"date"`
	TodayClasses []class.ClassResponse `json:"today_classes"`
	Members      MemberCounts          `json:"members"`
	ExpiringSoon []ExpiringMember      `json:"expiring_soon"`
}

type InstructorSettlement struct {
	InstructorID   *uint32 `json:"instructor_id"`
	InstructorName string  `json:"instructor_name"`
	PayPerClass    int     `json:"pay_per_class"`
	Classes        int     `json:"classes"`
	Reservations   int     `json:"reservations"`
	Attended       int     `json:"attended"`
	Absent         int     `json:"absent"`
	Pay            int     `json:"pay"`
}

type MembershipSales struct {
	Count   int `json:"count"`
	Revenue int `json:"revenue"`
}

type SettlementResponse struct {
	Month           string                 `json:"month"`
	Instructors     []InstructorSettlement `json:"instructors"`
	TotalClasses    int                    `json:"total_classes"`
	TotalPay        int                    `json:"total_pay"`
	MembershipSales MembershipSales        `json:"membership_sales"`
}
