package membership

import (
	"time"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"gorm.io/datatypes"
)

// Membership status labels. These strings are stored in member.membership_status and shown as-is.
const (
	StatusUnregistered = "미등록"
	StatusActive       = "활성"
	StatusExpired      = "만료"
	StatusUnset        = "미입력"
)

// CalculateStatus derives the status of a pass from its end date and remaining sessions.
//
//	no end date, no/zero sessions       -> 미등록
//	sessions <= 0 or end date < today   -> 만료
//	only one of the two present         -> 미입력
//	otherwise                           -> 활성
func CalculateStatus(endDate *datatypes.Date, remainingSessions *int, today datatypes.Date) string {
	noSessions := remainingSessions == nil || *remainingSessions == 0

	if endDate == nil && noSessions {
		return StatusUnregistered
	}
	if remainingSessions != nil && *remainingSessions <= 0 {
		return StatusExpired
	}
	if endDate != nil && time.Time(*endDate).Before(time.Time(today)) {
		return StatusExpired
	}
	if endDate == nil || remainingSessions == nil {
		return StatusUnset
	}
	return StatusActive
}

// Snapshot is the denormalized copy of the latest pass kept on the member row
type Snapshot struct {
	Status            string
	RemainingSessions *int
	ExpiresAt         *datatypes.Date
}

// Summarize builds the member cache from the latest history row; nil means no pass was ever bought.
func Summarize(latest *model.MembershipHistory, today datatypes.Date) Snapshot {
	if latest == nil {
		return Snapshot{Status: StatusUnregistered}
	}
	return Snapshot{
		Status:            CalculateStatus(latest.EndDate, latest.RemainingSessions, today),
		RemainingSessions: latest.RemainingSessions,
		ExpiresAt:         latest.EndDate,
	}
}

// Matches reports whether the member row cache already equals s
func (s Snapshot) Matches(m *model.Member) bool {
	if m.MembershipStatus != s.Status {
		return false
	}
	if (m.RemainingSessions == nil) != (s.RemainingSessions == nil) {
		return false
	}
	if m.RemainingSessions != nil && *m.RemainingSessions != *s.RemainingSessions {
		return false
	}
	if (m.ExpiresAt == nil) != (s.ExpiresAt == nil) {
		return false
	}
	return m.ExpiresAt == nil || time.Time(*m.ExpiresAt).Equal(time.Time(*s.ExpiresAt))
}
