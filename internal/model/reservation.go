package model

import "time"

const (
	AttendancePending  = "pending"
	AttendanceAttended = "attended"
	AttendanceAbsent   = "absent"
)

// Reservation books a person into a class.
// The person is identified redundantly by name/phone and optionally by Kakao user id or member id.
type Reservation struct {
	ID          uint32  `gorm:"column:id;primaryKey;autoIncrement"`
	ClassID     uint32  `gorm:"column:class_id;not null;index:idx_reservation_class"`
	MemberID    *uint32 `gorm:"column:member_id;index"`
	KakaoUserID *string `gorm:"column:kakao_user_id;type:VARCHAR(100);index"`
	Name        string  `gorm:"column:name;type:VARCHAR(100);not null"`
	Phone       string  `gorm:"column:phone;type:VARCHAR(20);not null"`

	AttendanceStatus    string     `gorm:"column:attendance_status;type:VARCHAR(10);not null;default:'pending'"`
	AttendanceCheckedAt *time.Time `gorm:"column:attendance_checked_at"`
	AttendanceCheckedBy *string    `gorm:"column:attendance_checked_by;type:VARCHAR(100)"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`

	Class  *Class  `gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE"`
	Member *Member `gorm:"foreignKey:MemberID;constraint:OnDelete:SET NULL"`
}

func (*Reservation) TableName() string {
	return "reservation"
}

// IsValidAttendanceStatus reports whether s is one of pending, attended, absent
func IsValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePending, AttendanceAttended, AttendanceAbsent:
		return true
	}
	return false
}
