package model

import "gorm.io/datatypes"

// MembershipHistory is one purchased pass period.
// Status is not stored; it is derived from EndDate and RemainingSessions on read.
type MembershipHistory struct {
	ID       uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID uint32 `gorm:"column:member_id;not null;index:idx_membership_history_member"`

	MembershipType    string          `gorm:"column:membership_type;type:VARCHAR(50);not null"` // 예: 10회권, 30회권
	StartDate         datatypes.Date  `gorm:"column:start_date;not null"`
	EndDate           *datatypes.Date `gorm:"column:end_date"`
	TotalSessions     int             `gorm:"column:total_sessions;not null;default:0"`
	RemainingSessions *int            `gorm:"column:remaining_sessions"`
	Price             int             `gorm:"column:price;not null;default:0"` // 원
	Memo              *string         `gorm:"column:memo;type:VARCHAR(500)"`

	Member *Member `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`

	BaseEntity
}

func (*MembershipHistory) TableName() string {
	return "membership_history"
}
