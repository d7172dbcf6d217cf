package model

import "gorm.io/datatypes"

// Member represents a studio customer.
// MembershipStatus, RemainingSessions and ExpiresAt are a cache of the latest membership_history row.
type Member struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Name        string  `gorm:"column:name;type:VARCHAR(100);not null"`         // 이름
	Phone       string  `gorm:"column:phone;type:VARCHAR(20);not null;index"`   // 핸드폰 번호 (010-XXXX-XXXX)
	KakaoUserID *string `gorm:"column:kakao_user_id;type:VARCHAR(100);uniqueIndex:idx_member_kakao_user_id"`
	IsTemporary bool    `gorm:"column:is_temporary;not null;default:false"` // 카카오 인증 시 자동 생성된 임시 회원
	Memo        *string `gorm:"column:memo;type:VARCHAR(1000)"`

	// membership cache
	MembershipStatus  string          `gorm:"column:membership_status;type:VARCHAR(20);not null;default:'미등록'"`
	RemainingSessions *int            `gorm:"column:remaining_sessions"`
	ExpiresAt         *datatypes.Date `gorm:"column:expires_at"`

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMember creates a roster member with no membership yet
func NewMember(name, phone string) *Member {
	return &Member{
		Name:             name,
		Phone:            phone,
		MembershipStatus: "미등록",
	}
}

// NewTemporaryMember creates a placeholder member already linked to a Kakao user
func NewTemporaryMember(name, phone, kakaoUserID string) *Member {
	m := NewMember(name, phone)
	m.KakaoUserID = &kakaoUserID
	m.IsTemporary = true
	return m
}
