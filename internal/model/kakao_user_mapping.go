package model

import "time"

// KakaoUserMapping links a Kakao chat-bot user id to a member row
type KakaoUserMapping struct {
	ID          uint32     `gorm:"column:id;primaryKey;autoIncrement"`
	KakaoUserID string     `gorm:"column:kakao_user_id;type:VARCHAR(100);not null;uniqueIndex:idx_kakao_user_mapping_user"`
	MemberID    uint32     `gorm:"column:member_id;not null;index"`
	LastSeenAt  *time.Time `gorm:"column:last_seen_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null"`

	Member *Member `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

func (*KakaoUserMapping) TableName() string {
	return "kakao_user_mapping"
}
