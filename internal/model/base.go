package model

import (
	"time"
)

// GORM이 CreatedAt, UpdatedAt을 자동으로 관리
// CreatedBy, UpdatedBy는 관리자 API에서 로그인한 관리자 ID로 설정
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
	CreatedBy *uint32   `gorm:"column:created_by"`
	UpdatedBy *uint32   `gorm:"column:updated_by"`
}

// StampCreated records the admin who created the row. Zero means unknown (chat-bot or system).
func (b *BaseEntity) StampCreated(adminID uint32) {
	if adminID == 0 {
		return
	}
	b.CreatedBy = &adminID
	b.UpdatedBy = &adminID
}

// StampUpdated records the admin who last modified the row
func (b *BaseEntity) StampUpdated(adminID uint32) {
	if adminID == 0 {
		return
	}
	b.UpdatedBy = &adminID
}
