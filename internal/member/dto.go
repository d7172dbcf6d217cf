package member

import (
	"time"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/dateutil"
)

type CreateMemberRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=100"`
	Phone string  `json:"phone" binding:"required,phone"`
	Memo  *string `json:"memo" binding:"omitempty,max=1000"`
}

// UpdateMemberRequest only touches the fields that are present
type UpdateMemberRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone *string `json:"phone" binding:"omitempty,phone"`
	Memo  *string `json:"memo" binding:"omitempty,max=1000"`
}

type ListMembersQuery struct {
	Q      string `form:"q" binding:"omitempty,max=100"` // 이름 또는 전화번호 일부
	Status string `form:"status" binding:"omitempty,oneof=미등록 활성 만료 미입력"`
}

type MemberResponse struct {
	ID                uint32    `json:"id"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone"`
	KakaoLinked       bool      `json:"kakao_linked"`
	IsTemporary       bool      `json:"is_temporary"`
	MembershipStatus  string    `json:"membership_status"`
	RemainingSessions *int      `json:"remaining_sessions"`
	ExpiresAt         *string   `json:"expires_at"`
	Memo              *string   `json:"memo,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func toMemberResponse(m *model.Member) MemberResponse {
	return MemberResponse{
		ID:                m.ID,
		Name:              m.Name,
		Phone:             m.Phone,
		KakaoLinked:       m.KakaoUserID != nil,
		IsTemporary:       m.IsTemporary,
		MembershipStatus:  m.MembershipStatus,
		RemainingSessions: m.RemainingSessions,
		ExpiresAt:         dateutil.FormatPtr(m.ExpiresAt),
		Memo:              m.Memo,
		CreatedAt:         m.CreatedAt,
	}
}
