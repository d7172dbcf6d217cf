package kakao

import (
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/dateutil"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/logger"
)

// Auth results
const (
	ResultExisting = "existing"
	ResultLinked   = "linked"
	ResultCreated  = "created"
	ResultMultiple = "multiple"
)

// AuthRequest identifies a chat-bot user by phone; one of phone_last4 / full_phone is required
type AuthRequest struct {
	KakaoUserID string `json:"kakao_user_id" binding:"required,max=100"`
	PhoneLast4  string `json:"phone_last4" binding:"required_without=FullPhone,omitempty,len=4,numeric"`
	FullPhone   string `json:"full_phone" binding:"required_without=PhoneLast4,omitempty,phone"`
	Name        string `json:"name" binding:"omitempty,max=100"`
}

// LinkRequest picks one of the candidates returned by AuthRequest; the phone digits must be sent again
type LinkRequest struct {
	KakaoUserID string `json:"kakao_user_id" binding:"required,max=100"`
	MemberID    uint32 `json:"member_id" binding:"required"`
	PhoneLast4  string `json:"phone_last4" binding:"required_without=FullPhone,omitempty,len=4,numeric"`
	FullPhone   string `json:"full_phone" binding:"required_without=PhoneLast4,omitempty,phone"`
	Name        string `json:"name" binding:"omitempty,max=100"`
}

type MemberSummary struct {
	ID                uint32  `json:"id"`
	Name              string  `json:"name"`
	Phone             string  `json:"phone"`
	IsTemporary       bool    `json:"is_temporary"`
	MembershipStatus  string  `json:"membership_status"`
	RemainingSessions *int    `json:"remaining_sessions"`
	ExpiresAt         *string `json:"expires_at"`
}

// Candidate is shown to the chat user when several members share the phone digits
type Candidate struct {
	MemberID uint32 `json:"member_id"`
	Name     string `json:"name"`  // masked
	Phone    string `json:"phone"` // masked
}

type AuthResponse struct {
	Result     string         `json:"result"`
	Member     *MemberSummary `json:"member,omitempty"`
	Candidates []Candidate    `json:"candidates,omitempty"`
}

func toMemberSummary(m *model.Member) *MemberSummary {
	return &MemberSummary{
		ID:                m.ID,
		Name:              m.Name,
		Phone:             m.Phone,
		IsTemporary:       m.IsTemporary,
		MembershipStatus:  m.MembershipStatus,
		RemainingSessions: m.RemainingSessions,
		ExpiresAt:         dateutil.FormatPtr(m.ExpiresAt),
	}
}

func toCandidates(members []model.Member) []Candidate {
	candidates := make([]Candidate, 0, len(members))
	for i := range members {
		candidates = append(candidates, Candidate{
			MemberID: members[i].ID,
			Name:     logger.MaskName(members[i].Name),
			Phone:    logger.MaskPhone(members[i].Phone),
		})
	}
	return candidates
}
