package membership

import (
	"time"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/dateutil"
	"gorm.io/datatypes"
)

type PurchaseRequest struct {
	MembershipType    string  `json:"membership_type" binding:"required,max=50"`
	StartDate         string  `json:"start_date" binding:"required,date"`
	EndDate           *string `json:"end_date" binding:"omitempty,date"`
	TotalSessions     int     `json:"total_sessions" binding:"gte=0,max=1000"`
	RemainingSessions *int    `json:"remaining_sessions" binding:"omitempty,gte=0"` // 기본값: total_sessions
	Price             int     `json:"price" binding:"gte=0"`
	Memo              *string `json:"memo" binding:"omitempty,max=500"`
}

type AdjustRequest struct {
	RemainingSessions *int    `json:"remaining_sessions" binding:"omitempty,gte=0"`
	EndDate           *string `json:"end_date" binding:"omitempty,date"`
	Memo              *string `json:"memo" binding:"omitempty,max=500"`
}

type HistoryResponse struct {
	ID                uint32    `json:"id"`
	MemberID          uint32    `json:"member_id"`
	MembershipType    string    `json:"membership_type"`
	StartDate         string    `json:"start_date"`
	EndDate           *string   `json:"end_date"`
	TotalSessions     int       `json:"total_sessions"`
	RemainingSessions *int      `json:"remaining_sessions"`
	Price             int       `json:"price"`
	Status            string    `json:"status"`
	Memo              *string   `json:"memo,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func toHistoryResponse(h *model.MembershipHistory, today datatypes.Date) HistoryResponse {
	return HistoryResponse{
		ID:                h.ID,
		MemberID:          h.MemberID,
		MembershipType:    h.MembershipType,
		StartDate:         dateutil.Format(h.StartDate),
		EndDate:           dateutil.FormatPtr(h.EndDate),
		TotalSessions:     h.TotalSessions,
		RemainingSessions: h.RemainingSessions,
		Price:             h.Price,
		Status:            CalculateStatus(h.EndDate, h.RemainingSessions, today),
		Memo:              h.Memo,
		CreatedAt:         h.CreatedAt,
	}
}
