package reservation

import (
	"time"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/dateutil"
)

type BookRequest struct {
	ClassID     uint32 `json:"class_id" binding:"required"`
	Name        string `json:"name" binding:"required,max=100"`
	Phone       string `json:"phone" binding:"required,phone"`
	KakaoUserID string `json:"kakao_user_id" binding:"omitempty,max=100"`
}

// CancelRequest carries the reservation id; kakao_user_id, when sent, must own the reservation
type CancelRequest struct {
	ReservationID uint32 `json:"reservation_id" binding:"required"`
	KakaoUserID   string `json:"kakao_user_id" binding:"omitempty,max=100"`
}

type AvailableClassesQuery struct {
	From string `form:"from" binding:"omitempty,date"`
	To   string `form:"to" binding:"omitempty,date"`
}

type MyReservationsQuery struct {
	KakaoUserID string `form:"kakao_user_id" binding:"required,max=100"`
	IncludePast bool   `form:"include_past"`
}

type ReservationResponse struct {
	ID               uint32    `json:"id"`
	ClassID          uint32    `json:"class_id"`
	ClassTitle       string    `json:"class_title,omitempty"`
	ClassDate        string    `json:"class_date,omitempty"`
	StartTime        string    `json:"start_time,omitempty"`
	EndTime          string    `json:"end_time,omitempty"`
	MemberID         *uint32   `json:"member_id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	AttendanceStatus string    `json:"attendance_status"`
	CreatedAt        time.Time `json:"created_at"`
}

type CancelResponse struct {
	ReservationID uint32 `json:"reservation_id"`
	ClassID       uint32 `json:"class_id"`
}

func toReservationResponse(r *model.Reservation, class *model.Class) ReservationResponse {
	response := ReservationResponse{
		ID:               r.ID,
		ClassID:          r.ClassID,
		MemberID:         r.MemberID,
		Name:             r.Name,
		Phone:            r.Phone,
		AttendanceStatus: r.AttendanceStatus,
		CreatedAt:        r.CreatedAt,
	}
	if class != nil {
		response.ClassTitle = class.Title
		response.ClassDate = dateutil.Format(class.ClassDate)
		response.StartTime = class.StartTime
		response.EndTime = class.EndTime
	}
	return response
}
