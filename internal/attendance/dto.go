package attendance

import (
	"time"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
)

type UpdateRequest struct {
	ReservationID    uint32  `json:"reservation_id" binding:"required"`
	AttendanceStatus string  `json:"attendance_status" binding:"required,oneof=pending attended absent"`
	CheckedBy        *string `json:"checked_by" binding:"omitempty,max=100"`
}

type AttendanceResponse struct {
	ReservationID       uint32     `json:"reservation_id"`
	ClassID             uint32     `json:"class_id"`
	MemberID            *uint32    `json:"member_id"`
	Name                string     `json:"name"`
	Phone               string     `json:"phone"`
	AttendanceStatus    string     `json:"attendance_status"`
	AttendanceCheckedAt *time.Time `json:"attendance_checked_at"`
	AttendanceCheckedBy *string    `json:"attendance_checked_by"`
}

type RosterResponse struct {
	ClassID   uint32               `json:"class_id"`
	Title     string               `json:"title"`
	ClassDate string               `json:"class_date"`
	StartTime string               `json:"start_time"`
	Capacity  int                  `json:"capacity"`
	Attended  int                  `json:"attended"`
	Absent    int                  `json:"absent"`
	Pending   int                  `json:"pending"`
	Entries   []AttendanceResponse `json:"entries"`
}

func toAttendanceResponse(r *model.Reservation) AttendanceResponse {
	return AttendanceResponse{
		ReservationID:       r.ID,
		ClassID:             r.ClassID,
		MemberID:            r.MemberID,
		Name:                r.Name,
		Phone:               r.Phone,
		AttendanceStatus:    r.AttendanceStatus,
		AttendanceCheckedAt: r.AttendanceCheckedAt,
		AttendanceCheckedBy: r.AttendanceCheckedBy,
	}
}
