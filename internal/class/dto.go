package class

import (
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/dateutil"
)

type CreateClassRequest struct {
	Title        string  `json:"title" binding:"required,max=100"`
	ClassDate    string  `json:"class_date" binding:"required,date"`
	StartTime    string  `json:"start_time" binding:"required,hhmm"`
	EndTime      string  `json:"end_time" binding:"required,hhmm"`
	Capacity     *int    `json:"capacity" binding:"omitempty,min=1,max=100"` // 기본값: center_config.default_capacity
	InstructorID *uint32 `json:"instructor_id"`
	Memo         *string `json:"memo" binding:"omitempty,max=500"`
}

type UpdateClassRequest struct {
	Title        *string `json:"title" binding:"omitempty,max=100"`
	ClassDate    *string `json:"class_date" binding:"omitempty,date"`
	StartTime    *string `json:"start_time" binding:"omitempty,hhmm"`
	EndTime      *string `json:"end_time" binding:"omitempty,hhmm"`
	Capacity     *int    `json:"capacity" binding:"omitempty,min=1,max=100"`
	InstructorID *uint32 `json:"instructor_id"`
	Memo         *string `json:"memo" binding:"omitempty,max=500"`
}

type ListClassesQuery struct {
	From string `form:"from" binding:"omitempty,date"`
	To   string `form:"to" binding:"omitempty,date"`
}

type ClassResponse struct {
	ID             uint32  `json:"id"`
	Title          string  `json:"title"`
	ClassDate      string  `json:"class_date"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	Capacity       int     `json:"capacity"`
	ReservedCount  int     `json:"reserved_count"`
	RemainingSeats int     `json:"remaining_seats"`
	InstructorID   *uint32 `json:"instructor_id"`
	InstructorName *string `json:"instructor_name"`
	Memo           *string `json:"memo,omitempty"`
}

// ToClassResponse renders a class with its current reservation count
func ToClassResponse(c *model.Class, reserved int) ClassResponse {
	remaining := c.Capacity - reserved
	if remaining < 0 {
		remaining = 0
	}

	response := ClassResponse{
		ID:             c.ID,
		Title:          c.Title,
		ClassDate:      dateutil.Format(c.ClassDate),
		StartTime:      c.StartTime,
		EndTime:        c.EndTime,
		Capacity:       c.Capacity,
		ReservedCount:  reserved,
		RemainingSeats: remaining,
		InstructorID:   c.InstructorID,
		Memo:           c.Memo,
	}
	if c.Instructor != nil {
		response.InstructorName = &c.Instructor.Name
	}
	return response
}
