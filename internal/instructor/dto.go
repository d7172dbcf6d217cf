package instructor

import "github.com/changhyeonkim/studio-manager/go-api-server/internal/model"

type CreateInstructorRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Phone       *string `json:"phone" binding:"omitempty,phone"`
	PayPerClass int     `json:"pay_per_class" binding:"gte=0"`
	IsActive    *bool   `json:"is_active"` // 기본값: true
	Memo        *string `json:"memo" binding:"omitempty,max=500"`
}

type UpdateInstructorRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Phone       *string `json:"phone" binding:"omitempty,phone"`
	PayPerClass *int    `json:"pay_per_class" binding:"omitempty,gte=0"`
	IsActive    *bool   `json:"is_active"`
	Memo        *string `json:"memo" binding:"omitempty,max=500"`
}

type ListInstructorsQuery struct {
	ActiveOnly bool `form:"active_only"`
}

type InstructorResponse struct {
	ID          uint32  `json:"id"`
	Name        string  `json:"name"`
	Phone       *string `json:"phone"`
	PayPerClass int     `json:"pay_per_class"`
	IsActive    bool    `json:"is_active"`
	Memo        *string `json:"memo,omitempty"`
}

func toInstructorResponse(i *model.Instructor) InstructorResponse {
	return InstructorResponse{
		ID:          i.ID,
		Name:        i.Name,
		Phone:       i.Phone,
		PayPerClass: i.PayPerClass,
		IsActive:    i.IsActive,
		Memo:        i.Memo,
	}
}
