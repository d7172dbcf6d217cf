package instructor

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/validator"
	"gorm.io/gorm"
)

type InstructorService struct {
	db                   *gorm.DB
	instructorRepository *InstructorRepository
}

func NewInstructorService(db *gorm.DB, instructorRepository *InstructorRepository) *InstructorService {
	return &InstructorService{
		db:                   db,
		instructorRepository: instructorRepository,
	}
}

func (s *InstructorService) List(ctx context.Context, query *ListInstructorsQuery) ([]InstructorResponse, error) {
	instructors, err := s.instructorRepository.List(ctx, s.db, query.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("강사 목록 조회 실패: %w", err)
	}

	responses := make([]InstructorResponse, 0, len(instructors))
	for i := range instructors {
		responses = append(responses, toInstructorResponse(&instructors[i]))
	}
	return responses, nil
}

func (s *InstructorService) Create(ctx context.Context, request *CreateInstructorRequest, adminID uint32) (*InstructorResponse, error) {
	instructor := &model.Instructor{
		Name:        request.Name,
		Phone:       formatPhonePtr(request.Phone),
		PayPerClass: request.PayPerClass,
		IsActive:    request.IsActive == nil || *request.IsActive,
		Memo:        request.Memo,
	}
	instructor.StampCreated(adminID)

	if err := s.instructorRepository.Create(ctx, s.db, instructor); err != nil {
		return nil, fmt.Errorf("강사 생성 실패: %w", err)
	}

	logger.FromContext(ctx).Info("강사 등록 완료", "instructor_id", instructor.ID)

	response := toInstructorResponse(instructor)
	return &response, nil
}

func (s *InstructorService) Update(ctx context.Context, instructorID uint32, request *UpdateInstructorRequest, adminID uint32) (*InstructorResponse, error) {
	var instructor *model.Instructor

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.findInstructor(ctx, tx, instructorID)
		if err != nil {
			return err
		}

		if request.Name != nil {
			found.Name = *request.Name
		}
		if request.Phone != nil {
			found.Phone = formatPhonePtr(request.Phone)
		}
		if request.PayPerClass != nil {
			found.PayPerClass = *request.PayPerClass
		}
		if request.IsActive != nil {
			found.IsActive = *request.IsActive
		}
		if request.Memo != nil {
			found.Memo = request.Memo
		}
		found.StampUpdated(adminID)

		if err := s.instructorRepository.Save(ctx, tx, found); err != nil {
			return fmt.Errorf("강사 수정 실패: %w", err)
		}
		instructor = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := toInstructorResponse(instructor)
	return &response, nil
}

func (s *InstructorService) Delete(ctx context.Context, instructorID uint32) error {
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.findInstructor(ctx, tx, instructorID); err != nil {
			return err
		}
		if err := s.instructorRepository.Delete(ctx, tx, instructorID); err != nil {
			return fmt.Errorf("강사 삭제 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info("강사 삭제 완료", "instructor_id", instructorID)
	return nil
}

func (s *InstructorService) findInstructor(ctx context.Context, db *gorm.DB, instructorID uint32) (*model.Instructor, error) {
	instructor, err := s.instructorRepository.FindByID(ctx, db, instructorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("강사를 찾을 수 없습니다 instructorID=%d %w", instructorID, ErrInstructorNotFound)
		}
		return nil, fmt.Errorf("강사 조회 실패: %w", err)
	}
	return instructor, nil
}

func formatPhonePtr(phone *string) *string {
	if phone == nil {
		return nil
	}
	formatted := validator.FormatPhone(*phone)
	return &formatted
}
