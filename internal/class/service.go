package class

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/dateutil"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/logger"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// defaultListDays is the window listed when no "to" date is given
const defaultListDays = 30

type ClassService struct {
	db              *gorm.DB
	classRepository *ClassRepository
	clock           dateutil.Clock
	loc             *time.Location
}

func NewClassService(db *gorm.DB, classRepository *ClassRepository, clock dateutil.Clock, loc *time.Location) *ClassService {
	return &ClassService{
		db:              db,
		classRepository: classRepository,
		clock:           clock,
		loc:             loc,
	}
}

// ResolveRange turns optional from/to strings into a date window starting today by default
func (s *ClassService) ResolveRange(from, to string) (datatypes.Date, datatypes.Date, error) {
	start := dateutil.Today(s.clock, s.loc)
	if from != "" {
		parsed, err := dateutil.Parse(from)
		if err != nil {
			return start, start, fmt.Errorf("%v: %w", err, ErrInvalidDateRange)
		}
		start = parsed
	}

	end := dateutil.AddDays(start, defaultListDays)
	if to != "" {
		parsed, err := dateutil.Parse(to)
		if err != nil {
			return start, end, fmt.Errorf("%v: %w", err, ErrInvalidDateRange)
		}
		end = parsed
	}

	if dateutil.Before(end, start) {
		return start, end, fmt.Errorf("from=%s to=%s: %w", from, to, ErrInvalidDateRange)
	}
	return start, end, nil
}

// List returns the schedule between from and to with reservation counts
func (s *ClassService) List(ctx context.Context, query *ListClassesQuery) ([]ClassResponse, error) {
	from, to, err := s.ResolveRange(query.From, query.To)
	if err != nil {
		return nil, err
	}
	return s.ListBetween(ctx, from, to)
}

func (s *ClassService) ListBetween(ctx context.Context, from, to datatypes.Date) ([]ClassResponse, error) {
	classes, err := s.classRepository.ListBetween(ctx, s.db, from, to)
	if err != nil {
		return nil, fmt.Errorf("수업 목록 조회 실패: %w", err)
	}

	ids := make([]uint32, 0, len(classes))
	for i := range classes {
		ids = append(ids, classes[i].ID)
	}
	counts, err := s.classRepository.CountReservations(ctx, s.db, ids)
	if err != nil {
		return nil, fmt.Errorf("예약 인원 조회 실패: %w", err)
	}

	responses := make([]ClassResponse, 0, len(classes))
	for i := range classes {
		responses = append(responses, ToClassResponse(&classes[i], counts[classes[i].ID]))
	}
	return responses, nil
}

func (s *ClassService) Get(ctx context.Context, classID uint32) (*ClassResponse, error) {
	class, err := s.findClass(ctx, s.db, classID)
	if err != nil {
		return nil, err
	}

	reserved, err := s.classRepository.CountReservationsOf(ctx, s.db, classID)
	if err != nil {
		return nil, fmt.Errorf("예약 인원 조회 실패: %w", err)
	}

	response := ToClassResponse(class, reserved)
	return &response, nil
}

func (s *ClassService) Create(ctx context.Context, request *CreateClassRequest, adminID uint32) (*ClassResponse, error) {
	if request.EndTime <= request.StartTime {
		return nil, fmt.Errorf("start=%s end=%s: %w", request.StartTime, request.EndTime, ErrInvalidTimeRange)
	}

	classDate, err := dateutil.Parse(request.ClassDate)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidDateRange)
	}

	class := &model.Class{
		Title:        request.Title,
		ClassDate:    classDate,
		StartTime:    request.StartTime,
		EndTime:      request.EndTime,
		InstructorID: request.InstructorID,
		Memo:         request.Memo,
	}
	class.StampCreated(adminID)

	err = database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.checkInstructor(ctx, tx, request.InstructorID); err != nil {
			return err
		}

		if request.Capacity != nil {
			class.Capacity = *request.Capacity
		} else {
			capacity, err := s.classRepository.DefaultCapacity(ctx, tx)
			if err != nil {
				return fmt.Errorf("기본 정원 조회 실패: %w", err)
			}
			class.Capacity = capacity
		}

		if err := s.classRepository.Create(ctx, tx, class); err != nil {
			return fmt.Errorf("수업 생성 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("수업 등록 완료", "class_id", class.ID, "date", request.ClassDate, "start", request.StartTime)
	return s.Get(ctx, class.ID)
}

func (s *ClassService) Update(ctx context.Context, classID uint32, request *UpdateClassRequest, adminID uint32) (*ClassResponse, error) {
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		class, err := s.findClass(ctx, tx, classID)
		if err != nil {
			return err
		}

		if request.Title != nil {
			class.Title = *request.Title
		}
		if request.ClassDate != nil {
			classDate, err := dateutil.Parse(*request.ClassDate)
			if err != nil {
				return fmt.Errorf("%v: %w", err, ErrInvalidDateRange)
			}
			class.ClassDate = classDate
		}
		if request.StartTime != nil {
			class.StartTime = *request.StartTime
		}
		if request.EndTime != nil {
			class.EndTime = *request.EndTime
		}
		if class.EndTime <= class.StartTime {
			return fmt.Errorf("start=%s end=%s: %w", class.StartTime, class.EndTime, ErrInvalidTimeRange)
		}
		if request.InstructorID != nil {
			if err := s.checkInstructor(ctx, tx, request.InstructorID); err != nil {
				return err
			}
			class.InstructorID = request.InstructorID
			class.Instructor = nil
		}
		if request.Memo != nil {
			class.Memo = request.Memo
		}
		if request.Capacity != nil {
			reserved, err := s.classRepository.CountReservationsOf(ctx, tx, classID)
			if err != nil {
				return fmt.Errorf("예약 인원 조회 실패: %w", err)
			}
			if *request.Capacity < reserved {
				return fmt.Errorf("capacity=%d reserved=%d: %w", *request.Capacity, reserved, ErrCapacityBelowBook)
			}
			class.Capacity = *request.Capacity
		}
		class.StampUpdated(adminID)

		if err := s.classRepository.Save(ctx, tx, class); err != nil {
			return fmt.Errorf("수업 수정 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("수업 수정 완료", "class_id", classID)
	return s.Get(ctx, classID)
}

// Delete removes the class along with its reservations
func (s *ClassService) Delete(ctx context.Context, classID uint32) error {
	var removed int

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.findClass(ctx, tx, classID); err != nil {
			return err
		}

		reserved, err := s.classRepository.CountReservationsOf(ctx, tx, classID)
		if err != nil {
			return fmt.Errorf("예약 인원 조회 실패: %w", err)
		}
		removed = reserved

		if err := s.classRepository.Delete(ctx, tx, classID); err != nil {
			return fmt.Errorf("수업 삭제 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info("수업 삭제 완료", "class_id", classID, "removed_reservations", removed)
	return nil
}

func (s *ClassService) checkInstructor(ctx context.Context, db *gorm.DB, instructorID *uint32) error {
	if instructorID == nil {
		return nil
	}

	exists, err := s.classRepository.InstructorExists(ctx, db, *instructorID)
	if err != nil {
		return fmt.Errorf("강사 조회 실패: %w", err)
	}
	if !exists {
		return fmt.Errorf("instructorID=%d %w", *instructorID, ErrInstructorNotFound)
	}
	return nil
}

func (s *ClassService) findClass(ctx context.Context, db *gorm.DB, classID uint32) (*model.Class, error) {
	class, err := s.classRepository.FindByID(ctx, db, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("수업을 찾을 수 없습니다 classID=%d %w", classID, ErrClassNotFound)
		}
		return nil, fmt.Errorf("수업 조회 실패: %w", err)
	}
	return class, nil
}
