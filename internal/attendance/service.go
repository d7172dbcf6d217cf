package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/class"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/reservation"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/dateutil"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/metrics"
	"gorm.io/gorm"
)

type AttendanceService struct {
	db                    *gorm.DB
	reservationRepository *reservation.ReservationRepository
	classRepository       *class.ClassRepository
	clock                 dateutil.Clock
}

func NewAttendanceService(
	db *gorm.DB,
	reservationRepository *reservation.ReservationRepository,
	classRepository *class.ClassRepository,
	clock dateutil.Clock,
) *AttendanceService {
	return &AttendanceService{
		db:                    db,
		reservationRepository: reservationRepository,
		classRepository:       classRepository,
		clock:                 clock,
	}
}

// Update sets the attendance status of one reservation. Any status may follow any other.
func (s *AttendanceService) Update(ctx context.Context, request *UpdateRequest) (*AttendanceResponse, error) {
	if !model.IsValidAttendanceStatus(request.AttendanceStatus) {
		return nil, fmt.Errorf("status=%q %w", request.AttendanceStatus, ErrInvalidStatus)
	}

	var updated *model.Reservation

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		r, err := s.reservationRepository.FindByID(ctx, tx, request.ReservationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("reservationID=%d %w", request.ReservationID, ErrReservationNotFound)
			}
			return fmt.Errorf("예약 조회 실패: %w", err)
		}

		checkedAt := s.clock()
		r.AttendanceStatus = request.AttendanceStatus
		r.AttendanceCheckedAt = &checkedAt
		r.AttendanceCheckedBy = request.CheckedBy

		if err := s.reservationRepository.Save(ctx, tx, r); err != nil {
			return fmt.Errorf("출석 상태 저장 실패: %w", err)
		}
		updated = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.AttendanceUpdates.WithLabelValues(request.AttendanceStatus).Inc()
	logger.FromContext(ctx).Info("출석 상태 변경", "reservation_id", updated.ID, "status", updated.AttendanceStatus)

	response := toAttendanceResponse(updated)
	return &response, nil
}

// Roster returns the class attendance sheet
func (s *AttendanceService) Roster(ctx context.Context, classID uint32) (*RosterResponse, error) {
	c, err := s.classRepository.FindByID(ctx, s.db, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("수업을 찾을 수 없습니다 classID=%d %w", classID, class.ErrClassNotFound)
		}
		return nil, fmt.Errorf("수업 조회 실패: %w", err)
	}

	reservations, err := s.reservationRepository.ListByClass(ctx, s.db, classID)
	if err != nil {
		return nil, fmt.Errorf("예약 목록 조회 실패: %w", err)
	}

	roster := &RosterResponse{
		ClassID:   c.ID,
		Title:     c.Title,
		ClassDate: dateutil.Format(c.ClassDate),
		StartTime: c.StartTime,
		Capacity:  c.Capacity,
		Entries:   make([]AttendanceResponse, 0, len(reservations)),
	}
	for i := range reservations {
		switch reservations[i].AttendanceStatus {
		case model.AttendanceAttended:
			roster.Attended++
		case model.AttendanceAbsent:
			roster.Absent++
		default:
			roster.Pending++
		}
		roster.Entries = append(roster.Entries, toAttendanceResponse(&reservations[i]))
	}
	return roster, nil
}
