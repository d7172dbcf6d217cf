package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/class"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/kakao"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/dateutil"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/metrics"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/validator"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReservationService struct {
	db                    *gorm.DB
	reservationRepository *ReservationRepository
	classRepository       *class.ClassRepository
	classService          *class.ClassService
	kakaoService          *kakao.KakaoService
	clock                 dateutil.Clock
	loc                   *time.Location
}

func NewReservationService(
	db *gorm.DB,
	reservationRepository *ReservationRepository,
	classRepository *class.ClassRepository,
	classService *class.ClassService,
	kakaoService *kakao.KakaoService,
	clock dateutil.Clock,
	loc *time.Location,
) *ReservationService {
	return &ReservationService{
		db:                    db,
		reservationRepository: reservationRepository,
		classRepository:       classRepository,
		classService:          classService,
		kakaoService:          kakaoService,
		clock:                 clock,
		loc:                   loc,
	}
}

// Book reserves a seat. The class row stays locked from the capacity check until the insert
// commits, so two concurrent requests cannot both take the last seat.
func (s *ReservationService) Book(ctx context.Context, request *BookRequest) (*ReservationResponse, error) {
	log := logger.FromContext(ctx)
	today := dateutil.Today(s.clock, s.loc)
	phone := validator.FormatPhone(request.Phone)

	var reservation *model.Reservation
	var booked *model.Class

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		c, err := s.classRepository.FindByIDForUpdate(ctx, tx, request.ClassID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("classID=%d %w", request.ClassID, ErrClassNotFound)
			}
			return fmt.Errorf("수업 조회 실패: %w", err)
		}
		if dateutil.Before(c.ClassDate, today) {
			return fmt.Errorf("classID=%d date=%s %w", c.ID, dateutil.Format(c.ClassDate), ErrPastClass)
		}

		duplicated, err := s.reservationRepository.ExistsForClass(ctx, tx, c.ID, phone, request.KakaoUserID)
		if err != nil {
			return fmt.Errorf("중복 예약 확인 실패: %w", err)
		}
		if duplicated {
			return fmt.Errorf("classID=%d %w", c.ID, ErrAlreadyReserved)
		}

		reserved, err := s.classRepository.CountReservationsOf(ctx, tx, c.ID)
		if err != nil {
			return fmt.Errorf("예약 인원 조회 실패: %w", err)
		}
		if reserved >= c.Capacity {
			return fmt.Errorf("classID=%d capacity=%d reserved=%d %w", c.ID, c.Capacity, reserved, ErrFullyBooked)
		}

		memberID, err := s.kakaoService.ResolveMemberID(ctx, tx, request.KakaoUserID)
		if err != nil {
			return err
		}

		reservation = &model.Reservation{
			ClassID:          c.ID,
			MemberID:         memberID,
			Name:             request.Name,
			Phone:            phone,
			AttendanceStatus: model.AttendancePending,
		}
		if request.KakaoUserID != "" {
			reservation.KakaoUserID = &request.KakaoUserID
		}

		if err := s.reservationRepository.Create(ctx, tx, reservation); err != nil {
			return fmt.Errorf("예약 생성 실패: %w", err)
		}
		booked = c
		return nil
	})
	if err != nil {
		metrics.Reservations.WithLabelValues(bookOutcome(err)).Inc()
		log.Warn("예약 실패", "class_id", request.ClassID, "phone", logger.MaskPhone(phone), "error", err)
		return nil, err
	}

	metrics.Reservations.WithLabelValues("booked").Inc()
	log.Info("예약 완료", "reservation_id", reservation.ID, "class_id", booked.ID, "phone", logger.MaskPhone(phone))

	response := toReservationResponse(reservation, booked)
	return &response, nil
}

// Cancel deletes the reservation row
func (s *ReservationService) Cancel(ctx context.Context, request *CancelRequest) (*CancelResponse, error) {
	var response *CancelResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		reservation, err := s.reservationRepository.FindByID(ctx, tx, request.ReservationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("reservationID=%d %w", request.ReservationID, ErrReservationNotFound)
			}
			return fmt.Errorf("예약 조회 실패: %w", err)
		}

		if request.KakaoUserID != "" && (reservation.KakaoUserID == nil || *reservation.KakaoUserID != request.KakaoUserID) {
			return fmt.Errorf("reservationID=%d %w", reservation.ID, ErrNotReservationHolder)
		}

		if err := s.reservationRepository.Delete(ctx, tx, reservation.ID); err != nil {
			return fmt.Errorf("예약 취소 실패: %w", err)
		}

		response = &CancelResponse{ReservationID: reservation.ID, ClassID: reservation.ClassID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.Reservations.WithLabelValues("cancelled").Inc()
	logger.FromContext(ctx).Info("예약 취소 완료", "reservation_id", response.ReservationID, "class_id", response.ClassID)
	return response, nil
}

// AvailableClasses lists upcoming classes with their remaining seats. Past dates are never listed.
func (s *ReservationService) AvailableClasses(ctx context.Context, query *AvailableClassesQuery) ([]class.ClassResponse, error) {
	from, to, err := s.classService.ResolveRange(query.From, query.To)
	if err != nil {
		return nil, err
	}

	today := dateutil.Today(s.clock, s.loc)
	if dateutil.Before(from, today) {
		from = today
	}
	if dateutil.Before(to, from) {
		return []class.ClassResponse{}, nil
	}

	return s.classService.ListBetween(ctx, from, to)
}

// MyReservations lists the reservations made by one Kakao user
func (s *ReservationService) MyReservations(ctx context.Context, query *MyReservationsQuery) ([]ReservationResponse, error) {
	var from *datatypes.Date
	if !query.IncludePast {
		today := dateutil.Today(s.clock, s.loc)
		from = &today
	}

	reservations, err := s.reservationRepository.ListByKakaoUser(ctx, s.db, query.KakaoUserID, from)
	if err != nil {
		return nil, fmt.Errorf("예약 목록 조회 실패: %w", err)
	}

	responses := make([]ReservationResponse, 0, len(reservations))
	for i := range reservations {
		responses = append(responses, toReservationResponse(&reservations[i], reservations[i].Class))
	}
	return responses, nil
}

func bookOutcome(err error) string {
	switch {
	case errors.Is(err, ErrFullyBooked):
		return "full"
	case errors.Is(err, ErrAlreadyReserved):
		return "duplicate"
	case errors.Is(err, ErrPastClass):
		return "past"
	case errors.Is(err, ErrClassNotFound):
		return "not_found"
	}
	return "error"
}
