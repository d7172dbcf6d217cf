package membership

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

type MembershipService struct {
	db                   *gorm.DB
	membershipRepository *MembershipRepository
	clock                dateutil.Clock
	loc                  *time.Location
}

func NewMembershipService(db *gorm.DB, membershipRepository *MembershipRepository, clock dateutil.Clock, loc *time.Location) *MembershipService {
	return &MembershipService{
		db:                   db,
		membershipRepository: membershipRepository,
		clock:                clock,
		loc:                  loc,
	}
}

// Today is the studio-local date used for every status calculation
func (s *MembershipService) Today() datatypes.Date {
	return dateutil.Today(s.clock, s.loc)
}

func (s *MembershipService) ListByMember(ctx context.Context, memberID uint32) ([]HistoryResponse, error) {
	if _, err := s.findMember(ctx, s.db, memberID); err != nil {
		return nil, err
	}

	histories, err := s.membershipRepository.ListByMember(ctx, s.db, memberID)
	if err != nil {
		return nil, fmt.Errorf("회원권 내역 조회 실패: %w", err)
	}

	today := s.Today()
	responses := make([]HistoryResponse, 0, len(histories))
	for i := range histories {
		responses = append(responses, toHistoryResponse(&histories[i], today))
	}
	return responses, nil
}

// Purchase records a new pass and refreshes the member cache in the same transaction
func (s *MembershipService) Purchase(ctx context.Context, memberID uint32, request *PurchaseRequest, adminID uint32) (*HistoryResponse, error) {
	log := logger.FromContext(ctx)

	startDate, err := dateutil.Parse(request.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidPeriod)
	}
	endDate, err := dateutil.ParsePtr(request.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidPeriod)
	}
	if endDate != nil && dateutil.Before(*endDate, startDate) {
		return nil, fmt.Errorf("start=%s end=%s: %w", request.StartDate, *request.EndDate, ErrInvalidPeriod)
	}

	if request.TotalSessions == 0 && request.RemainingSessions == nil {
		return nil, fmt.Errorf("type=%s: %w", request.MembershipType, ErrNoSessions)
	}

	remaining := request.TotalSessions
	if request.RemainingSessions != nil {
		remaining = *request.RemainingSessions
	}

	history := &model.MembershipHistory{
		MemberID:          memberID,
		MembershipType:    request.MembershipType,
		StartDate:         startDate,
		EndDate:           endDate,
		TotalSessions:     request.TotalSessions,
		RemainingSessions: &remaining,
		Price:             request.Price,
		Memo:              request.Memo,
	}
	history.StampCreated(adminID)

	err = database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.findMember(ctx, tx, memberID); err != nil {
			return err
		}
		if err := s.membershipRepository.Create(ctx, tx, history); err != nil {
			return fmt.Errorf("회원권 생성 실패: %w", err)
		}
		_, err := s.refreshMemberCache(ctx, tx, memberID)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info("회원권 등록 완료", "member_id", memberID, "history_id", history.ID, "type", history.MembershipType)

	response := toHistoryResponse(history, s.Today())
	return &response, nil
}

// Adjust corrects remaining sessions, end date or memo of an existing pass
func (s *MembershipService) Adjust(ctx context.Context, historyID uint32, request *AdjustRequest, adminID uint32) (*HistoryResponse, error) {
	var history *model.MembershipHistory

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.membershipRepository.FindByID(ctx, tx, historyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("회원권 내역 없음 historyID=%d: %w", historyID, ErrHistoryNotFound)
			}
			return fmt.Errorf("회원권 내역 조회 실패: %w", err)
		}

		if request.RemainingSessions != nil {
			found.RemainingSessions = request.RemainingSessions
		}
		if request.EndDate != nil {
			endDate, err := dateutil.ParsePtr(request.EndDate)
			if err != nil {
				return fmt.Errorf("%v: %w", err, ErrInvalidPeriod)
			}
			if endDate != nil && dateutil.Before(*endDate, found.StartDate) {
				return fmt.Errorf("end=%s: %w", *request.EndDate, ErrInvalidPeriod)
			}
			found.EndDate = endDate
		}
		if request.Memo != nil {
			found.Memo = request.Memo
		}
		found.StampUpdated(adminID)

		if err := s.membershipRepository.Save(ctx, tx, found); err != nil {
			return fmt.Errorf("회원권 수정 실패: %w", err)
		}
		if _, err := s.refreshMemberCache(ctx, tx, found.MemberID); err != nil {
			return err
		}

		history = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("회원권 수정 완료", "history_id", historyID, "member_id", history.MemberID)

	response := toHistoryResponse(history, s.Today())
	return &response, nil
}

// CurrentSnapshot derives the member's status from the latest pass without writing the cache
func (s *MembershipService) CurrentSnapshot(ctx context.Context, db *gorm.DB, memberID uint32) (Snapshot, error) {
	latest, err := s.membershipRepository.FindLatestByMember(ctx, db, memberID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("최근 회원권 조회 실패 memberID=%d: %w", memberID, err)
	}
	return Summarize(latest, s.Today()), nil
}

// RefreshMemberCache recomputes member.membership_status / remaining_sessions / expires_at
func (s *MembershipService) RefreshMemberCache(ctx context.Context, memberID uint32) (Snapshot, error) {
	return s.refreshMemberCache(ctx, s.db, memberID)
}

func (s *MembershipService) refreshMemberCache(ctx context.Context, db *gorm.DB, memberID uint32) (Snapshot, error) {
	snap, err := s.CurrentSnapshot(ctx, db, memberID)
	if err != nil {
		return Snapshot{}, err
	}
	if err := s.membershipRepository.UpdateMemberCache(ctx, db, memberID, snap); err != nil {
		return Snapshot{}, fmt.Errorf("회원 상태 캐시 갱신 실패 memberID=%d: %w", memberID, err)
	}
	return snap, nil
}

// RefreshAll recomputes the cache for every member whose cached values drifted.
// Returns how many member rows were rewritten.
func (s *MembershipService) RefreshAll(ctx context.Context) (int, error) {
	members, err := s.membershipRepository.ListMembers(ctx, s.db)
	if err != nil {
		return 0, fmt.Errorf("회원 목록 조회 실패: %w", err)
	}

	latest, err := s.membershipRepository.LatestByMembers(ctx, s.db, nil)
	if err != nil {
		return 0, fmt.Errorf("회원권 목록 조회 실패: %w", err)
	}

	today := s.Today()
	updated := 0
	for i := range members {
		m := &members[i]
		snap := Summarize(latest[m.ID], today)
		if snap.Matches(m) {
			continue
		}
		if err := s.membershipRepository.UpdateMemberCache(ctx, s.db, m.ID, snap); err != nil {
			return updated, fmt.Errorf("회원 상태 캐시 갱신 실패 memberID=%d: %w", m.ID, err)
		}
		updated++
	}
	return updated, nil
}

func (s *MembershipService) findMember(ctx context.Context, db *gorm.DB, memberID uint32) (*model.Member, error) {
	member, err := s.membershipRepository.FindMember(ctx, db, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d %w", memberID, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}
	return member, nil
}
