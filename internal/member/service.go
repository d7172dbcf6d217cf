package member

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/membership"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/validator"
	"gorm.io/gorm"
)

type MemberService struct {
	db                   *gorm.DB
	memberRepository     *MemberRepository
	membershipRepository *membership.MembershipRepository
	membershipService    *membership.MembershipService
}

func NewMemberService(
	db *gorm.DB,
	memberRepository *MemberRepository,
	membershipRepository *membership.MembershipRepository,
	membershipService *membership.MembershipService,
) *MemberService {
	return &MemberService{
		db:                   db,
		memberRepository:     memberRepository,
		membershipRepository: membershipRepository,
		membershipService:    membershipService,
	}
}

// List returns the roster with the status derived from each member's latest pass,
// not the cached column, so a pass that expired today already shows as 만료.
func (s *MemberService) List(ctx context.Context, query *ListMembersQuery) ([]MemberResponse, error) {
	members, err := s.memberRepository.Search(ctx, s.db, query.Q)
	if err != nil {
		return nil, fmt.Errorf("회원 목록 조회 실패: %w", err)
	}

	ids := make([]uint32, 0, len(members))
	for i := range members {
		ids = append(ids, members[i].ID)
	}

	latest := map[uint32]*model.MembershipHistory{}
	if len(ids) > 0 {
		latest, err = s.membershipRepository.LatestByMembers(ctx, s.db, ids)
		if err != nil {
			return nil, fmt.Errorf("회원권 조회 실패: %w", err)
		}
	}

	today := s.membershipService.Today()
	responses := make([]MemberResponse, 0, len(members))
	for i := range members {
		m := &members[i]
		applySnapshot(m, membership.Summarize(latest[m.ID], today))

		if query.Status != "" && m.MembershipStatus != query.Status {
			continue
		}
		responses = append(responses, toMemberResponse(m))
	}
	return responses, nil
}

func (s *MemberService) Get(ctx context.Context, memberID uint32) (*MemberResponse, error) {
	member, err := s.findMember(ctx, s.db, memberID)
	if err != nil {
		return nil, err
	}

	snap, err := s.membershipService.CurrentSnapshot(ctx, s.db, memberID)
	if err != nil {
		return nil, err
	}
	applySnapshot(member, snap)

	response := toMemberResponse(member)
	return &response, nil
}

func (s *MemberService) Create(ctx context.Context, request *CreateMemberRequest, adminID uint32) (*MemberResponse, error) {
	log := logger.FromContext(ctx)
	member := model.NewMember(strings.TrimSpace(request.Name), validator.FormatPhone(request.Phone))
	member.Memo = request.Memo
	member.StampCreated(adminID)

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := s.memberRepository.ExistsByPhone(ctx, tx, member.Phone, 0)
		if err != nil {
			return fmt.Errorf("전화번호 중복 확인 실패: %w", err)
		}
		if exists {
			log.Warn("이미 등록된 전화번호", "phone", logger.MaskPhone(member.Phone))
			return fmt.Errorf("error %w", ErrMemberAlreadyExists)
		}

		if err := s.memberRepository.Create(ctx, tx, member); err != nil {
			return fmt.Errorf("회원 생성 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("회원 등록 완료", "member_id", member.ID, "name", logger.MaskName(member.Name))

	response := toMemberResponse(member)
	return &response, nil
}

func (s *MemberService) Update(ctx context.Context, memberID uint32, request *UpdateMemberRequest, adminID uint32) (*MemberResponse, error) {
	var member *model.Member

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.findMember(ctx, tx, memberID)
		if err != nil {
			return err
		}

		if request.Name != nil {
			found.Name = strings.TrimSpace(*request.Name)
		}
		if request.Phone != nil {
			phone := validator.FormatPhone(*request.Phone)
			exists, err := s.memberRepository.ExistsByPhone(ctx, tx, phone, memberID)
			if err != nil {
				return fmt.Errorf("전화번호 중복 확인 실패: %w", err)
			}
			if exists {
				return fmt.Errorf("error %w", ErrMemberAlreadyExists)
			}
			found.Phone = phone
		}
		if request.Memo != nil {
			found.Memo = request.Memo
		}
		// 관리자가 정보를 확인하면 정식 회원으로 전환
		found.IsTemporary = false
		found.StampUpdated(adminID)

		if err := s.memberRepository.Save(ctx, tx, found); err != nil {
			return fmt.Errorf("회원 수정 실패: %w", err)
		}
		member = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("회원 정보 수정 완료", "member_id", memberID)

	response := toMemberResponse(member)
	return &response, nil
}

func (s *MemberService) Delete(ctx context.Context, memberID uint32) error {
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.findMember(ctx, tx, memberID); err != nil {
			return err
		}
		if err := s.memberRepository.Delete(ctx, tx, memberID); err != nil {
			return fmt.Errorf("회원 삭제 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info("회원 삭제 완료", "member_id", memberID)
	return nil
}

func (s *MemberService) findMember(ctx context.Context, db *gorm.DB, memberID uint32) (*model.Member, error) {
	member, err := s.memberRepository.FindByID(ctx, db, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d %w", memberID, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}
	return member, nil
}

func applySnapshot(m *model.Member, snap membership.Snapshot) {
	m.MembershipStatus = snap.Status
	m.RemainingSessions = snap.RemainingSessions
	m.ExpiresAt = snap.ExpiresAt
}
