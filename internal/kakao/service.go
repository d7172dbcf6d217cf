package kakao

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/membership"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/dateutil"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/metrics"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/validator"
	"gorm.io/gorm"
)

const defaultTemporaryName = "카카오회원"

type KakaoService struct {
	db                *gorm.DB
	kakaoRepository   *KakaoRepository
	membershipService *membership.MembershipService
	clock             dateutil.Clock
}

func NewKakaoService(db *gorm.DB, kakaoRepository *KakaoRepository, membershipService *membership.MembershipService, clock dateutil.Clock) *KakaoService {
	return &KakaoService{
		db:                db,
		kakaoRepository:   kakaoRepository,
		membershipService: membershipService,
		clock:             clock,
	}
}

// Authenticate maps a Kakao user to a member.
//
//	mapping exists    -> existing, nothing new
//	one phone match   -> linked, the member row gets the kakao id
//	no match          -> created, one temporary member
//	several matches   -> multiple, nothing is written
func (s *KakaoService) Authenticate(ctx context.Context, request *AuthRequest) (*AuthResponse, error) {
	log := logger.FromContext(ctx)
	var response *AuthResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		existing, err := s.findExisting(ctx, tx, request.KakaoUserID)
		if err != nil {
			return err
		}
		if existing != nil {
			response = &AuthResponse{Result: ResultExisting, Member: existing}
			return nil
		}

		candidates, err := s.kakaoRepository.FindUnlinkedByPhone(ctx, tx, request.PhoneLast4, request.FullPhone, request.Name)
		if err != nil {
			return fmt.Errorf("전화번호로 회원 조회 실패: %w", err)
		}

		switch len(candidates) {
		case 0:
			member, err := s.createTemporary(ctx, tx, request)
			if err != nil {
				return err
			}
			response = &AuthResponse{Result: ResultCreated, Member: member}
		case 1:
			member, err := s.link(ctx, tx, &candidates[0], request.KakaoUserID)
			if err != nil {
				return err
			}
			response = &AuthResponse{Result: ResultLinked, Member: member}
		default:
			response = &AuthResponse{Result: ResultMultiple, Candidates: toCandidates(candidates)}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.KakaoAuth.WithLabelValues(response.Result).Inc()
	log.Info("카카오 회원 인증", "result", response.Result, "candidates", len(response.Candidates))
	return response, nil
}

// Link resolves a multiple-match by an explicit member choice.
// The chosen member must be among the unlinked members matching the given phone digits.
func (s *KakaoService) Link(ctx context.Context, request *LinkRequest) (*MemberSummary, error) {
	var summary *MemberSummary

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		mapping, err := s.kakaoRepository.FindMapping(ctx, tx, request.KakaoUserID)
		if err != nil {
			return fmt.Errorf("카카오 매핑 조회 실패: %w", err)
		}
		if mapping != nil {
			return fmt.Errorf("kakao user already mapped memberID=%d %w", mapping.MemberID, ErrUserAlreadyMapped)
		}

		member, err := s.kakaoRepository.FindMember(ctx, tx, request.MemberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d %w", request.MemberID, ErrMemberNotFound)
			}
			return fmt.Errorf("회원 조회 실패: %w", err)
		}
		if member.KakaoUserID != nil {
			return fmt.Errorf("memberID=%d %w", member.ID, ErrMemberAlreadyLinked)
		}

		candidates, err := s.kakaoRepository.FindUnlinkedByPhone(ctx, tx, request.PhoneLast4, request.FullPhone, request.Name)
		if err != nil {
			return fmt.Errorf("전화번호로 회원 조회 실패: %w", err)
		}
		if !containsMember(candidates, member.ID) {
			return fmt.Errorf("memberID=%d %w", member.ID, ErrPhoneMismatch)
		}

		summary, err = s.link(ctx, tx, member, request.KakaoUserID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("카카오 계정 수동 연결", "member_id", request.MemberID)
	return summary, nil
}

// Lookup returns the member mapped to a Kakao user
func (s *KakaoService) Lookup(ctx context.Context, kakaoUserID string) (*MemberSummary, error) {
	summary, err := s.findExisting(ctx, s.db, kakaoUserID)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, fmt.Errorf("kakao user not mapped %w", ErrMappingNotFound)
	}
	return summary, nil
}

// ResolveMemberID returns the member mapped to a Kakao user, nil when unmapped
func (s *KakaoService) ResolveMemberID(ctx context.Context, db *gorm.DB, kakaoUserID string) (*uint32, error) {
	if kakaoUserID == "" {
		return nil, nil
	}

	mapping, err := s.kakaoRepository.FindMapping(ctx, db, kakaoUserID)
	if err != nil {
		return nil, fmt.Errorf("카카오 매핑 조회 실패: %w", err)
	}
	if mapping == nil {
		return nil, nil
	}
	return &mapping.MemberID, nil
}

// findExisting looks up the mapping, repairing it when only the member row carries the id
func (s *KakaoService) findExisting(ctx context.Context, db *gorm.DB, kakaoUserID string) (*MemberSummary, error) {
	mapping, err := s.kakaoRepository.FindMapping(ctx, db, kakaoUserID)
	if err != nil {
		return nil, fmt.Errorf("카카오 매핑 조회 실패: %w", err)
	}

	var member *model.Member
	if mapping != nil {
		member, err = s.kakaoRepository.FindMember(ctx, db, mapping.MemberID)
		if err != nil {
			return nil, fmt.Errorf("매핑된 회원 조회 실패 memberID=%d: %w", mapping.MemberID, err)
		}
		if err := s.kakaoRepository.TouchMapping(ctx, db, mapping.ID, s.clock()); err != nil {
			return nil, fmt.Errorf("카카오 매핑 갱신 실패: %w", err)
		}
	} else {
		member, err = s.kakaoRepository.FindMemberByKakaoID(ctx, db, kakaoUserID)
		if err != nil {
			return nil, fmt.Errorf("카카오 회원 조회 실패: %w", err)
		}
		if member == nil {
			return nil, nil
		}
		if err := s.createMapping(ctx, db, member.ID, kakaoUserID); err != nil {
			return nil, err
		}
	}

	return s.summarize(ctx, db, member)
}

func (s *KakaoService) link(ctx context.Context, db *gorm.DB, member *model.Member, kakaoUserID string) (*MemberSummary, error) {
	if err := s.kakaoRepository.AttachKakaoID(ctx, db, member.ID, kakaoUserID); err != nil {
		return nil, fmt.Errorf("카카오 ID 연결 실패 memberID=%d: %w", member.ID, err)
	}
	if err := s.createMapping(ctx, db, member.ID, kakaoUserID); err != nil {
		return nil, err
	}

	member.KakaoUserID = &kakaoUserID
	return s.summarize(ctx, db, member)
}

func (s *KakaoService) createTemporary(ctx context.Context, db *gorm.DB, request *AuthRequest) (*MemberSummary, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		name = defaultTemporaryName
	}
	phone := request.PhoneLast4
	if request.FullPhone != "" {
		phone = validator.FormatPhone(request.FullPhone)
	}

	member := model.NewTemporaryMember(name, phone, request.KakaoUserID)
	if err := s.kakaoRepository.CreateMember(ctx, db, member); err != nil {
		return nil, fmt.Errorf("임시 회원 생성 실패: %w", err)
	}
	if err := s.createMapping(ctx, db, member.ID, request.KakaoUserID); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("임시 회원 생성", "member_id", member.ID, "phone", logger.MaskPhone(phone))
	return toMemberSummary(member), nil
}

func (s *KakaoService) createMapping(ctx context.Context, db *gorm.DB, memberID uint32, kakaoUserID string) error {
	now := s.clock()
	mapping := &model.KakaoUserMapping{
		KakaoUserID: kakaoUserID,
		MemberID:    memberID,
		LastSeenAt:  &now,
	}
	if err := s.kakaoRepository.CreateMapping(ctx, db, mapping); err != nil {
		return fmt.Errorf("카카오 매핑 생성 실패: %w", err)
	}
	return nil
}

func (s *KakaoService) summarize(ctx context.Context, db *gorm.DB, member *model.Member) (*MemberSummary, error) {
	snap, err := s.membershipService.CurrentSnapshot(ctx, db, member.ID)
	if err != nil {
		return nil, err
	}

	summary := toMemberSummary(member)
	summary.MembershipStatus = snap.Status
	summary.RemainingSessions = snap.RemainingSessions
	summary.ExpiresAt = dateutil.FormatPtr(snap.ExpiresAt)
	return summary, nil
}

func containsMember(members []model.Member, id uint32) bool {
	for i := range members {
		if members[i].ID == id {
			return true
		}
	}
	return false
}
