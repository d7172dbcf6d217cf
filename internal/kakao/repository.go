package kakao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/validator"
	"gorm.io/gorm"
)

type KakaoRepository struct{}

func NewKakaoRepository() *KakaoRepository {
	return &KakaoRepository{}
}

// FindMapping returns nil when the Kakao user was never mapped
func (r *KakaoRepository) FindMapping(ctx context.Context, db *gorm.DB, kakaoUserID string) (*model.KakaoUserMapping, error) {
	var mapping model.KakaoUserMapping
	err := db.WithContext(ctx).Where("kakao_user_id = ?", kakaoUserID).First(&mapping).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mapping, nil
}

func (r *KakaoRepository) CreateMapping(ctx context.Context, db *gorm.DB, mapping *model.KakaoUserMapping) error {
	return db.WithContext(ctx).Create(mapping).Error
}

func (r *KakaoRepository) TouchMapping(ctx context.Context, db *gorm.DB, mappingID uint32, seenAt time.Time) error {
	return db.WithContext(ctx).
		Model(&model.KakaoUserMapping{}).
		Where("id = ?", mappingID).
		Update("last_seen_at", seenAt).Error
}

func (r *KakaoRepository) FindMember(ctx context.Context, db *gorm.DB, memberID uint32) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("id = ?", memberID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindMemberByKakaoID returns nil when no member row carries the id
func (r *KakaoRepository) FindMemberByKakaoID(ctx context.Context, db *gorm.DB, kakaoUserID string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("kakao_user_id = ?", kakaoUserID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// FindUnlinkedByPhone lists members without a Kakao id whose phone matches.
// A full phone must match every digit; otherwise the number must end with last4.
// name narrows the result when not empty.
func (r *KakaoRepository) FindUnlinkedByPhone(ctx context.Context, db *gorm.DB, last4, fullPhone, name string) ([]model.Member, error) {
	suffix := last4
	if fullPhone != "" {
		suffix = validator.LastFour(fullPhone)
	}

	q := db.WithContext(ctx).
		Where("kakao_user_id IS NULL").
		Where("phone LIKE ?", "%"+suffix).
		Order("id")
	if name = strings.TrimSpace(name); name != "" {
		q = q.Where("name = ?", name)
	}

	var rows []model.Member
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	if fullPhone == "" {
		return rows, nil
	}

	want := validator.NormalizePhone(fullPhone)
	matched := rows[:0]
	for _, m := range rows {
		if validator.NormalizePhone(m.Phone) == want {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

func (r *KakaoRepository) AttachKakaoID(ctx context.Context, db *gorm.DB, memberID uint32, kakaoUserID string) error {
	return db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", memberID).
		Update("kakao_user_id", kakaoUserID).Error
}

func (r *KakaoRepository) CreateMember(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}
