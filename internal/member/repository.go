package member

import (
	"context"
	"strings"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/validator"
	"gorm.io/gorm"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

// ExistsByPhone checks for another member with the same number; excludeID 0 checks all rows
func (m *MemberRepository) ExistsByPhone(ctx context.Context, db *gorm.DB, phone string, excludeID uint32) (bool, error) {
	var count int64
	q := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("phone IN ?", []string{validator.FormatPhone(phone), validator.NormalizePhone(phone)})
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

func (m *MemberRepository) Save(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Save(member).Error
}

func (m *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("id = ?", ID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Search matches q against the name or the phone number (with or without hyphens)
func (m *MemberRepository) Search(ctx context.Context, db *gorm.DB, q string) ([]model.Member, error) {
	var members []model.Member

	query := db.WithContext(ctx).Order("name").Order("id")
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + q + "%"
		if digits := validator.NormalizePhone(q); digits != "" {
			query = query.Where("name LIKE ? OR phone LIKE ? OR REPLACE(phone, '-', '') LIKE ?", like, like, "%"+digits+"%")
		} else {
			query = query.Where("name LIKE ?", like)
		}
	}

	err := query.Find(&members).Error
	return members, err
}

// Delete removes the member together with its passes and Kakao mapping.
// Reservations are kept for settlement but lose their member link.
func (m *MemberRepository) Delete(ctx context.Context, db *gorm.DB, ID uint32) error {
	tx := db.WithContext(ctx)

	if err := tx.Where("member_id = ?", ID).Delete(&model.KakaoUserMapping{}).Error; err != nil {
		return err
	}
	if err := tx.Where("member_id = ?", ID).Delete(&model.MembershipHistory{}).Error; err != nil {
		return err
	}
	if err := tx.Model(&model.Reservation{}).Where("member_id = ?", ID).Update("member_id", nil).Error; err != nil {
		return err
	}
	return tx.Where("id = ?", ID).Delete(&model.Member{}).Error
}
