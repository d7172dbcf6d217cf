package reservation

import (
	"context"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/validator"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, db *gorm.DB, reservation *model.Reservation) error {
	return db.WithContext(ctx).Create(reservation).Error
}

func (r *ReservationRepository) Save(ctx context.Context, db *gorm.DB, reservation *model.Reservation) error {
	return db.WithContext(ctx).Omit("Class", "Member").Save(reservation).Error
}

func (r *ReservationRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Reservation, error) {
	var reservation model.Reservation
	err := db.WithContext(ctx).Preload("Class").Where("id = ?", id).First(&reservation).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, db *gorm.DB, id uint32) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&model.Reservation{}).Error
}

// ExistsForClass reports whether the phone (any format) or the Kakao user already booked the class
func (r *ReservationRepository) ExistsForClass(ctx context.Context, db *gorm.DB, classID uint32, phone, kakaoUserID string) (bool, error) {
	phones := []string{validator.FormatPhone(phone), validator.NormalizePhone(phone)}

	q := db.WithContext(ctx).Model(&model.Reservation{}).Where("class_id = ?", classID)
	if kakaoUserID != "" {
		q = q.Where("phone IN ? OR kakao_user_id = ?", phones, kakaoUserID)
	} else {
		q = q.Where("phone IN ?", phones)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByKakaoUser returns the chat user's reservations in schedule order; a nil from lists all of them
func (r *ReservationRepository) ListByKakaoUser(ctx context.Context, db *gorm.DB, kakaoUserID string, from *datatypes.Date) ([]model.Reservation, error) {
	var reservations []model.Reservation

	q := db.WithContext(ctx).
		Preload("Class").
		Joins("JOIN class ON class.id = reservation.class_id").
		Where("reservation.kakao_user_id = ?", kakaoUserID)
	if from != nil {
		q = q.Where("class.class_date >= ?", *from)
	}

	err := q.Order("class.class_date").
		Order("class.start_time").
		Order("reservation.id").
		Find(&reservations).Error
	return reservations, err
}

// ListByClass returns a class roster in booking order
func (r *ReservationRepository) ListByClass(ctx context.Context, db *gorm.DB, classID uint32) ([]model.Reservation, error) {
	var reservations []model.Reservation
	err := db.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("created_at").
		Order("id").
		Find(&reservations).Error
	return reservations, err
}
