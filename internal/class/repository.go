package class

import (
	"context"
	"errors"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/database"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultCapacity applies when center_config has no row yet
const DefaultCapacity = 6

type ClassRepository struct{}

func NewClassRepository() *ClassRepository {
	return &ClassRepository{}
}

func (r *ClassRepository) Create(ctx context.Context, db *gorm.DB, class *model.Class) error {
	return db.WithContext(ctx).Create(class).Error
}

func (r *ClassRepository) Save(ctx context.Context, db *gorm.DB, class *model.Class) error {
	return db.WithContext(ctx).Omit("Instructor").Save(class).Error
}

func (r *ClassRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Class, error) {
	var class model.Class
	err := db.WithContext(ctx).Preload("Instructor").Where("id = ?", id).First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// FindByIDForUpdate locks the class row until the surrounding transaction ends
func (r *ClassRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint32) (*model.Class, error) {
	var class model.Class
	err := database.ForUpdate(tx.WithContext(ctx)).Where("id = ?", id).First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// ListBetween returns classes with from <= class_date <= to, in schedule order
func (r *ClassRepository) ListBetween(ctx context.Context, db *gorm.DB, from, to datatypes.Date) ([]model.Class, error) {
	var classes []model.Class
	err := db.WithContext(ctx).
		Preload("Instructor").
		Where("class_date >= ? AND class_date <= ?", from, to).
		Order("class_date").
		Order("start_time").
		Order("id").
		Find(&classes).Error
	return classes, err
}

// CountReservations returns the number of reservations per class id
func (r *ClassRepository) CountReservations(ctx context.Context, db *gorm.DB, classIDs []uint32) (map[uint32]int, error) {
	counts := make(map[uint32]int, len(classIDs))
	if len(classIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		ClassID uint32
		Count   int
	}
	err := db.WithContext(ctx).
		Model(&model.Reservation{}).
		Select("class_id, COUNT(*) AS count").
		Where("class_id IN ?", classIDs).
		Group("class_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.ClassID] = row.Count
	}
	return counts, nil
}

func (r *ClassRepository) CountReservationsOf(ctx context.Context, db *gorm.DB, classID uint32) (int, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Reservation{}).
		Where("class_id = ?", classID).
		Count(&count).Error
	return int(count), err
}

// Delete removes the class and its reservations
func (r *ClassRepository) Delete(ctx context.Context, db *gorm.DB, id uint32) error {
	tx := db.WithContext(ctx)
	if err := tx.Where("class_id = ?", id).Delete(&model.Reservation{}).Error; err != nil {
		return err
	}
	return tx.Where("id = ?", id).Delete(&model.Class{}).Error
}

func (r *ClassRepository) InstructorExists(ctx context.Context, db *gorm.DB, instructorID uint32) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Instructor{}).
		Where("id = ?", instructorID).
		Count(&count).Error
	return count > 0, err
}

// DefaultCapacity reads center_config.default_capacity
func (r *ClassRepository) DefaultCapacity(ctx context.Context, db *gorm.DB) (int, error) {
	var cfg model.CenterConfig
	err := db.WithContext(ctx).Order("id").First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultCapacity, nil
		}
		return 0, err
	}
	if cfg.DefaultCapacity <= 0 {
		return DefaultCapacity, nil
	}
	return cfg.DefaultCapacity, nil
}
