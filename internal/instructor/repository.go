package instructor

import (
	"context"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"gorm.io/gorm"
)

type InstructorRepository struct{}

func NewInstructorRepository() *InstructorRepository {
	return &InstructorRepository{}
}

func (r *InstructorRepository) Create(ctx context.Context, db *gorm.DB, instructor *model.Instructor) error {
	return db.WithContext(ctx).Create(instructor).Error
}

func (r *InstructorRepository) Save(ctx context.Context, db *gorm.DB, instructor *model.Instructor) error {
	return db.WithContext(ctx).Save(instructor).Error
}

func (r *InstructorRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Instructor, error) {
	var instructor model.Instructor
	err := db.WithContext(ctx).Where("id = ?", id).First(&instructor).Error
	if err != nil {
		return nil, err
	}
	return &instructor, nil
}

func (r *InstructorRepository) List(ctx context.Context, db *gorm.DB, activeOnly bool) ([]model.Instructor, error) {
	var instructors []model.Instructor
	q := db.WithContext(ctx).Order("name").Order("id")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&instructors).Error
	return instructors, err
}

// Delete removes the instructor; past classes keep their history without an instructor
func (r *InstructorRepository) Delete(ctx context.Context, db *gorm.DB, id uint32) error {
	tx := db.WithContext(ctx)
	if err := tx.Model(&model.Class{}).Where("instructor_id = ?", id).Update("instructor_id", nil).Error; err != nil {
		return err
	}
	return tx.Where("id = ?", id).Delete(&model.Instructor{}).Error
}
