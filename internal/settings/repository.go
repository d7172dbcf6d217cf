package settings

import (
	"context"
	"errors"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct{}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

func (r *SettingsRepository) ListSettings(ctx context.Context, db *gorm.DB) ([]model.SystemSetting, error) {
	var rows []model.SystemSetting
	err := db.WithContext(ctx).Order("setting_key").Find(&rows).Error
	return rows, err
}

// UpsertSettings inserts new keys and overwrites the value of existing ones
func (r *SettingsRepository) UpsertSettings(ctx context.Context, db *gorm.DB, rows []model.SystemSetting) error {
	if len(rows) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
		}).
		Create(&rows).Error
}

// FindCenter returns the single center row, nil when it was never saved
func (r *SettingsRepository) FindCenter(ctx context.Context, db *gorm.DB) (*model.CenterConfig, error) {
	var center model.CenterConfig
	err := db.WithContext(ctx).Order("id").First(&center).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &center, nil
}

func (r *SettingsRepository) SaveCenter(ctx context.Context, db *gorm.DB, center *model.CenterConfig) error {
	return db.WithContext(ctx).Save(center).Error
}
