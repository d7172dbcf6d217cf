package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/logger"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// defaultCenterCapacity matches the center_config column default
const defaultCenterCapacity = 6

type SettingsService struct {
	db                 *gorm.DB
	settingsRepository *SettingsRepository
}

func NewSettingsService(db *gorm.DB, settingsRepository *SettingsRepository) *SettingsService {
	return &SettingsService{
		db:                 db,
		settingsRepository: settingsRepository,
	}
}

func (s *SettingsService) Get(ctx context.Context) (*SettingsResponse, error) {
	return s.load(ctx, s.db)
}

// Save upserts the given keys and center fields in one transaction
func (s *SettingsService) Save(ctx context.Context, request *SaveRequest, adminID uint32) (*SettingsResponse, error) {
	if len(request.Settings) == 0 && request.Center == nil {
		return nil, fmt.Errorf("error %w", ErrNothingToSave)
	}

	var response *SettingsResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		rows := make([]model.SystemSetting, 0, len(request.Settings))
		for key, value := range request.Settings {
			rows = append(rows, model.SystemSetting{
				SettingKey:   key,
				SettingValue: datatypes.JSON(value),
			})
		}
		if err := s.settingsRepository.UpsertSettings(ctx, tx, rows); err != nil {
			return fmt.Errorf("설정 저장 실패: %w", err)
		}

		if request.Center != nil {
			if err := s.saveCenter(ctx, tx, request.Center, adminID); err != nil {
				return err
			}
		}

		loaded, err := s.load(ctx, tx)
		if err != nil {
			return err
		}
		response = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("설정 저장 완료", "keys", len(request.Settings), "center", request.Center != nil)
	return response, nil
}

func (s *SettingsService) saveCenter(ctx context.Context, tx *gorm.DB, request *CenterRequest, adminID uint32) error {
	center, err := s.settingsRepository.FindCenter(ctx, tx)
	if err != nil {
		return fmt.Errorf("센터 정보 조회 실패: %w", err)
	}
	if center == nil {
		center = &model.CenterConfig{DefaultCapacity: defaultCenterCapacity}
		center.StampCreated(adminID)
	}

	if request.CenterName != nil {
		center.CenterName = *request.CenterName
	}
	if request.Address != nil {
		center.Address = *request.Address
	}
	if request.Phone != nil {
		center.Phone = *request.Phone
	}
	if request.OpenTime != nil {
		center.OpenTime = *request.OpenTime
	}
	if request.CloseTime != nil {
		center.CloseTime = *request.CloseTime
	}
	if request.DefaultCapacity != nil {
		center.DefaultCapacity = *request.DefaultCapacity
	}
	center.StampUpdated(adminID)

	if err := s.settingsRepository.SaveCenter(ctx, tx, center); err != nil {
		return fmt.Errorf("센터 정보 저장 실패: %w", err)
	}
	return nil
}

func (s *SettingsService) load(ctx context.Context, db *gorm.DB) (*SettingsResponse, error) {
	rows, err := s.settingsRepository.ListSettings(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("설정 조회 실패: %w", err)
	}

	settings := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		if len(row.SettingValue) == 0 {
			settings[row.SettingKey] = json.RawMessage("null")
			continue
		}
		settings[row.SettingKey] = json.RawMessage(row.SettingValue)
	}

	center, err := s.settingsRepository.FindCenter(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("센터 정보 조회 실패: %w", err)
	}

	return &SettingsResponse{Settings: settings, Center: toCenterResponse(center)}, nil
}
