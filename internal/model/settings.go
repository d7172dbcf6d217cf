package model

import (
	"time"

	"gorm.io/datatypes"
)

// SystemSetting is a free-form key/value row; the value is stored as JSON
type SystemSetting struct {
	ID           uint32         `gorm:"column:id;primaryKey;autoIncrement"`
	SettingKey   string         `gorm:"column:setting_key;type:VARCHAR(100);not null;uniqueIndex:idx_system_settings_key"`
	SettingValue datatypes.JSON `gorm:"column:setting_value"`
	Description  *string        `gorm:"column:description;type:VARCHAR(500)"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;not null"`
}

func (*SystemSetting) TableName() string {
	return "system_settings"
}

// CenterConfig holds the single row of studio information
type CenterConfig struct {
	ID              uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	CenterName      string `gorm:"column:center_name;type:VARCHAR(100);not null"`
	Address         string `gorm:"column:address;type:VARCHAR(255)"`
	Phone           string `gorm:"column:phone;type:VARCHAR(20)"`
	OpenTime        string `gorm:"column:open_time;type:VARCHAR(5)"`
	CloseTime       string `gorm:"column:close_time;type:VARCHAR(5)"`
	DefaultCapacity int    `gorm:"column:default_capacity;not null;default:6"`

	BaseEntity
}

func (*CenterConfig) TableName() string {
	return "center_config"
}
