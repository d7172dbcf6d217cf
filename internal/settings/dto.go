package settings

import (
	"encoding/json"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
)

type CenterRequest struct {
	CenterName      *string `json:"center_name" binding:"omitempty,min=1,max=100"`
	Address         *string `json:"address" binding:"omitempty,max=255"`
	Phone           *string `json:"phone" binding:"omitempty,max=20"`
	OpenTime        *string `json:"open_time" binding:"omitempty,hhmm"`
	CloseTime       *string `json:"close_time" binding:"omitempty,hhmm"`
	DefaultCapacity *int    `json:"default_capacity" binding:"omitempty,min=1,max=100"`
}

// SaveRequest upserts every key in settings and, when present, the center row
type SaveRequest struct {
	Settings map[string]json.RawMessage `json:"settings" binding:"omitempty,dive,keys,min=1,max=100,endkeys"`
	Center   *CenterRequest             `json:"center"`
}

type CenterResponse struct {
	CenterName      string `json:"center_name"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	OpenTime        string `json:"open_time"`
	CloseTime       string `json:"close_time"`
	DefaultCapacity int    `json:"default_capacity"`
}

type SettingsResponse struct {
	Settings map[string]json.RawMessage `json:"settings"`
	Center   *CenterResponse            `json:"center"`
}

func toCenterResponse(c *model.CenterConfig) *CenterResponse {
	if c == nil {
		return nil
	}
	return &CenterResponse{
		CenterName:      c.CenterName,
		Address:         c.Address,
		Phone:           c.Phone,
		OpenTime:        c.OpenTime,
		CloseTime:       c.CloseTime,
		DefaultCapacity: c.DefaultCapacity,
	}
}
