package settings_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/settings"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	settingsHandler := settings.NewSettingsHandler(settings.NewSettingsService(db, settings.NewSettingsRepository()))

	router := testutil.SetupTestRouter()
	router.GET("/api/settings", settingsHandler.Get)
	router.POST("/api/settings", settingsHandler.Save)

	return router, db
}

func TestGetSettings_Empty(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/api/settings"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response settings.SettingsResponse
	env := testutil.ParseData(t, recorder, &response)
	assert.True(t, env.Success)
	assert.Empty(t, response.Settings)
	assert.Nil(t, response.Center)
}

func TestSaveSettings_UpsertsKeysAndCenter(t *testing.T) {
	router, db := setupTestEnvironment(t)

	first := `{"settings": {"cancel_deadline_hours": 3, "notice": {"text": "휴무 안내"}}, "center": {"center_name": "바른 필라테스", "open_time": "06:00"}}`
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodPost, URL: "/api/settings", Body: first})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	second := `{"settings": {"cancel_deadline_hours": 6}, "center": {"default_capacity": 8}}`
	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodPost, URL: "/api/settings", Body: second})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var response settings.SettingsResponse
	testutil.ParseData(t, recorder, &response)

	var hours int
	require.NoError(t, json.Unmarshal(response.Settings["cancel_deadline_hours"], &hours))
	assert.Equal(t, 6, hours)

	var notice map[string]string
	require.NoError(t, json.Unmarshal(response.Settings["notice"], &notice))
	assert.Equal(t, "휴무 안내", notice["text"])

	require.NotNil(t, response.Center)
	assert.Equal(t, "바른 필라테스", response.Center.CenterName)
	assert.Equal(t, "06:00", response.Center.OpenTime)
	assert.Equal(t, 8, response.Center.DefaultCapacity)

	assert.Equal(t, int64(2), testutil.CountRows(t, db, &model.SystemSetting{}, ""))
	assert.Equal(t, int64(1), testutil.CountRows(t, db, &model.CenterConfig{}, ""))
}

func TestSaveSettings_Rejections(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	testCases := []struct {
		name string
		body string
		code string
	}{
		{name: "nothing to save", body: `{}`, code: "SETTINGS-001"},
		{name: "bad open time", body: `{"center": {"open_time": "6am"}}`, code: "ERROR-001"},
		{name: "zero capacity", body: `{"center": {"default_capacity": 0}}`, code: "ERROR-001"},
		{name: "malformed json", body: `{"settings": `, code: "ERROR-002"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodPost, URL: "/api/settings", Body: tc.body})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			env := testutil.ParseData(t, recorder, nil)
			assert.Equal(t, tc.code, env.Code)
		})
	}
}
