package bootstrap

import (
	"context"
	"net/http"
	"testing"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/auth"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/membership"
	sharedError "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupEngine_RecoversPanics(t *testing.T) {
	cfg := testutil.NewTestConfig()
	cfg.Metrics.Enabled = true

	engine := NewBootstrap(cfg).SetupEngine()
	engine.GET("/boom", func(c *gin.Context) {
		panic(struct{ reason string }{"not a string"})
	})

	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/boom"})
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.False(t, errorResponse.Success)
	assert.Equal(t, sharedError.InternalServerError.Code, errorResponse.Code)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestStartScheduler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	service := membership.NewMembershipService(db, membership.NewMembershipRepository(), testutil.Clock(), testutil.Seoul())

	cfg := testutil.NewTestConfig()
	cfg.Scheduler.Enabled = false
	job, err := NewBootstrap(cfg).StartScheduler(service)
	require.NoError(t, err)
	assert.Nil(t, job)

	cfg.Scheduler.Enabled = true
	cfg.Scheduler.MembershipRefreshCron = "every day"
	_, err = NewBootstrap(cfg).StartScheduler(service)
	assert.Error(t, err)

	cfg.Scheduler.MembershipRefreshCron = "0 3 * * *"
	job, err = NewBootstrap(cfg).StartScheduler(service)
	require.NoError(t, err)
	require.NotNil(t, job)
	job.Stop(context.Background())
}

func TestSeedAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	authService := auth.NewAuthService(db, auth.NewAdminRepository(), testutil.NewMockTokenManager())

	cfg := testutil.NewTestConfig()
	cfg.Admin.Email = "owner@studio.kr"
	cfg.Admin.Password = "password123"
	cfg.Admin.Name = "원장"

	require.NoError(t, NewBootstrap(cfg).SeedAdmin(context.Background(), authService))
	require.NoError(t, NewBootstrap(cfg).SeedAdmin(context.Background(), authService))

	var count int64
	require.NoError(t, db.Table("admin").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
