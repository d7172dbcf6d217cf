package auth_test

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/auth"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/config"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	sharedError "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/testutil"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// setupTestEnvironment creates all dependencies needed for auth handler tests
func setupTestEnvironment(t *testing.T, tokenManager token.Manager) (*gin.Engine, *auth.AuthService, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)

	authService := auth.NewAuthService(db, auth.NewAdminRepository(), tokenManager)
	authHandler := auth.NewAuthHandler(authService)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/login", authHandler.Login)
	router.POST("/api/v1/auth/admins", authHandler.CreateAdmin)

	return router, authService, db
}

func createAdmin(t *testing.T, db *gorm.DB, email, password string) *model.Admin {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	admin := model.NewAdmin("관리자", email, string(hashed))
	testutil.MustCreate(t, db, admin)
	return admin
}

func TestLogin_Success(t *testing.T) {
	// Given: a real JWT manager so the issued token can be validated
	jwtManager := token.NewJWTManager(testutil.NewTestConfig())
	router, _, db := setupTestEnvironment(t, jwtManager)
	admin := createAdmin(t, db, "admin@studio.kr", "password123")

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body:   auth.LoginRequest{Email: "Admin@Studio.kr", Password: "password123"},
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var response auth.LoginResponse
	env := testutil.ParseData(t, recorder, &response)
	assert.True(t, env.Success)
	require.NotEmpty(t, response.AccessToken)
	require.NotEmpty(t, response.RefreshToken)

	claims, err := jwtManager.ValidateAccessToken(response.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@studio.kr", claims.Email)
	assert.Equal(t, strconv.FormatUint(uint64(admin.ID), 10), claims.AdminID)

	_, err = jwtManager.ValidateAccessToken(response.RefreshToken)
	assert.ErrorIs(t, err, token.ErrInvalidClaims, "refresh token must not work as bearer")
}

func TestLogin_WrongCredentials(t *testing.T) {
	router, _, db := setupTestEnvironment(t, testutil.NewMockTokenManager())
	createAdmin(t, db, "admin@studio.kr", "password123")

	testCases := []struct {
		name  string
		email string
	}{
		{name: "unknown email", email: "nobody@studio.kr"},
		{name: "wrong password", email: "admin@studio.kr"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/auth/login",
				Body:   auth.LoginRequest{Email: tc.email, Password: "wrongpass1"},
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.False(t, errorResponse.Success)
			assert.Equal(t, "AUTH-003", errorResponse.Code)
		})
	}
}

func TestLogin_ValidationError(t *testing.T) {
	router, _, _ := setupTestEnvironment(t, testutil.NewMockTokenManager())

	testCases := []struct {
		name string
		body map[string]string
	}{
		{name: "missing email", body: map[string]string{"password": "password123"}},
		{name: "invalid email", body: map[string]string{"email": "not-an-email", "password": "password123"}},
		{name: "short password", body: map[string]string{"email": "admin@studio.kr", "password": "short"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/auth/login",
				Body:   tc.body,
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.NotEmpty(t, errorResponse.Message)
			assert.NotEmpty(t, errorResponse.Code)
		})
	}
}

func TestCreateAdmin(t *testing.T) {
	router, _, db := setupTestEnvironment(t, testutil.NewMockTokenManager())

	request := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/admins",
		Body:   auth.CreateAdminRequest{Name: "매니저", Email: "manager@studio.kr", Password: "password123"},
	}

	recorder := testutil.ExecuteRequest(t, router, request)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var response auth.AdminResponse
	testutil.ParseData(t, recorder, &response)
	assert.NotZero(t, response.ID)
	assert.Equal(t, "manager@studio.kr", response.Email)

	var stored model.Admin
	require.NoError(t, db.First(&stored, response.ID).Error)
	assert.NotEqual(t, "password123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))

	// 같은 이메일로 다시 등록
	duplicate := testutil.ExecuteRequest(t, router, request)
	assert.Equal(t, http.StatusConflict, duplicate.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, duplicate, &errorResponse)
	assert.Equal(t, "AUTH-004", errorResponse.Code)
}

func TestSeedAdmin(t *testing.T) {
	_, authService, db := setupTestEnvironment(t, testutil.NewMockTokenManager())
	ctx := context.Background()

	seeded, err := authService.SeedAdmin(ctx, config.AdminConfig{})
	require.NoError(t, err)
	assert.False(t, seeded, "no credentials configured")

	cfg := config.AdminConfig{Email: "owner@studio.kr", Password: "password123", Name: "원장"}
	seeded, err = authService.SeedAdmin(ctx, cfg)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = authService.SeedAdmin(ctx, config.AdminConfig{Email: "second@studio.kr", Password: "password123"})
	require.NoError(t, err)
	assert.False(t, seeded, "table already has an admin")

	assert.Equal(t, int64(1), testutil.CountRows(t, db, &model.Admin{}, ""))
}
