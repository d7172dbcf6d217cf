package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/config"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db              *gorm.DB
	adminRepository *AdminRepository
	tokenManager    token.Manager
}

func NewAuthService(db *gorm.DB, adminRepository *AdminRepository, tokenManager token.Manager) *AuthService {
	return &AuthService{
		db:              db,
		adminRepository: adminRepository,
		tokenManager:    tokenManager,
	}
}

func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(request.Email)

	// 1. Find admin by email
	admin, err := a.adminRepository.FindByEmail(ctx, a.db, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("로그인 실패 - admin email not found", "email", logger.MaskEmail(email))
			return nil, fmt.Errorf("error %w", ErrInCorrectEmailPassword) // Security: don't reveal if email exists
		}
		log.Error("로그인 실패 - 알 수 없는 오류", "error", err)
		return nil, fmt.Errorf("로그인 실패: %w", err)
	}

	// 2. Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(request.Password)); err != nil {
		log.Warn("로그인 실패 - invalid password", "email", logger.MaskEmail(email))
		return nil, fmt.Errorf("error %w", ErrInCorrectEmailPassword)
	}

	// 3. Generate JWT tokens
	adminID := strconv.FormatUint(uint64(admin.ID), 10)
	accessToken, err := a.tokenManager.GenerateAccessToken(adminID, admin.Email)
	if err != nil {
		log.Error("access token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(adminID, admin.Email)
	if err != nil {
		log.Error("refresh token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	log.Info("로그인 성공", "email", logger.MaskEmail(email))

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *AuthService) CreateAdmin(ctx context.Context, request *CreateAdminRequest) (*AdminResponse, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(request.Email)

	var admin *model.Admin
	err := database.WithTransaction(ctx, a.db, func(tx *gorm.DB) error {
		exists, err := a.adminRepository.IsExist(ctx, tx, email)
		if err != nil {
			return fmt.Errorf("check admin existence: %w", err)
		}
		if exists {
			log.Warn("관리자 중복 등록 시도", "email", logger.MaskEmail(email))
			return fmt.Errorf("error %w", ErrAdminAlreadyExists)
		}

		created, err := a.createAdmin(ctx, tx, request.Name, email, request.Password)
		if err != nil {
			return err
		}
		admin = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("관리자 생성 완료", "admin_id", admin.ID, "email", logger.MaskEmail(email))
	return &AdminResponse{ID: admin.ID, Name: admin.Name, Email: admin.Email}, nil
}

// SeedAdmin creates the first admin from configuration when the admin table is empty.
// It returns false when nothing was created.
func (a *AuthService) SeedAdmin(ctx context.Context, cfg config.AdminConfig) (bool, error) {
	if cfg.Email == "" || cfg.Password == "" {
		return false, nil
	}

	log := logger.FromContext(ctx)
	seeded := false
	err := database.WithTransaction(ctx, a.db, func(tx *gorm.DB) error {
		count, err := a.adminRepository.Count(ctx, tx)
		if err != nil {
			return fmt.Errorf("count admins: %w", err)
		}
		if count > 0 {
			return nil
		}

		if _, err := a.createAdmin(ctx, tx, cfg.Name, normalizeEmail(cfg.Email), cfg.Password); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if seeded {
		log.Info("초기 관리자 계정 생성", "email", logger.MaskEmail(cfg.Email))
	}
	return seeded, nil
}

func (a *AuthService) createAdmin(ctx context.Context, tx *gorm.DB, name, email, password string) (*model.Admin, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := model.NewAdmin(name, email, string(hashedPassword))
	if err := a.adminRepository.Create(ctx, tx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
