package validator

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("validator 엔진을 가져올 수 없습니다")
	}
	return v, nil
}

// RegisterAll registers all common validators defined in this package.
// Safe to call more than once; tests build many routers.
func RegisterAll() error {
	var err error
	registerOnce.Do(func() {
		err = registerAll()
	})
	return err
}

func registerAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("validator 엔진 가져오기 실패: %w", err)
	}

	validations := map[string]validator.Func{
		"phone": ValidatePhone,
		"hhmm":  ValidateHHMM,
		"date":  ValidateDate,
		"month": ValidateMonth,
	}

	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("%s validator 등록 실패: %w", tag, err)
		}
	}

	slog.Info("공통 Validator 등록 완료", "validators", "phone,hhmm,date,month")
	return nil
}
