package error

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDomainError_WrappedSentinel(t *testing.T) {
	errTest := NewDomainError("TEST_NOT_FOUND")
	RegisterDomainErrorResponse("TEST_NOT_FOUND", ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "TEST-001",
		Message: "없음",
	})

	resp, ok := ResolveDomainError(fmt.Errorf("조회 실패 id=1: %w", errTest))

	assert.True(t, ok)
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "TEST-001", resp.Code)
}

func TestResolveDomainError_Unregistered(t *testing.T) {
	_, ok := ResolveDomainError(fmt.Errorf("plain error"))
	assert.False(t, ok)

	_, ok = ResolveDomainError(NewDomainError("UNKNOWN_INFO"))
	assert.False(t, ok)

	_, ok = ResolveDomainError(nil)
	assert.False(t, ok)
}
