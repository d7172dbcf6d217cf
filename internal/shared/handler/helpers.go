package handler

import (
	"net/http"
	"strconv"

	sharedError "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// SuccessResponse is the JSON body of every successful request
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req CancelRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		// Add error to context for middleware logging
		c.Error(err)

		// Check if it's a validation error
		if resp, ok := validator.ToErrorResponse(err); ok {
			c.JSON(http.StatusBadRequest, resp)
		} else {
			// JSON parsing error or other binding errors
			c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		}
		return false
	}
	return true
}

// BindQuery is BindJSON for query strings
func BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.Error(err)

		if resp, ok := validator.ToErrorResponse(err); ok {
			c.JSON(http.StatusBadRequest, resp)
		} else {
			c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		}
		return false
	}
	return true
}

// PathID reads a numeric path parameter, responding 400 when it is not a positive integer
func PathID(c *gin.Context, name string) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		RespondError(c, err, sharedError.InvalidPathParam)
		return 0, false
	}
	return uint32(id), true
}

// RespondError sends an error response with logging
//
// Usage:
//
//	if err := service.DoSomething(); err != nil {
//	    handler.RespondError(c, err, sharedError.InternalServerError)
//	    return
//	}
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	// Add error to context for middleware logging
	if err != nil {
		c.Error(err)
	}

	c.JSON(errResp.Status, errResp)
}

// RespondServiceError resolves registered domain errors and falls back to 500
func RespondServiceError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		RespondError(c, err, resp)
		return
	}

	RespondError(c, err, sharedError.InternalServerError)
}

// RespondSuccess wraps data in {success:true, data}
func RespondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, SuccessResponse{Success: true, Data: data})
}
