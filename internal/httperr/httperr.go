package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func BadGateway(c *gin.Context, code, message string) {
	Write(c, http.StatusBadGateway, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

// FromValidation writes a schedule validation failure as 400 and reports
// whether err was one.
func FromValidation(c *gin.Context, err error) bool {
	var ve *schedule.ValidationError
	if !errors.As(err, &ve) {
		return false
	}

	code := "invalid_working_hours"
	switch {
	case errors.Is(err, schedule.ErrBreaksOverlap):
		code = "breaks_overlap"
	case errors.Is(err, schedule.ErrBreakOutsideHours):
		code = "break_outside_hours"
	case errors.Is(err, schedule.ErrBreakEndBeforeStart):
		code = "invalid_break"
	}

	BadRequest(c, code, ve.Error())
	return true
}
