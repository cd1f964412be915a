package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperr "github.com/KirkDiggler/enhancement-calculator/internal/errors"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// statusFor maps an application error code to an HTTP status
func statusFor(code apperr.Code) int {
	switch code {
	case apperr.CodeInvalidArgument, apperr.CodeInvalidSelection:
		return http.StatusBadRequest
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodeAlreadyExists:
		return http.StatusConflict
	case apperr.CodeUnavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(c *gin.Context, err error) {
	code := apperr.GetCode(err)
	status := statusFor(code)

	body := errorBody{Code: string(code), Message: "internal error"}
	if status < http.StatusInternalServerError {
		body.Message = rootMessage(err)
		if field, ok := apperr.GetMeta(err)["field"].(string); ok {
			body.Field = field
		}
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("code", string(code)),
			zap.Error(err))
	}

	c.AbortWithStatusJSON(status, errorResponse{Error: body})
}

// rootMessage returns the message of the deepest application error
func rootMessage(err error) string {
	msg := err.Error()
	for err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			msg = appErr.Message
			err = appErr.Cause
			continue
		}
		break
	}
	return msg
}
