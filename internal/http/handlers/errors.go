package handlers

import (
	"net/http"

	"travelia/internal/domain"
	"travelia/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. The conflict
// case is the manifest duplicate guard and gets its own code so the
// frontend can show "sudah diproses" instead of a generic failure.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondCoded(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondCoded(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondCoded(c, http.StatusConflict, "already_processed", err.Error())
	default:
		respondCoded(c, http.StatusInternalServerError, "internal_error", "terjadi kesalahan")
	}
}

func respondCoded(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "body kosong", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload tidak valid", err)
		return false
	}
	return true
}
