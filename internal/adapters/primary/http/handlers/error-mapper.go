package handlers

import (
	"errors"
	"net/http"

	"lx-registry-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrActiveModelNotFound),
		errors.Is(err, domain.ErrModelMetaNotFound),
		errors.Is(err, domain.ErrLxUserNotFound),
		errors.Is(err, domain.ErrCenterNotFound),
		errors.Is(err, domain.ErrPatientNotFound),
		errors.Is(err, domain.ErrFrameNotFound),
		errors.Is(err, domain.ErrLegacyFrameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrActiveModelNameConflict),
		errors.Is(err, domain.ErrModelMetaConflict),
		errors.Is(err, domain.ErrModelMetaAlreadyBound),
		errors.Is(err, domain.ErrLxUserNameConflict),
		errors.Is(err, domain.ErrCenterNameConflict),
		errors.Is(err, domain.ErrFrameConflict),
		errors.Is(err, domain.ErrMultipleFound):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
