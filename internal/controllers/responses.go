package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// parseID reads the positive integer id path parameter
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func respondNotFound(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: message})
}

// respondValidationError answers with the generic error list; the details are only logged
func respondValidationError(ctx *gin.Context, err error) {
	log.WithError(err).WithField("path", ctx.Request.URL.Path).Warn("Rejected invalid input")
	ctx.JSON(http.StatusBadRequest, models.ValidationErrorResponse{Errors: []string{models.MsgValidationErrors}})
}

func respondInternalError(ctx *gin.Context, message string, err error) {
	log.WithError(err).WithField("path", ctx.Request.URL.Path).Error(message)
	_ = ctx.Error(err)
	ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: message})
}

// respondLookupError turns a service lookup error into a 404 or a 500
func respondLookupError(ctx *gin.Context, err error, notFound, failure string) {
	if errors.Is(err, models.ErrNotFound) {
		respondNotFound(ctx, notFound)
		return
	}
	respondInternalError(ctx, failure, err)
}
