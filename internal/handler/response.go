package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/medisuite/hospital-api/pkg/errors"
)

// Error writes the uniform error envelope for err, mapping the
// application taxonomy onto HTTP statuses.
func Error(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	if appErr.Code == apperrors.ErrInternal || appErr.Code == apperrors.ErrStorageUnavailable {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}
	c.JSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message})
}
