package middleware

import (
	stderrors "errors"
	"net/http"

	"medical-store/internal/domain"
	"medical-store/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler renders the last error attached with c.Error as JSON
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var stdErr *errors.StandardError
		if stderrors.As(err, &stdErr) {
			logger.Warn("Request error",
				zap.String("error_code", stdErr.Code),
				zap.String("message", stdErr.Message),
				zap.String("details", stdErr.Details),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			c.JSON(stdErr.HTTPStatus(), stdErr)
			return
		}

		if stderrors.Is(err, domain.ErrItemNotFound) {
			notFound := errors.NewItemNotFound(c.Param("id"))
			c.JSON(notFound.HTTPStatus(), notFound)
			return
		}

		logger.Error("Unhandled error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("internal server error", err))
	}
}

// RecoveryHandler is a panic recovery middleware
func RecoveryHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errors.NewInternalError("internal server error", nil))
	})
}

// NotFoundHandler answers unknown routes in the standard error shape
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := errors.NewRouteNotFound(c.Request.Method, c.Request.URL.Path)
		c.JSON(err.HTTPStatus(), err)
	}
}
