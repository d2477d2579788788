// Package response writes JSON error bodies at the handler boundary.
package response

import (
	"errors"
	"net/http"

	"findit-backend/pkg/apperror"
	"findit-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const genericMessage = "Something went wrong"

// Error writes err to the client. Typed errors keep their message; anything
// else is logged and replaced with a generic 500.
func Error(c *gin.Context, log logrus.FieldLogger, err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindInternal {
		log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).WithError(err).Error("unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"message": genericMessage})
		return
	}

	var appErr *apperror.Error
	errors.As(err, &appErr)
	c.JSON(apperror.HTTPStatus(kind), gin.H{"message": appErr.Message})
}

// BindError answers a failed ShouldBindJSON with 400 and field-level details.
func BindError(c *gin.Context, err error) {
	if fields, ok := validation.FieldErrors(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
}
