package bizerror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

type ActionFailureBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ShouldEscalate reports whether an action failure must surface as a non-2xx
// response instead of a 200 body with success=false.
func ShouldEscalate(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrForbidden)
}

// SafeActionMessage converts an action failure into a message safe for the
// caller. Raw persistence error text never passes through.
func SafeActionMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidStatus):
		return "invalid status"
	case errors.Is(err, ErrInvalidAction):
		return "invalid action"
	case errors.Is(err, ErrInvalidReplyText):
		return "reply text must be at least 10 characters"
	case errors.Is(err, ErrMessageClosed):
		return "message is closed"
	}
	return "operation failed"
}

func RespondActionFailure(c *gin.Context, err error, fields logrus.Fields) {
	if ShouldEscalate(err) {
		panic(err)
	}
	logrus.WithFields(fields).Error("action failed: ", err)
	c.JSON(http.StatusOK, &ActionFailureBody{Success: false, Error: SafeActionMessage(err)})
}
