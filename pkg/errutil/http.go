package errutil

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func HTTPStatus(kind Kind) int {
	switch kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusBadRequest
	case KindNotEligible, KindInvalidTransition:
		return http.StatusConflict
	case KindInsufficientBalance, KindMissingDestination:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Body renders err as {"code": ..., "error": ..., <fields>}. Unknown errors
// are reported without their internal message.
func Body(err error) (int, gin.H) {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError, gin.H{"code": "Internal", "error": "internal server error"}
	}

	body := gin.H{"code": e.Kind, "error": e.Message}
	for k, v := range e.Fields {
		body[k] = v
	}
	return HTTPStatus(e.Kind), body
}

func Respond(c *gin.Context, err error) {
	status, body := Body(err)
	c.AbortWithStatusJSON(status, body)
}
