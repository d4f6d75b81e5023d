package errutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := New(KindNotEligible, "cooldown active", WithField("reason", "CooldownActive"))
	wrapped := fmt.Errorf("record submission: %w", err)

	assert.True(t, errors.Is(wrapped, ErrNotEligible))
	assert.False(t, errors.Is(wrapped, ErrValidation))
	assert.Equal(t, KindNotEligible, KindOf(wrapped))
}

func TestError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := StoreUnavailable(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestBody(t *testing.T) {
	status, body := Body(Validation("videoUrl", "unsupported video platform"))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, KindValidation, body["code"])
	assert.Equal(t, "videoUrl", body["field"])
	assert.Equal(t, "unsupported video platform", body["error"])
}

func TestBody_UnknownError(t *testing.T) {
	status, body := Body(errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", body["error"])
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindUnauthorized:        http.StatusUnauthorized,
		KindForbidden:           http.StatusForbidden,
		KindValidation:          http.StatusBadRequest,
		KindNotEligible:         http.StatusConflict,
		KindInvalidTransition:   http.StatusConflict,
		KindInsufficientBalance: http.StatusUnprocessableEntity,
		KindMissingDestination:  http.StatusUnprocessableEntity,
		KindNotFound:            http.StatusNotFound,
		KindStoreUnavailable:    http.StatusServiceUnavailable,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(kind), string(kind))
	}
}
