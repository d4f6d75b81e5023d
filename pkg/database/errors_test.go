package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"pullup-club/pkg/config"
	"pullup-club/pkg/errutil"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, Translate(nil))

	notEligible := errutil.New(errutil.KindNotEligible, "cooldown")
	assert.Same(t, notEligible, Translate(notEligible))

	assert.ErrorIs(t, Translate(gorm.ErrRecordNotFound), errutil.ErrNotFound)
	duplicate := Translate(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey))
	assert.ErrorIs(t, duplicate, ErrDuplicate)
	assert.ErrorIs(t, Translate(duplicate), ErrDuplicate)
	assert.ErrorIs(t, Translate(gorm.ErrCheckConstraintViolated), errutil.ErrInvalidTransition)

	unavailable := Translate(context.DeadlineExceeded)
	assert.ErrorIs(t, unavailable, errutil.ErrStoreUnavailable)
	assert.True(t, errors.Is(unavailable, context.DeadlineExceeded))
}

func TestDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "club",
		DBPassword: "secret",
		DBName:     "pullupclub",
		DBSSLMode:  "disable",
	}

	assert.Equal(t, "host=db user=club password=secret dbname=pullupclub port=5432 sslmode=disable TimeZone=UTC", DSN(cfg))
}
