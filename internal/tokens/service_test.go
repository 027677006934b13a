package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
)

func TestIssueParse(t *testing.T) {
	service := New("test-secret", time.Hour)

	token, err := service.Issue("student@camp.dev")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := service.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "student@camp.dev", email)
}

func TestParseExpired(t *testing.T) {
	service := New("test-secret", -time.Minute)

	token, err := service.Issue("student@camp.dev")
	require.NoError(t, err)

	_, err = service.Parse(token)
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidToken)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := New("secret-a", time.Hour).Issue("student@camp.dev")
	require.NoError(t, err)

	_, err = New("secret-b", time.Hour).Parse(token)
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	service := New("test-secret", time.Hour)

	_, err := service.Parse("not-a-token")
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidToken)
}
