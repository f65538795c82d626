package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestNewTokenParse(t *testing.T) {
	t.Parallel()

	token, err := NewToken(42, secret, time.Hour)
	require.NoError(t, err)

	claims, err := Parse(token, secret)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	expired, err := NewToken(42, secret, -time.Minute)
	require.NoError(t, err)

	noUser, err := NewToken(0, secret, time.Hour)
	require.NoError(t, err)

	otherSecret, err := NewToken(42, "another-secret", time.Hour)
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "Garbage", token: "not-a-token"},
		{name: "Expired", token: expired},
		{name: "Wrong secret", token: otherSecret},
		{name: "Missing user", token: noUser},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tc.token, secret)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidToken))
		})
	}
}
