package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserHashesPassword(t *testing.T) {
	user, err := NewUser("  Owner@Maree.Local ", "s3cret-pass", "Owner")
	require.NoError(t, err)

	assert.Equal(t, "owner@maree.local", user.Email, "email is normalized to lowercase")
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash, "password must not be stored in clear")
	assert.True(t, user.Active, "new users start active")

	assert.True(t, user.CheckPassword("s3cret-pass"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestUserValidate(t *testing.T) {
	ctx := context.Background()

	user, err := NewUser("owner@maree.local", "s3cret-pass", "Owner")
	require.NoError(t, err)
	require.NoError(t, user.Validate(ctx))

	user.Email = "not-an-email"
	assert.Error(t, user.Validate(ctx), "invalid email should fail validation")
}
