package user

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/quickdesk-io/quickdesk/internal/domain/user/valueobjects"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
)

func mustEmail(t *testing.T, value string) *vo.Email {
	t.Helper()
	email, err := vo.NewEmail(value)
	require.NoError(t, err)
	return email
}

func TestNewUser(t *testing.T) {
	email := mustEmail(t, "alice@example.com")

	u, err := NewUser(email, "Alice", authorization.RoleEndUser)

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email().String())
	assert.Equal(t, "Alice", u.Name())
	assert.Equal(t, authorization.RoleEndUser, u.Role())
	assert.True(t, u.IsActive())
	assert.False(t, u.CanLogin(), "no password hash yet")
}

func TestNewUser_Invalid(t *testing.T) {
	email := mustEmail(t, "alice@example.com")

	_, err := NewUser(nil, "Alice", authorization.RoleEndUser)
	assert.ErrorContains(t, err, "email is required")

	_, err = NewUser(email, "   ", authorization.RoleEndUser)
	assert.ErrorContains(t, err, "name is required")

	_, err = NewUser(email, strings.Repeat("n", 101), authorization.RoleEndUser)
	assert.ErrorContains(t, err, "100 characters")

	_, err = NewUser(email, "Alice", authorization.UserRole("superuser"))
	assert.ErrorContains(t, err, "invalid role")
}

func TestUser_RoleAndActivation(t *testing.T) {
	email := mustEmail(t, "bob@example.com")
	now := time.Now().UTC()
	u, err := ReconstructUser(1, email, "Bob", authorization.RoleEndUser, "hashed", true, now, now)
	require.NoError(t, err)

	assert.True(t, u.CanLogin())

	require.NoError(t, u.ChangeRole(authorization.RoleAgent))
	assert.Equal(t, authorization.RoleAgent, u.Role())

	assert.ErrorContains(t, u.ChangeRole(authorization.UserRole("root")), "invalid role")

	u.Deactivate()
	assert.False(t, u.IsActive())
	assert.False(t, u.CanLogin())

	u.Activate()
	assert.True(t, u.CanLogin())
}

func TestUser_SetPasswordHash(t *testing.T) {
	email := mustEmail(t, "carol@example.com")
	u, err := NewUser(email, "Carol", authorization.RoleAdmin)
	require.NoError(t, err)

	assert.ErrorContains(t, u.SetPasswordHash(""), "cannot be empty")
	require.NoError(t, u.SetPasswordHash("$2a$12$abc"))
	assert.True(t, u.CanLogin())
}

func TestEmailValidation(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"Alice@Example.COM", "alice@example.com", false},
		{"  padded@example.com ", "padded@example.com", false},
		{"", "", true},
		{"not-an-email", "", true},
		{"missing@tld", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			email, err := vo.NewEmail(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.String())
		})
	}
}

func TestPasswordPolicy(t *testing.T) {
	_, err := vo.NewPassword("abc123xy")
	assert.NoError(t, err)

	_, err = vo.NewPassword("short1")
	assert.ErrorContains(t, err, "at least 8")

	_, err = vo.NewPassword("lettersonly")
	assert.ErrorContains(t, err, "number")

	_, err = vo.NewPassword("12345678")
	assert.ErrorContains(t, err, "letter")

	_, err = vo.NewPassword(strings.Repeat("a1", 40))
	assert.ErrorContains(t, err, "72")
}
