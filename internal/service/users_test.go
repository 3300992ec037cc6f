package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intranet/internal/apperr"
	"intranet/internal/password"
	"intranet/models"
)

func existingUser(t *testing.T) models.User {
	t.Helper()
	digest, err := password.Hash("old-secret")
	require.NoError(t, err)
	return models.User{ID: 1, Name: "Alice", Email: "alice@acme.com", Password: digest}
}

func TestMergeUserKeepsAbsentFields(t *testing.T) {
	existing := existingUser(t)
	merged, err := mergeUser(existing, UpdateUserInput{})
	require.NoError(t, err)
	assert.Equal(t, existing, merged)
}

func TestMergeUserNameOnly(t *testing.T) {
	existing := existingUser(t)
	merged, err := mergeUser(existing, UpdateUserInput{Name: strptr("Alicia")})
	require.NoError(t, err)

	assert.Equal(t, "Alicia", merged.Name)
	assert.Equal(t, existing.Email, merged.Email)
	assert.Equal(t, existing.Password, merged.Password)
}

func TestMergeUserInvalidName(t *testing.T) {
	_, err := mergeUser(existingUser(t), UpdateUserInput{Name: strptr("Al")})
	require.Error(t, err)
	assert.Equal(t, "Name should have more than 3 characteres!", apperr.Message(err))
}

func TestMergeUserInvalidEmail(t *testing.T) {
	_, err := mergeUser(existingUser(t), UpdateUserInput{Email: strptr("nope")})
	require.Error(t, err)
	assert.Equal(t, "E-mail is invalid!", apperr.Message(err))
}

func TestMergeUserPasswordChange(t *testing.T) {
	existing := existingUser(t)
	merged, err := mergeUser(existing, UpdateUserInput{
		OldPassword: strptr("old-secret"),
		NewPassword: strptr("new-secret"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, existing.Password, merged.Password)
	assert.True(t, password.Compare("new-secret", merged.Password))
}

func TestMergeUserWrongOldPassword(t *testing.T) {
	_, err := mergeUser(existingUser(t), UpdateUserInput{
		OldPassword: strptr("not-it"),
		NewPassword: strptr("new-secret"),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperr.Status(err))
	assert.Equal(t, "Old password does not match", apperr.Message(err))
}

func TestMergeUserShortNewPassword(t *testing.T) {
	_, err := mergeUser(existingUser(t), UpdateUserInput{
		OldPassword: strptr("old-secret"),
		NewPassword: strptr("abcd"),
	})
	require.Error(t, err)
	assert.Equal(t, "New password invalid or not provided!", apperr.Message(err))
}

// Supplying only one of the two password fields leaves the password alone.
func TestMergeUserSinglePasswordFieldIsNoop(t *testing.T) {
	existing := existingUser(t)

	merged, err := mergeUser(existing, UpdateUserInput{NewPassword: strptr("new-secret")})
	require.NoError(t, err)
	assert.Equal(t, existing.Password, merged.Password)

	merged, err = mergeUser(existing, UpdateUserInput{OldPassword: strptr("old-secret")})
	require.NoError(t, err)
	assert.Equal(t, existing.Password, merged.Password)
}
