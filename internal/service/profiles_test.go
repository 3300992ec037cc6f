package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intranet/internal/apperr"
	"intranet/models"
)

func existingProfile() models.Profile {
	return models.Profile{ID: 7, Name: "Acme Co", Description: "desc", ImagePath: "abc_logo.png"}
}

func TestMergeProfileKeepsAbsentFields(t *testing.T) {
	existing := existingProfile()
	merged, err := mergeProfile(existing, UpdateProfileInput{})
	require.NoError(t, err)
	assert.Equal(t, existing, merged)
}

// Supplying only the description must not disturb the name or the image
// reference.
func TestMergeProfileDescriptionOnly(t *testing.T) {
	merged, err := mergeProfile(existingProfile(), UpdateProfileInput{Description: strptr("new desc")})
	require.NoError(t, err)

	assert.Equal(t, "Acme Co", merged.Name)
	assert.Equal(t, "new desc", merged.Description)
	assert.Equal(t, "abc_logo.png", merged.ImagePath)
}

func TestMergeProfileNameOnly(t *testing.T) {
	merged, err := mergeProfile(existingProfile(), UpdateProfileInput{Name: strptr("Acme Corp")})
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", merged.Name)
	assert.Equal(t, "desc", merged.Description)
	assert.Equal(t, "abc_logo.png", merged.ImagePath)
}

func TestMergeProfileShortName(t *testing.T) {
	_, err := mergeProfile(existingProfile(), UpdateProfileInput{Name: strptr("Acme")})
	require.Error(t, err)
	assert.Equal(t, "Name should have more than 5 characters", apperr.Message(err))
}

func TestMergeProfileEmptyDescriptionRejected(t *testing.T) {
	_, err := mergeProfile(existingProfile(), UpdateProfileInput{Description: strptr("")})
	require.Error(t, err)
	assert.Equal(t, "Description is mandatory", apperr.Message(err))
}
