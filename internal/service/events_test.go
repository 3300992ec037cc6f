package service

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intranet/internal/apperr"
	"intranet/internal/storage"
	"intranet/models"
)

func existingEvent() models.Event {
	return models.Event{
		ID:               3,
		EventName:        "Annual Summit",
		EventDescription: "every year",
		EventImages:      pq.StringArray{"a_one.png", "b_two.png"},
	}
}

func TestMergeEventKeepsAbsentFields(t *testing.T) {
	existing := existingEvent()
	merged, err := mergeEvent(existing, UpdateEventInput{})
	require.NoError(t, err)
	assert.Equal(t, existing, merged)
}

func TestMergeEventNameOnly(t *testing.T) {
	merged, err := mergeEvent(existingEvent(), UpdateEventInput{Name: strptr("Annual Summit 2024")})
	require.NoError(t, err)

	assert.Equal(t, "Annual Summit 2024", merged.EventName)
	assert.Equal(t, "every year", merged.EventDescription)
	assert.Equal(t, pq.StringArray{"a_one.png", "b_two.png"}, merged.EventImages)
}

func TestMergeEventShortName(t *testing.T) {
	_, err := mergeEvent(existingEvent(), UpdateEventInput{Name: strptr("Expo")})
	require.Error(t, err)
	assert.Equal(t, "Name should have more than 5 characters", apperr.Message(err))
}

func TestValidateUploadsCap(t *testing.T) {
	uploads := make([]storage.Upload, maxEventImages+1)
	err := validateUploads(uploads)
	require.Error(t, err)
	assert.Equal(t, "Up to 5 images are allowed", apperr.Message(err))
}
