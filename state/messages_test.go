package state

import (
	"testing"

	"weather-dashboard/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageQueueAppendOrder(t *testing.T) {
	queue := NewMessageQueue()
	queue.AddError("first")
	queue.AddSuccess("second")
	queue.AddWarning("third")
	queue.AddInfo("fourth")

	messages := queue.Messages()
	require.Len(t, messages, 4)

	assert.Equal(t, "first", messages[0].Text)
	assert.Equal(t, models.MessageColorError, messages[0].Color)
	assert.Equal(t, "second", messages[1].Text)
	assert.Equal(t, models.MessageColorSuccess, messages[1].Color)
	assert.Equal(t, "third", messages[2].Text)
	assert.Equal(t, models.MessageColorWarning, messages[2].Color)
	assert.Equal(t, "fourth", messages[3].Text)
	assert.Equal(t, models.MessageColorInfo, messages[3].Color)
}

func TestMessageQueueSnapshotIsACopy(t *testing.T) {
	queue := NewMessageQueue()
	queue.AddInfo("stable")

	snapshot := queue.Messages()
	snapshot[0].Text = "mutated"

	assert.Equal(t, "stable", queue.Messages()[0].Text)
}

func TestMessageQueueDismiss(t *testing.T) {
	queue := NewMessageQueue()
	queue.AddError("keep me")
	queue.AddError("dismiss me")

	messages := queue.Messages()
	require.Len(t, messages, 2)

	assert.True(t, queue.Dismiss(messages[1].ID))

	remaining := queue.Messages()
	require.Len(t, remaining, 1)
	assert.Equal(t, "keep me", remaining[0].Text)

	assert.False(t, queue.Dismiss(uuid.New()))
}
