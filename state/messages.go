package state

import (
	"sync"

	"weather-dashboard/models"

	"github.com/google/uuid"
)

// MessageQueue is an append-only ordered queue of user-facing notifications.
// Insertion order is display order. Multiple orchestrators append to the same
// queue; consumption and dismissal belong to the presentation layer.
type MessageQueue struct {
	mutex sync.Mutex
	queue []models.Message
}

// NewMessageQueue creates an empty message queue
func NewMessageQueue() *MessageQueue {
	return &MessageQueue{}
}

// Add appends a message to the queue.
func (q *MessageQueue) Add(message models.Message) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	q.queue = append(q.queue, message)
}

// AddError appends an error-colored message.
func (q *MessageQueue) AddError(text string) {
	q.Add(models.NewMessage(text, models.MessageColorError))
}

// AddSuccess appends a success-colored message.
func (q *MessageQueue) AddSuccess(text string) {
	q.Add(models.NewMessage(text, models.MessageColorSuccess))
}

// AddWarning appends a warning-colored message.
func (q *MessageQueue) AddWarning(text string) {
	q.Add(models.NewMessage(text, models.MessageColorWarning))
}

// AddInfo appends an info-colored message.
func (q *MessageQueue) AddInfo(text string) {
	q.Add(models.NewMessage(text, models.MessageColorInfo))
}

// Messages returns a snapshot of the queue in insertion order.
func (q *MessageQueue) Messages() []models.Message {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	snapshot := make([]models.Message, len(q.queue))
	copy(snapshot, q.queue)
	return snapshot
}

// Dismiss removes the message with the given ID and reports whether it was
// present.
func (q *MessageQueue) Dismiss(id uuid.UUID) bool {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	for i, message := range q.queue {
		if message.ID == id {
			q.queue = append(q.queue[:i], q.queue[i+1:]...)
			return true
		}
	}
	return false
}
