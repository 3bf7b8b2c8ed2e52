package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cinema/internal/entities"
)

func TestTopicForEvent(t *testing.T) {
	assert.Equal(t,
		"events.UserCreated_v1",
		topicForEvent(entities.UserCreated_v1{}, "UserCreated_v1"),
	)
	assert.Equal(t,
		"events.PaymentPending_v1",
		topicForEvent(entities.PaymentPending_v1{}, "PaymentPending_v1"),
	)
	assert.Equal(t,
		"internal-events.svc-cinema.SeatReleaseDue_v1",
		topicForEvent(entities.SeatReleaseDue_v1{}, "SeatReleaseDue_v1"),
	)
}
