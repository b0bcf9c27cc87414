package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventDoctorOnboarded, func(ctx context.Context, event Event) error {
		got = append(got, event)
		return nil
	})
	d.Subscribe(EventAppointmentCreated, func(ctx context.Context, event Event) error {
		t.Fatal("wrong event type delivered")
		return nil
	})

	err := d.Publish(context.Background(), Event{
		Type:      EventDoctorOnboarded,
		SubjectID: "doc-1",
		Timestamp: time.Now(),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "doc-1", got[0].SubjectID)
}

func TestDispatcherContinuesPastFailingHandler(t *testing.T) {
	d := NewInMemoryDispatcher()

	var secondCalled bool
	d.Subscribe(EventDocumentUploaded, func(ctx context.Context, event Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventDocumentUploaded, func(ctx context.Context, event Event) error {
		secondCalled = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventDocumentUploaded}))
	assert.True(t, secondCalled)
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventAppointmentStatusChanged}))
}
