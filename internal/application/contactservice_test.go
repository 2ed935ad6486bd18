package application

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
)

type fakeContactStore struct {
	nextID  int64
	created []model.ContactMessage
	err     error
}

func (f *fakeContactStore) Create(_ context.Context, msg model.ContactMessage) (model.ContactMessage, error) {
	if f.err != nil {
		return model.ContactMessage{}, f.err
	}
	f.nextID++
	msg.ID = f.nextID
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	f.created = append(f.created, msg)
	return msg, nil
}

func (f *fakeContactStore) Get(context.Context, int64) (*model.ContactMessage, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeContactStore) List(context.Context, int, int) ([]model.ContactMessage, error) {
	return f.created, nil
}

func (f *fakeContactStore) Delete(context.Context, int64) error { return nil }

func (f *fakeContactStore) MarkRead(context.Context, int64) error { return nil }

type fakeNotifier struct {
	calls int
	err   error
}

func (f *fakeNotifier) Notify(context.Context, model.ContactMessage) error {
	f.calls++
	return f.err
}

func testMessage(email string) model.ContactMessage {
	return model.ContactMessage{
		Name:    "Jamie",
		Email:   email,
		Subject: "question",
		Message: "hello there",
	}
}

func TestContactService_Submit(t *testing.T) {
	store := &fakeContactStore{}
	notifier := &fakeNotifier{}
	svc := NewContactService(store, notifier, NewSubmissionThrottle(5*time.Minute), slog.Default())

	saved, retryAfter, err := svc.Submit(context.Background(), testMessage("jamie@example.com"))

	require.NoError(t, err)
	assert.Zero(t, retryAfter)
	assert.Equal(t, int64(1), saved.ID)
	assert.Equal(t, 1, notifier.calls)
}

func TestContactService_Submit_NotifierFailureStillPersists(t *testing.T) {
	store := &fakeContactStore{}
	notifier := &fakeNotifier{err: errors.New("provider down")}
	svc := NewContactService(store, notifier, NewSubmissionThrottle(5*time.Minute), slog.Default())

	saved, _, err := svc.Submit(context.Background(), testMessage("jamie@example.com"))

	require.NoError(t, err, "notification failure must not fail the submission")
	assert.Equal(t, int64(1), saved.ID)
	require.Len(t, store.created, 1)
}

func TestContactService_Submit_ThrottledNothingPersisted(t *testing.T) {
	store := &fakeContactStore{}
	notifier := &fakeNotifier{}
	svc := NewContactService(store, notifier, NewSubmissionThrottle(5*time.Minute), slog.Default())

	_, _, err := svc.Submit(context.Background(), testMessage("jamie@example.com"))
	require.NoError(t, err)

	_, retryAfter, err := svc.Submit(context.Background(), testMessage("jamie@example.com"))

	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Positive(t, retryAfter)
	assert.Len(t, store.created, 1, "throttled submission must not be persisted")
	assert.Equal(t, 1, notifier.calls, "throttled submission must not notify")
}

func TestContactService_Submit_StoreFailureNoNotification(t *testing.T) {
	store := &fakeContactStore{err: errors.New("disk full")}
	notifier := &fakeNotifier{}
	svc := NewContactService(store, notifier, NewSubmissionThrottle(5*time.Minute), slog.Default())

	_, _, err := svc.Submit(context.Background(), testMessage("jamie@example.com"))

	assert.Error(t, err)
	assert.Zero(t, notifier.calls)
}
