package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
	"github.com/ericfisherdev/portfolio-api/internal/domain/port/driven"
)

// ContactService orchestrates a contact-form submission: throttle check,
// persistence, then a best-effort email notification. The notification runs
// after the message is durably stored and its outcome is only logged; a
// provider outage can never fail the submission or roll back the write.
type ContactService struct {
	store    driven.ContactStore
	notifier driven.Notifier
	throttle *SubmissionThrottle
	logger   *slog.Logger
	now      func() time.Time
}

// NewContactService creates a ContactService with all required dependencies.
func NewContactService(store driven.ContactStore, notifier driven.Notifier, throttle *SubmissionThrottle, logger *slog.Logger) *ContactService {
	return &ContactService{
		store:    store,
		notifier: notifier,
		throttle: throttle,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit persists a contact message if the sender's throttle window has
// elapsed. On ErrRateLimited the returned duration is how long the sender
// must wait; nothing is persisted and no notification is attempted.
func (s *ContactService) Submit(ctx context.Context, msg model.ContactMessage) (model.ContactMessage, time.Duration, error) {
	if retryAfter, err := s.throttle.Attempt(msg.Email, s.now()); err != nil {
		return model.ContactMessage{}, retryAfter, err
	}

	saved, err := s.store.Create(ctx, msg)
	if err != nil {
		return model.ContactMessage{}, 0, err
	}

	// Notification is fire-and-forget: the error is consumed
	// here, with enough context logged to diagnose a provider outage.
	if err := s.notifier.Notify(ctx, saved); err != nil {
		s.logger.Error("contact notification failed",
			"message_id", saved.ID,
			"sender", saved.Email,
			"submitted_at", saved.CreatedAt,
			"error", err,
		)
	}

	return saved, 0, nil
}
