package driven

import (
	"context"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
)

// Notifier defines the driven port for outbound contact notifications.
// Notify is best-effort by contract: callers log the returned error and
// continue, so a failed notification never affects the persisted message or
// the HTTP response.
type Notifier interface {
	Notify(ctx context.Context, msg model.ContactMessage) error
}

// NoopNotifier is used when no email provider is configured.
type NoopNotifier struct{}

// Notify does nothing and always succeeds.
func (NoopNotifier) Notify(context.Context, model.ContactMessage) error { return nil }
