package notify

import "context"

// Notifier delivers operational notifications to the agency staff channel.
// Delivery is best-effort; failures are logged, never surfaced to requests.
type Notifier interface {
	NotifyAdmins(ctx context.Context, msg string)
}

// Noop is a no-op notifier.
type Noop struct{}

func (Noop) NotifyAdmins(context.Context, string) {}
