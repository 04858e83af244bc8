package events

import (
	"log/slog"
	"time"
)

// PublishWithRetry hands event to pub, retrying with exponential backoff
// up to maxRetries attempts. It returns the last send error. A nil pub
// means no hub is configured and the event is dropped.
//
// Chain mutations are already committed when this runs, so callers log
// the error and carry on.
func PublishWithRetry(pub Publisher, event Event, maxRetries int) error {
	if pub == nil {
		return nil
	}

	var lastErr error
	baseDelay := 50 * time.Millisecond

	for attempt := 0; attempt < maxRetries; attempt++ {
		err := pub.SendEvent(event)
		if err == nil {
			if attempt > 0 {
				slog.Debug("event published after retry",
					"attempt", attempt+1,
					"op", event.Op,
					"project_id", event.ProjectID)
			}
			return nil
		}

		lastErr = err

		if attempt < maxRetries-1 {
			// 50ms, 100ms, 200ms, ...
			delay := baseDelay * (1 << attempt)
			slog.Debug("event publish failed, retrying",
				"op", event.Op,
				"attempt", attempt+1,
				"max_retries", maxRetries,
				"retry_delay", delay,
				"error", err)
			time.Sleep(delay)
		}
	}

	slog.Warn("change notification dropped",
		"attempts", maxRetries,
		"op", event.Op,
		"project_id", event.ProjectID,
		"error", lastErr)

	return lastErr
}
