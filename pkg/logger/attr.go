package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// NotificationID records a notification identifier under the key
// "notification_id".
func NotificationID(id string) slog.Attr {
	return slog.String("notification_id", id)
}

// NotificationType records a notification type under the key "type".
func NotificationType(t string) slog.Attr {
	return slog.String("type", t)
}

// BatchKey records a batching key under the key "batch_key".
func BatchKey(key string) slog.Attr {
	return slog.String("batch_key", key)
}

// Attempt records a delivery attempt number under the key "attempt".
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}
