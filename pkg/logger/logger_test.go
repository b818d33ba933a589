package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))
		log.Info("delivered", logger.NotificationID("n-1"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "delivered", record["msg"])
		assert.Equal(t, "n-1", record["notification_id"])
	})

	t.Run("text output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithFormat(logger.FormatText),
		)
		log.Info("delivered")

		assert.True(t, strings.Contains(buf.String(), "msg=delivered"))
	})

	t.Run("level filters", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithLevel(slog.LevelWarn),
		)
		log.Info("dropped")
		log.Warn("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("static attrs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("component", "notifier")),
		)
		log.Info("hello")

		assert.Contains(t, buf.String(), `"component":"notifier"`)
	})

	t.Run("invalid format keeps default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithFormat(logger.Format("yaml")),
		)
		log.Info("hello")

		var record map[string]any
		assert.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("error attr", func(t *testing.T) {
		t.Parallel()

		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)

		empty := logger.Error(nil)
		assert.Equal(t, slog.Attr{}, empty)
	})

	t.Run("domain attrs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "notification_id", logger.NotificationID("x").Key)
		assert.Equal(t, "type", logger.NotificationType("task_assigned").Key)
		assert.Equal(t, "batch_key", logger.BatchKey("task_assigned_2").Key)
		assert.Equal(t, "attempt", logger.Attempt(2).Key)
	})
}
