package lognotifier_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"haulix/internal/adapters/out/lognotifier"
	"haulix/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_WritesStructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	notifier := lognotifier.NewNotifier(logger)

	err := notifier.Notify(context.Background(), ports.NotificationStatusUpdate, "alice@example.com", map[string]string{
		"trackingNumber": "HLX1234567890",
		"status":         "in transit",
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "notification sent")
	assert.Contains(t, out, "alice@example.com")
	assert.Contains(t, out, "HLX1234567890")
	assert.Contains(t, out, "status_update")
}

func TestNotify_UnknownKind(t *testing.T) {
	notifier := lognotifier.NewNotifier(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	err := notifier.Notify(context.Background(), ports.NotificationKind("carrier_pigeon"), "alice@example.com", nil)

	require.Error(t, err)
}

func TestNotify_CancelledContext(t *testing.T) {
	notifier := lognotifier.NewNotifier(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := notifier.Notify(ctx, ports.NotificationVerificationCode, "alice@example.com", map[string]string{"code": "123456"})

	require.ErrorIs(t, err, context.Canceled)
}
