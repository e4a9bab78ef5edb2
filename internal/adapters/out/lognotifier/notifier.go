// Package lognotifier implements the Notifier port on top of structured
// logging. It stands in for a real mail channel in environments where no
// SMTP relay is configured; every message is rendered to the log so the
// one-time codes remain reachable during development.
package lognotifier

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"haulix/internal/core/ports"
)

var subjects = map[ports.NotificationKind]string{
	ports.NotificationOrderConfirmation: "Your Haulix order %s is confirmed",
	ports.NotificationAdminNewOrder:     "New order %s awaits confirmation",
	ports.NotificationStatusUpdate:      "Order %s status update",
	ports.NotificationVerificationCode:  "Your Haulix verification code",
	ports.NotificationPasswordResetCode: "Your Haulix password reset code",
}

// Notifier writes every notification to a structured logger.
type Notifier struct {
	logger *slog.Logger
}

// NewNotifier creates a log-backed Notifier.
func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{logger: logger}
}

// Notify renders the notification and emits it as a single log record.
func (n *Notifier) Notify(ctx context.Context, kind ports.NotificationKind, recipient string, data map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject, ok := subjects[kind]
	if !ok {
		return fmt.Errorf("unknown notification kind %q", kind)
	}
	if tn, found := data["trackingNumber"]; found {
		subject = fmt.Sprintf(subject, tn)
	}

	n.logger.InfoContext(ctx, "notification sent",
		"kind", string(kind),
		"recipient", recipient,
		"subject", subject,
		"data", renderData(data),
	)
	return nil
}

func renderData(data map[string]string) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+data[k])
	}
	return strings.Join(pairs, " ")
}
