package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DmitriiFRS/my-realty-x-api/pkg/core"
)

// SMSGateway is a stand-in for the SMS provider integration: it logs the
// outgoing message instead of calling a gateway. Timeout bounds each send so
// a slow channel cannot stall a reminder's rollover.
type SMSGateway struct {
	logger  *slog.Logger
	timeout time.Duration
}

// NewSMSGateway creates the logging SMS stub.
func NewSMSGateway(logger *slog.Logger) *SMSGateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &SMSGateway{logger: logger, timeout: 10 * time.Second}
}

// WithTimeout sets the per-send timeout. Zero disables the bound.
func (g *SMSGateway) WithTimeout(d time.Duration) *SMSGateway {
	g.timeout = d
	return g
}

// Send logs the notification that would go out over SMS.
func (g *SMSGateway) Send(ctx context.Context, ownerID string, p core.Payload) error {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	g.logger.Info("sms notification",
		"owner_id", ownerID,
		"reminder_id", p.ReminderID,
		"text", p.Text,
		"amount", p.Amount.String(),
		"due_date", p.DueDate.Format(time.RFC3339),
	)
	return nil
}

// Fanout dispatches one fire to every configured notifier. All sends are
// attempted; failures are joined into a single error.
type Fanout struct {
	notifiers []core.Notifier
}

// NewFanout creates a fan-out notifier.
func NewFanout(notifiers ...core.Notifier) *Fanout {
	return &Fanout{notifiers: notifiers}
}

// Send delivers to each notifier in turn.
func (f *Fanout) Send(ctx context.Context, ownerID string, p core.Payload) error {
	var errs []error
	for i, n := range f.notifiers {
		if err := n.Send(ctx, ownerID, p); err != nil {
			errs = append(errs, fmt.Errorf("notifier %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
