package notify

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DmitriiFRS/my-realty-x-api/pkg/core"
)

func testPayload() core.Payload {
	return core.Payload{
		ReminderID: "rem-1",
		Text:       "rent due soon",
		Amount:     decimal.RequireFromString("1500"),
		DueDate:    time.Date(2026, time.May, 31, 12, 0, 0, 0, time.UTC),
	}
}

func TestSMSGateway_LogsAndSucceeds(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	g := NewSMSGateway(logger)
	err := g.Send(context.Background(), "owner-1", testPayload())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "owner-1")
	assert.Contains(t, out, "rem-1")
	assert.Contains(t, out, "1500")
}

func TestSMSGateway_RespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewSMSGateway(nil)
	err := g.Send(ctx, "owner-1", testPayload())
	assert.ErrorIs(t, err, context.Canceled)
}

type stubNotifier struct {
	err   error
	calls int
}

func (s *stubNotifier) Send(ctx context.Context, ownerID string, p core.Payload) error {
	s.calls++
	return s.err
}

func TestFanout_SendsToAll(t *testing.T) {
	a, b := &stubNotifier{}, &stubNotifier{}
	f := NewFanout(a, b)

	require.NoError(t, f.Send(context.Background(), "owner-1", testPayload()))
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
}

func TestFanout_AttemptsAllAndJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	a, b := &stubNotifier{err: boom}, &stubNotifier{}
	f := NewFanout(a, b)

	err := f.Send(context.Background(), "owner-1", testPayload())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, b.calls, "failure must not short-circuit later notifiers")
}
