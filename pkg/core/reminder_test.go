package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidAdvanceDays(t *testing.T) {
	for _, n := range AdvanceDaysAllowed {
		assert.True(t, ValidAdvanceDays(n), "%d", n)
	}
	for _, n := range []int{0, -1, 2, 5, 14, 999} {
		assert.False(t, ValidAdvanceDays(n), "%d", n)
	}
}

func TestPayloadFor(t *testing.T) {
	due := time.Date(2026, time.April, 30, 12, 0, 0, 0, time.UTC)
	r := &Reminder{
		ID:      "rem-1",
		OwnerID: "owner-1",
		Text:    "rent",
		Amount:  decimal.RequireFromString("1200.50"),
		DueDate: due,
	}

	p := PayloadFor(r)
	assert.Equal(t, "rem-1", p.ReminderID)
	assert.Equal(t, "rent", p.Text)
	assert.True(t, p.Amount.Equal(r.Amount))
	assert.True(t, p.DueDate.Equal(due))
}
