package service

import (
	"strings"
	"unicode/utf8"

	"github.com/DmitriiFRS/my-realty-x-api/pkg/core"
)

// Input limits.
const (
	// MaxTextLength is the maximum length for the free-form note.
	MaxTextLength = 2048

	// MinOriginalDay and MaxOriginalDay bound the schedule anchor.
	MinOriginalDay = 1
	MaxOriginalDay = 31
)

// ValidateAdvanceDays checks the notification lead time against the allowed
// set (1, 3 or 7 days).
func ValidateAdvanceDays(n int) error {
	if !core.ValidAdvanceDays(n) {
		return core.Invalid("advanceDays", core.ErrInvalidAdvanceDays)
	}
	return nil
}

// ValidateOriginalDay checks the schedule anchor day.
func ValidateOriginalDay(day int) error {
	if day < MinOriginalDay || day > MaxOriginalDay {
		return core.Invalid("originalDay", core.ErrInvalidOriginalDay)
	}
	return nil
}

// ValidateText checks the free-form note length.
func ValidateText(text string) error {
	if utf8.RuneCountInString(text) > MaxTextLength {
		return core.Invalid("text", core.ErrTextTooLong)
	}
	return nil
}

// SanitizeText strips control characters (except whitespace) from the note.
func SanitizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
