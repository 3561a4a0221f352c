// Package timesheet turns review rows into display values: HH:MM clock
// strings, per-day and per-row totals, and presented grid rows.
package timesheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TimeToMinutes converts an "HH:MM" string into minutes. Empty or
// malformed input counts as zero. Hours are not capped at 24.
func TimeToMinutes(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	hStr, mStr, hasMinutes := strings.Cut(s, ":")
	h, err := strconv.Atoi(hStr)
	if err != nil || h < 0 {
		return 0
	}
	m := 0
	if hasMinutes && mStr != "" {
		m, err = strconv.Atoi(mStr)
		if err != nil || m < 0 || m > 59 {
			return 0
		}
	}
	return h*60 + m
}

// MinutesToTime formats minutes as zero-padded "HH:MM". Totals of a day or
// more keep counting hours ("25:00"), negatives clamp to "00:00".
func MinutesToTime(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// DecimalHours returns minutes as hours rounded to two places (90 → 1.50).
func DecimalHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60)).Round(2)
}
