package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalculateSendAt(t *testing.T) {
	tests := []struct {
		name      string
		eventDate string
		offset    ReminderOffset
		want      string
	}{
		{"same day fires at 6am", "2026-01-06", OffsetSameDay, "2026-01-06 06:00:00"},
		{"one day before at 6pm", "2026-08-22", OffsetOneDay, "2026-08-21 18:00:00"},
		{"two days before at 6pm", "2026-08-22", OffsetTwoDays, "2026-08-20 18:00:00"},
		{"one week before at 9am", "2026-10-20", OffsetOneWeek, "2026-10-13 09:00:00"},
		{"unrecognized falls back to one day before", "2026-08-22", ReminderOffset("whenever"), "2026-08-21 18:00:00"},
		{"empty falls back to one day before", "2026-08-22", ReminderOffset(""), "2026-08-21 18:00:00"},
		{"same day crossing month boundary", "2026-03-01", OffsetOneWeek, "2026-02-22 09:00:00"},
		{"one day before across year boundary", "2026-01-01", OffsetOneDay, "2025-12-31 18:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateSendAt(date(tt.eventDate), tt.offset)
			assert.Equal(t, tt.want, got.Format("2006-01-02 15:04:05"))
			assert.Equal(t, time.Local, got.Location())
		})
	}
}

func TestCalculateSendAt_UnrecognizedMatchesOneDayBefore(t *testing.T) {
	for _, bogus := range []string{"tomorrow", "3_days_before", "SAME_DAY"} {
		got := CalculateSendAt(date("2026-06-04"), ReminderOffset(bogus))
		want := CalculateSendAt(date("2026-06-04"), OffsetOneDay)
		assert.Equal(t, want, got, "policy %q", bogus)
	}
}

func TestScheduleSendAt(t *testing.T) {
	eventDate := date("2026-01-06")

	t.Run("future send time is accepted", func(t *testing.T) {
		now := time.Date(2026, 1, 6, 5, 59, 59, 0, time.Local)
		sendAt, ok := ScheduleSendAt(eventDate, OffsetSameDay, now)
		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 1, 6, 6, 0, 0, 0, time.Local), sendAt)
	})

	t.Run("past send time is rejected", func(t *testing.T) {
		now := time.Date(2026, 1, 6, 6, 0, 1, 0, time.Local)
		_, ok := ScheduleSendAt(eventDate, OffsetSameDay, now)
		assert.False(t, ok)
	})

	t.Run("exact send time is rejected", func(t *testing.T) {
		now := time.Date(2026, 1, 6, 6, 0, 0, 0, time.Local)
		_, ok := ScheduleSendAt(eventDate, OffsetSameDay, now)
		assert.False(t, ok, "send time must be strictly in the future")
	})
}

func TestParseEventDate(t *testing.T) {
	d, err := ParseEventDate("2026-10-20")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.October, d.Month())
	assert.Equal(t, 20, d.Day())

	_, err = ParseEventDate("20-10-2026")
	assert.Error(t, err)
}
