package services

import "time"

// ReminderOffset is the enumerated rule for how far before an event, and at
// what fixed hour, a reminder fires.
type ReminderOffset string

const (
	OffsetSameDay    ReminderOffset = "same_day"
	OffsetOneDay     ReminderOffset = "1_day_before"
	OffsetTwoDays    ReminderOffset = "2_days_before"
	OffsetOneWeek    ReminderOffset = "1_week_before"
	DefaultReminderOffset            = OffsetOneDay
)

// CalculateSendAt maps an event date and an offset policy to the absolute
// local-time moment the reminder should fire. Each policy pins a fixed
// wall-clock hour on the resulting day rather than subtracting a duration:
//
//	same_day       event day      06:00
//	1_day_before   event day - 1  18:00
//	2_days_before  event day - 2  18:00
//	1_week_before  event day - 7  09:00
//
// An unrecognized policy behaves like 1_day_before.
func CalculateSendAt(eventDate time.Time, offset ReminderOffset) time.Time {
	year, month, day := eventDate.Date()

	switch offset {
	case OffsetSameDay:
		return time.Date(year, month, day, 6, 0, 0, 0, time.Local)
	case OffsetTwoDays:
		return time.Date(year, month, day, 18, 0, 0, 0, time.Local).AddDate(0, 0, -2)
	case OffsetOneWeek:
		return time.Date(year, month, day, 9, 0, 0, 0, time.Local).AddDate(0, 0, -7)
	default:
		// 1_day_before and anything unrecognized
		return time.Date(year, month, day, 18, 0, 0, 0, time.Local).AddDate(0, 0, -1)
	}
}

// ScheduleSendAt is the client-path variant of CalculateSendAt: a send time
// that is not strictly in the future is rejected and the caller skips
// creating the reminder.
func ScheduleSendAt(eventDate time.Time, offset ReminderOffset, now time.Time) (time.Time, bool) {
	sendAt := CalculateSendAt(eventDate, offset)
	if !sendAt.After(now) {
		return time.Time{}, false
	}
	return sendAt, true
}

// ParseEventDate parses the YYYY-MM-DD date strings used throughout the
// calendar, interpreted in the local timezone.
func ParseEventDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
