package gcalendar

import "time"

// AllDayEventRequest is the input for creating an all-day agenda entry.
type AllDayEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        time.Time // only the civil date is used
	// ReminderMinutes are popup reminders before the start of the day; nil uses the calendar defaults.
	ReminderMinutes []int64
	PrivateProps    map[string]string // stored as extendedProperties.private
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Date     string // yyyy-mm-dd
}
