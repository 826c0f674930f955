package domain

import "time"

// ShiftLabel identifies which work shift a record belongs to.
type ShiftLabel string

const (
	// ShiftDay is the daytime shift.
	ShiftDay ShiftLabel = "Day"

	// ShiftNight is the overnight shift.
	ShiftNight ShiftLabel = "Night"
)

// ShiftDateLayout is the calendar-date format used for shift days.
const ShiftDateLayout = "2006-01-02"

// ShiftWindow defines how an instant is classified into a work shift.
// Local time is derived by adding a fixed UTC offset; the day shift spans
// the local-hour interval [DayStart, DayEnd).
type ShiftWindow struct {
	// Offset converts UTC to the operations team's local time.
	Offset time.Duration

	// DayStart is the local hour (inclusive) at which the day shift begins.
	DayStart int

	// DayEnd is the local hour (exclusive) at which the day shift ends.
	DayEnd int
}

// DefaultShiftWindow returns the production shift window: IST (+5:30)
// with the day shift running 9 AM to 9 PM local time.
func DefaultShiftWindow() ShiftWindow {
	return ShiftWindow{
		Offset:   5*time.Hour + 30*time.Minute,
		DayStart: 9,
		DayEnd:   21,
	}
}

// ShiftClassification is the result of classifying an instant.
type ShiftClassification struct {
	// Label is Day or Night.
	Label ShiftLabel

	// Day is the calendar date the shift is attributed to,
	// formatted as ShiftDateLayout.
	Day string
}

// Classify maps an instant to its work shift.
//
// The local hour decides the label, but the instant's UTC calendar date
// anchors the shift day. An instant before DayStart local time belongs to
// the previous day's night shift: overnight work is attributed to the day
// the shift started, not the day the clock rolled over.
func (w ShiftWindow) Classify(t time.Time) ShiftClassification {
	utc := t.UTC()
	hour := utc.Add(w.Offset).Hour()

	switch {
	case hour >= w.DayStart && hour < w.DayEnd:
		return ShiftClassification{Label: ShiftDay, Day: utc.Format(ShiftDateLayout)}
	case hour < w.DayStart:
		return ShiftClassification{Label: ShiftNight, Day: utc.AddDate(0, 0, -1).Format(ShiftDateLayout)}
	default:
		return ShiftClassification{Label: ShiftNight, Day: utc.Format(ShiftDateLayout)}
	}
}
