package trepw

import (
	"fmt"
	"time"
)

//--------------------------------------
// EPW timestamps
//--------------------------------------

// 0-23 hour label of the input table (hour-ending)
type HourLabel struct {
	Year  int
	Month int
	Day   int
	Hour  int // 0..23, 0 = the hour ending at midnight
}

// EPW timestamp (hour-ending, 1..24)
type Timestamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int // 1..24
	Minute int
	Second int
}

// Length of the month preceding month m in a non-leap year.
// Any month outside 1..12 is a programming error.
func previousMonthLength(m int) int {
	switch m {
	case 1, 2, 4, 6, 8, 9, 11:
		return 31
	case 3:
		return 28
	case 5, 7, 10, 12:
		return 30
	default:
		panic(fmt.Sprintf("trepw: month %d outside 1..12", m))
	}
}

// NormalizeTimestamp relabels a 0-23 hour-ending label into the 1-24 convention of EPW.
// Hour 0 becomes hour 24 of the previous day, rolling back month boundaries with fixed
// non-leap month lengths. The output year is always year_out.
func NormalizeTimestamp(label HourLabel, year_out int) Timestamp {
	if label.Month < 1 || 12 < label.Month {
		panic(fmt.Sprintf("trepw: month %d outside 1..12", label.Month))
	}

	if label.Hour != 0 {
		return Timestamp{Year: year_out, Month: label.Month, Day: label.Day, Hour: label.Hour}
	}

	if label.Day != 1 {
		return Timestamp{Year: year_out, Month: label.Month, Day: label.Day - 1, Hour: 24}
	}

	// 1st day of month, hour 0 => last day of previous month, hour 24
	if label.Month == 1 {
		return Timestamp{Year: year_out, Month: 12, Day: 31, Hour: 24}
	}
	return Timestamp{
		Year:  year_out,
		Month: label.Month - 1,
		Day:   previousMonthLength(label.Month),
		Hour:  24,
	}
}

// EPWTimestamps applies NormalizeTimestamp to every label.
func EPWTimestamps(labels []HourLabel, year_out int) []Timestamp {
	ts := make([]Timestamp, len(labels))
	for i := 0; i < len(labels); i++ {
		ts[i] = NormalizeTimestamp(labels[i], year_out)
	}
	return ts
}

// HourLabels returns the hour-ending labels year-01-01 01:00 ... (year+1)-01-01 00:00
// of a non-leap year (8760 entries).
func HourLabels(year int) []HourLabel {
	labels := make([]HourLabel, 0, HoursPerYear)
	t := time.Date(year, time.January, 1, 1, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	for ; !t.After(end); t = t.Add(time.Hour) {
		labels = append(labels, HourLabel{
			Year:  t.Year(),
			Month: int(t.Month()),
			Day:   t.Day(),
			Hour:  t.Hour(),
		})
	}
	return labels
}

// IsLeapYear reports whether year has a Feb 29.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Time returns the label as a UTC wall clock time.
func (l HourLabel) Time() time.Time {
	return time.Date(l.Year, time.Month(l.Month), l.Day, l.Hour, 0, 0, 0, time.UTC)
}
