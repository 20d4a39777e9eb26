package markethours

import "time"

// NYSE full-day holidays, 2025 through 2027. Dates outside this range
// are treated as regular sessions; Bounds reports the covered years so
// callers can surface the gap instead of trusting a silent false.
// Source: NYSE official holiday calendar.
var nyseHolidays = map[int][]struct {
	month time.Month
	day   int
}{
	2025: {
		{time.January, 1},   // New Year's Day
		{time.January, 20},  // Martin Luther King Jr. Day
		{time.February, 17}, // Washington's Birthday
		{time.April, 18},    // Good Friday
		{time.May, 26},      // Memorial Day
		{time.June, 19},     // Juneteenth
		{time.July, 4},      // Independence Day
		{time.September, 1}, // Labor Day
		{time.November, 27}, // Thanksgiving
		{time.December, 25}, // Christmas
	},
	2026: {
		{time.January, 1},   // New Year's Day
		{time.January, 19},  // Martin Luther King Jr. Day
		{time.February, 16}, // Washington's Birthday
		{time.April, 3},     // Good Friday
		{time.May, 25},      // Memorial Day
		{time.June, 19},     // Juneteenth
		{time.July, 3},      // Independence Day (observed)
		{time.September, 7}, // Labor Day
		{time.November, 26}, // Thanksgiving
		{time.December, 25}, // Christmas
	},
	2027: {
		{time.January, 1},   // New Year's Day
		{time.January, 18},  // Martin Luther King Jr. Day
		{time.February, 15}, // Washington's Birthday
		{time.March, 26},    // Good Friday
		{time.May, 31},      // Memorial Day
		{time.June, 18},     // Juneteenth (observed)
		{time.July, 5},      // Independence Day (observed)
		{time.September, 6}, // Labor Day
		{time.November, 25}, // Thanksgiving
		{time.December, 24}, // Christmas (observed)
	},
}

var holidaySet map[string]bool

func init() {
	holidaySet = make(map[string]bool, len(nyseHolidays)*10)
	for year, days := range nyseHolidays {
		for _, h := range days {
			holidaySet[dateKey(year, h.month, h.day)] = true
		}
	}
}

// Bounds returns the first and last year the holiday calendar covers.
func Bounds() (first, last int) {
	first, last = 0, 0
	for year := range nyseHolidays {
		if first == 0 || year < first {
			first = year
		}
		if year > last {
			last = year
		}
	}
	return first, last
}

// IsHoliday reports whether the date (in ET) is a full-day NYSE holiday.
// Years outside Bounds always report false.
func IsHoliday(t time.Time) bool {
	et := t.In(Eastern)
	return holidaySet[dateKey(et.Year(), et.Month(), et.Day())]
}

func dateKey(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 0, 0, 0, 0, Eastern).Format("2006-01-02")
}
