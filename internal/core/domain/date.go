package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/wallet_api/internal/apperrors"
)

// DateLayout is the wire format of a transaction date (DD-MM-YYYY).
const DateLayout = "02-01-2006"

// acceptedDateLayouts are the inputs NormalizeDate understands, canonical first.
var acceptedDateLayouts = []string{
	DateLayout,
	"02.01.2006",
	"02/01/2006",
	"2006-01-02",
	time.RFC3339,
}

// Date is a naive calendar date. It has no time zone and no time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date and rejects impossible calendar values such as 31-02.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if year < 1 || t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("%w: %02d-%02d-%04d is not a valid calendar date", apperrors.ErrValidation, day, month, year)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// DateFromTime drops the clock part of t, reading the calendar date in t's location.
func DateFromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses the strict DD-MM-YYYY form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q must use the DD-MM-YYYY format", apperrors.ErrValidation, s)
	}
	return NewDate(t.Year(), t.Month(), t.Day())
}

// NormalizeDate accepts the formats clients commonly send and returns the
// calendar date they name. RFC3339 timestamps keep the date of their own offset.
func NormalizeDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t.Year(), t.Month(), t.Day())
		}
	}
	return Date{}, fmt.Errorf("%w: date %q must use the DD-MM-YYYY format", apperrors.ErrValidation, s)
}

// IsZero reports whether d was never set.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, int(d.Month), d.Year)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: date must be a string", apperrors.ErrValidation)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Period is a calendar month window.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// NewPeriod validates month (1-12) and a four digit year.
func NewPeriod(month, year int) (Period, error) {
	var problems []string
	if month < 1 || month > 12 {
		problems = append(problems, "month must be between 1 and 12")
	}
	if year < 1000 || year > 9999 {
		problems = append(problems, "year must be a four digit number")
	}
	if len(problems) > 0 {
		return Period{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(problems, "; "))
	}
	return Period{Month: month, Year: year}, nil
}

// Contains reports whether d falls inside the period.
func (p Period) Contains(d Date) bool {
	return int(d.Month) == p.Month && d.Year == p.Year
}

func (p Period) String() string {
	return fmt.Sprintf("%02d-%04d", p.Month, p.Year)
}

// MatchesWindow decides whether a stored DD-MM-YYYY date lies in month/year.
// An unparsable date is an error, never a match.
func MatchesWindow(dateString string, month, year int) (bool, error) {
	period, err := NewPeriod(month, year)
	if err != nil {
		return false, err
	}
	d, err := ParseDate(dateString)
	if err != nil {
		return false, err
	}
	return period.Contains(d), nil
}
