package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/wallet_api/internal/apperrors"
	"github.com/SscSPs/wallet_api/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Date
		wantErr bool
	}{
		{name: "canonical", input: "15-03-2024", want: domain.Date{Year: 2024, Month: time.March, Day: 15}},
		{name: "surrounding spaces", input: " 01-01-2023 ", want: domain.Date{Year: 2023, Month: time.January, Day: 1}},
		{name: "iso is not accepted", input: "2024-03-15", wantErr: true},
		{name: "single digit day", input: "1-03-2024", wantErr: true},
		{name: "impossible day", input: "31-02-2024", wantErr: true},
		{name: "garbage", input: "yesterday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "canonical", input: "05-11-2023", want: "05-11-2023"},
		{name: "dotted", input: "05.11.2023", want: "05-11-2023"},
		{name: "slashed", input: "05/11/2023", want: "05-11-2023"},
		{name: "iso", input: "2023-11-05", want: "05-11-2023"},
		{name: "rfc3339", input: "2023-11-05T22:10:00+02:00", want: "05-11-2023"},
		{name: "leap day", input: "29-02-2024", want: "29-02-2024"},
		{name: "not a leap year", input: "29-02-2023", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "american order", input: "11/25/2023", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NormalizeDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDate_JSON(t *testing.T) {
	d := domain.Date{Year: 2024, Month: time.March, Day: 7}

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"07-03-2024"`, string(raw))

	var decoded domain.Date
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, d, decoded)

	assert.ErrorIs(t, json.Unmarshal([]byte(`"2024-03-07"`), &decoded), apperrors.ErrValidation)
	assert.ErrorIs(t, json.Unmarshal([]byte(`20240307`), &decoded), apperrors.ErrValidation)
}

func TestDate_TimeRoundTrip(t *testing.T) {
	d := domain.Date{Year: 2022, Month: time.December, Day: 31}
	assert.Equal(t, d, domain.DateFromTime(d.Time()))
	assert.True(t, domain.Date{}.IsZero())
	assert.False(t, d.IsZero())
}

func TestNewPeriod(t *testing.T) {
	p, err := domain.NewPeriod(3, 2024)
	require.NoError(t, err)
	assert.Equal(t, "03-2024", p.String())

	_, err = domain.NewPeriod(0, 2024)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "month")

	_, err = domain.NewPeriod(13, 999)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "month")
	assert.Contains(t, err.Error(), "year")

	_, err = domain.NewPeriod(6, 10000)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMatchesWindow(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		month   int
		year    int
		want    bool
		wantErr bool
	}{
		{name: "same month and year", date: "15-03-2024", month: 3, year: 2024, want: true},
		{name: "first day of month", date: "01-03-2024", month: 3, year: 2024, want: true},
		{name: "last day of month", date: "31-03-2024", month: 3, year: 2024, want: true},
		{name: "same month other year", date: "01-01-2023", month: 1, year: 2024, want: false},
		{name: "same year other month", date: "15-04-2024", month: 3, year: 2024, want: false},
		{name: "bad stored date", date: "2024/03/15", month: 3, year: 2024, wantErr: true},
		{name: "bad month", date: "15-03-2024", month: 0, year: 2024, wantErr: true},
		{name: "bad year", date: "15-03-2024", month: 3, year: 24, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.MatchesWindow(tt.date, tt.month, tt.year)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.False(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
