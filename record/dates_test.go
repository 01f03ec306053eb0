package record

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInstant(t *testing.T) {
	tests := []struct {
		name     string
		primary  string
		fallback string
		want     string
		wantErr  bool
	}{
		{"primary date-time wins", "2021-12-01T10:30:00", "05/06/2020", "2021-12-01T10:30:00", false},
		{"primary with offset kept", "2021-12-01T10:30:00+08:00", "", "2021-12-01T10:30:00+08:00", false},
		{"primary UTC", "2021-12-01T10:30:00Z", "", "2021-12-01T10:30:00Z", false},
		{"primary date only", "2021-12-01", "", "2021-12-01T00:00:00", false},
		{"primary space separated", "2021-12-01 08:15:00", "", "2021-12-01T08:15:00", false},
		{"primary fractional seconds", "2021-12-01T08:15:00.250", "", "2021-12-01T08:15:00.25", false},
		{"fallback day first", "", "01/12/2021", "2021-12-01T00:00:00", false},
		{"fallback single digits", "NaN", "5/3/1999", "1999-03-05T00:00:00", false},
		{"fallback two components", "", "12/2021", "", true},
		{"fallback four components", "", "1/2/3/2021", "", true},
		{"fallback impossible month", "", "01/13/2021", "", true},
		{"fallback month first rejected", "", "12/31/2021", "", true},
		{"both absent", "", "", "", true},
		{"primary garbage ignores fallback", "last tuesday", "01/12/2021", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := FromMap(0, map[string]string{
				ColEventDate:         tt.primary,
				ColVerbatimEventDate: tt.fallback,
			})
			got, err := ResolveInstant(row, ColEventDate, ColVerbatimEventDate)
			if tt.wantErr {
				require.Error(t, err)
				var malformed *MalformedDateError
				assert.True(t, errors.As(err, &malformed))
				assert.ErrorIs(t, err, ErrRowFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveInstantDayMonthTransposition(t *testing.T) {
	// Every valid day-first date maps to the same calendar day in ISO form.
	for day := 1; day <= 28; day++ {
		for month := 1; month <= 12; month++ {
			row := FromMap(0, map[string]string{
				ColVerbatimEventDate: pad(day) + "/" + pad(month) + "/2004",
			})
			got, err := ResolveInstant(row, ColEventDate, ColVerbatimEventDate)
			require.NoError(t, err)
			assert.Equal(t, "2004-"+pad(month)+"-"+pad(day)+"T00:00:00", got)
		}
	}
}

func pad(n int) string {
	if n < 10 {
		return "0" + string(rune('0'+n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}

func TestResolveYear(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		present bool
		wantErr bool
	}{
		{"year only", "1975", "1975-01-01", true, false},
		{"full date kept", "1975-06-30", "1975-06-30", true, false},
		{"date-time truncated", "1975-06-30T12:00:00", "1975-06-30", true, false},
		{"absent", "NaN", "", false, false},
		{"garbage", "mid seventies", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := FromMap(0, map[string]string{ColDateIdentified: tt.value})
			got, present, err := ResolveYear(row, ColDateIdentified)
			assert.Equal(t, tt.present, present)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsZoned(t *testing.T) {
	tests := []struct {
		instant string
		want    bool
	}{
		{"2021-12-01T00:00:00", false},
		{"2021-12-01T00:00:00.5", false},
		{"2019-01-02T09:00:00Z", true},
		{"2019-01-02T09:00:00+08:00", true},
		{"2019-01-01", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.instant, func(t *testing.T) {
			assert.Equal(t, tt.want, IsZoned(tt.instant))
		})
	}
}
