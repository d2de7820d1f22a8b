package trepw

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticRecords returns a full year of hourly records labelled 0..23 from Jan 1.
// Step counts the records from 1; Feb 29 is included when leap is true.
func syntheticRecords(leap bool) []HourlyRecord {
	year := 1990
	if leap {
		year = 1996
	}
	rows := []HourlyRecord{}
	t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for t.Year() == year {
		i := len(rows)
		zenithish := math.Max(0, math.Sin(math.Pi*float64(t.Hour()-6)/12))
		rows = append(rows, HourlyRecord{
			Step:  i + 1,
			Year:  year,
			Month: int(t.Month()),
			Day:   t.Day(),
			Hour:  t.Hour(),
			TMP:   5.0 + 10.0*math.Sin(2*math.Pi*float64(t.YearDay())/365),
			RH:    75.0,
			WS:    3.0,
			WDIR:  180.0,
			GHI:   400.0 * zenithish,
			DHI:   100.0 * zenithish,
			DNI:   300.0 * zenithish,
		})
		t = t.Add(time.Hour)
	}
	return rows
}

func Test_Convert(t *testing.T) {
	rows := syntheticRecords(false)
	require.Len(t, rows, HoursPerYear)

	site := DefaultSites().Lookup("jok_TRY2020.csv")
	df, diag, err := Convert(rows, site, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, HoursPerYear, df.Len())
	assert.Equal(t, HoursPerYear, diag.Records)
	for _, col := range [][]float64{df.TMP, df.Tdp, df.RH, df.PRES, df.GHI0, df.DNI0, df.LWdn, df.GHI, df.DNI, df.DHI, df.WDIR, df.WS, df.N, df.Kt} {
		assert.Len(t, col, HoursPerYear)
	}

	assert.Equal(t, Timestamp{Year: 2023, Month: 1, Day: 1, Hour: 1}, df.Date(0))
	assert.Equal(t, Timestamp{Year: 2023, Month: 12, Day: 31, Hour: 24}, df.Date(HoursPerYear-1))

	// records are shifted by one hour, the last one is repeated
	assert.Equal(t, rows[1].TMP, df.TMP[0])
	assert.Equal(t, rows[1].GHI, df.GHI[0])
	assert.Equal(t, rows[HoursPerYear-1].TMP, df.TMP[HoursPerYear-1])
	assert.Equal(t, rows[HoursPerYear-1].TMP, df.TMP[HoursPerYear-2])

	for i := 0; i < df.Len(); i++ {
		assert.Equal(t, epwPressure, df.PRES[i])
		assert.True(t, 0 <= df.N[i] && df.N[i] <= 10)
		assert.GreaterOrEqual(t, df.GHI0[i], 0.0)
		assert.False(t, math.IsNaN(df.LWdn[i]))
	}

	// daylight at noon in Jokioinen, night at midnight (labels in UTC)
	noon := 31*24 + 10 // Feb 1, hour ending 11:00 UTC
	assert.Greater(t, df.GHI0[noon], 0.0)
	midnight := 31*24 + 22 // Feb 1, hour ending 23:00 UTC
	assert.Equal(t, 0.0, df.GHI0[midnight])
}

func Test_Convert_DropsLeapDay(t *testing.T) {
	rows := syntheticRecords(true)
	require.Len(t, rows, HoursPerYear+24)

	df, diag, err := Convert(rows, DefaultSites().Fallback, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, HoursPerYear, diag.Records)
	assert.Equal(t, HoursPerYear, df.Len())
}

func Test_Convert_SkyTemperature(t *testing.T) {
	opts := DefaultOptions()
	opts.LongWaveMethod = LongWaveSkyTemperature

	df, diag, err := Convert(syntheticRecords(false), DefaultSites().Fallback, opts)
	require.NoError(t, err)
	assert.Nil(t, df.Kt)
	assert.Equal(t, 0, diag.KtFallbacks)
	assert.Equal(t, LongWaveFromSkyTemperature(df.TMP), df.LWdn)
}

func Test_Convert_LeapOutputYear(t *testing.T) {
	opts := DefaultOptions()
	opts.YearOut = 2024
	_, _, err := Convert(syntheticRecords(false), Site{}, opts)
	assert.Error(t, err)
}

func Test_Convert_NoRecords(t *testing.T) {
	_, _, err := Convert(nil, Site{}, DefaultOptions())
	assert.EqualError(t, err, "no records")
}

func Test_Convert_LabelTimeZone(t *testing.T) {
	sun := &fixedSun{}
	opts := DefaultOptions()
	opts.Sun = sun
	opts.LabelTimeZone = 2.0

	_, _, err := Convert(syntheticRecords(false)[:3], Site{}, opts)
	require.NoError(t, err)

	// 2023-01-01 01:00 at UTC+2, middle of the hour
	assert.Equal(t, time.Date(2022, 12, 31, 22, 30, 0, 0, time.UTC), sun.calls[0])
}
