package trepw

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_ExtraterrestrialDNI(t *testing.T) {
	var sun Sun
	assert.InDelta(t, 1414.019, sun.ExtraterrestrialDNI(time.Date(2023, 1, 3, 12, 0, 0, 0, time.UTC)), 0.01)
	assert.InDelta(t, 1320.458, sun.ExtraterrestrialDNI(time.Date(2023, 7, 4, 12, 0, 0, 0, time.UTC)), 0.01)
}

func Test_SolarZenith(t *testing.T) {
	var sun Sun
	cases := []struct {
		t        time.Time
		lat, lon float64
		zenith   float64
	}{
		{time.Date(2023, 3, 20, 12, 0, 0, 0, time.UTC), 0, 0, 1.885},
		{time.Date(2023, 6, 21, 10, 20, 0, 0, time.UTC), 60, 25, 36.563},
		{time.Date(2023, 1, 15, 22, 0, 0, 0, time.UTC), 60, 25, 140.69},
	}
	for _, c := range cases {
		assert.InDelta(t, c.zenith, sun.SolarZenith(c.t, c.lat, c.lon, 0, 15), 0.05, c.t.String())
	}
}

func Test_SolarZenith_IgnoresRefractionInputs(t *testing.T) {
	var sun Sun
	ts := time.Date(2023, 6, 21, 10, 20, 0, 0, time.UTC)
	assert.Equal(t, sun.SolarZenith(ts, 60, 25, 0, -20), sun.SolarZenith(ts, 60, 25, 500, 30))
}

func Test_ExtraterrestrialGHI(t *testing.T) {
	assert.InDelta(t, 680.5, ExtraterrestrialGHI(1361, 60), 1e-9)
	assert.Equal(t, 0.0, ExtraterrestrialGHI(1361, 100))
}

type fixedSun struct {
	calls []time.Time
}

func (s *fixedSun) ExtraterrestrialDNI(t time.Time) float64 {
	s.calls = append(s.calls, t)
	return 1000.0
}

func (s *fixedSun) SolarZenith(t time.Time, lat float64, lon float64, elevation float64, temperature float64) float64 {
	return 60.0
}

func Test_SunPosition_MiddleOfHour(t *testing.T) {
	sun := &fixedSun{}
	date := []time.Time{time.Date(2023, 1, 1, 1, 0, 0, 0, time.UTC)}

	df := SunPosition(sun, Site{}, date, []float64{0.0})
	assert.Len(t, df, 1)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 30, 0, 0, time.UTC), sun.calls[0])
	assert.Equal(t, 1000.0, df[0].DNI0)
	assert.InDelta(t, 500.0, df[0].GHI0, 1e-9)
	assert.Equal(t, 60.0, df[0].Zenith)
}

func Test_fixAngle(t *testing.T) {
	assert.InDelta(t, 10.0, fixAngle(370.0), 1e-12)
	assert.InDelta(t, 350.0, fixAngle(-10.0), 1e-12)
	assert.Equal(t, 0.0, fixAngle(0.0))
}
