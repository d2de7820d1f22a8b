package trepw

import (
	"fmt"
	"time"
)

// Conversion settings
type Options struct {
	YearOut        int            // year written to the EPW timestamps, non-leap
	LongWaveMethod LongWaveMethod // long-wave estimate
	Sun            SolarGeometry  // nil = Sun{}
	LabelTimeZone  float64        // [h] east of UTC of the record labels, for the solar geometry
}

// DefaultOptions: output year 2023, clearness index long-wave estimate
func DefaultOptions() Options {
	return Options{
		YearOut:        2023,
		LongWaveMethod: LongWaveClearness,
		Sun:            Sun{},
	}
}

// Counts of recovered data-quality anomalies of one conversion
type Diagnostics struct {
	Records          int // records after leap-day removal
	PvSubstitutions  int // vapor pressures replaced in the dew point
	KtFallbacks      int // clearness indexes set to KtFallback
	SkyCoverFallback int // sky covers set to SkyCoverFallback
}

// Convert derives the EPW table of one site-year.
//
// The leap day is removed and the records are shifted by one hour (ShiftHourEnding)
// before the hour-ending labels of YearOut are attached to them.
func Convert(rows []HourlyRecord, site Site, opts Options) (*Table, Diagnostics, error) {
	var diag Diagnostics

	if IsLeapYear(opts.YearOut) {
		return nil, diag, fmt.Errorf("output year %d is a leap year", opts.YearOut)
	}
	if opts.Sun == nil {
		opts.Sun = Sun{}
	}

	rows = DropLeapDays(rows)
	diag.Records = len(rows)
	if len(rows) == 0 {
		return nil, diag, fmt.Errorf("no records")
	}
	if len(rows) != HoursPerYear {
		logger.Warnf("%s: %d records, expected %d", site.Name, len(rows), HoursPerYear)
	}

	rows = ShiftHourEnding(rows)

	labels := HourLabels(opts.YearOut)
	if len(labels) > len(rows) {
		labels = labels[:len(rows)]
	} else if len(labels) < len(rows) {
		rows = rows[:len(labels)]
	}
	n := len(rows)

	df := &Table{
		Site:    site,
		YearOut: opts.YearOut,
		date:    EPWTimestamps(labels, opts.YearOut),
		TMP:     make([]float64, n),
		RH:      make([]float64, n),
		PRES:    make([]float64, n),
		GHI:     make([]float64, n),
		DNI:     make([]float64, n),
		DHI:     make([]float64, n),
		WDIR:    make([]float64, n),
		WS:      make([]float64, n),
		GHI0:    make([]float64, n),
		DNI0:    make([]float64, n),
	}

	date := make([]time.Time, n)
	offset := -time.Duration(opts.LabelTimeZone * float64(time.Hour))
	for i := 0; i < n; i++ {
		df.TMP[i] = rows[i].TMP
		df.RH[i] = rows[i].RH
		df.PRES[i] = epwPressure
		df.GHI[i] = rows[i].GHI
		df.DNI[i] = rows[i].DNI
		df.DHI[i] = rows[i].DHI
		df.WDIR[i] = rows[i].WDIR
		df.WS[i] = rows[i].WS
		date[i] = labels[i].Time().Add(offset)
	}

	// dew point
	df.Tdp, diag.PvSubstitutions = DewPoint(df.TMP, df.RH)
	if diag.PvSubstitutions > 0 {
		logger.Infof("%s: %d vapor pressures below %.0f Pa substituted", site.Name, diag.PvSubstitutions, PvInvalidBelow)
	}

	// extraterrestrial radiation
	sunpos := SunPosition(opts.Sun, site, date, df.TMP)
	for i := 0; i < n; i++ {
		df.GHI0[i] = sunpos[i].GHI0
		df.DNI0[i] = sunpos[i].DNI0
	}

	// long-wave radiation
	lw, err := EstimateLongWave(opts.LongWaveMethod, LongWaveInput{
		Tdb:  df.TMP,
		RH:   df.RH,
		GHI:  df.GHI,
		GHI0: df.GHI0,
	})
	if err != nil {
		return nil, diag, err
	}
	df.LWdn = lw.LWdn
	df.Kt = lw.Kt
	diag.KtFallbacks = lw.KtFallbacks

	// sky cover
	df.N, diag.SkyCoverFallback = SkyCover(df.LWdn, df.TMP, df.Tdp)
	if diag.SkyCoverFallback > 0 {
		logger.Infof("%s: %d sky covers without a root in range, using %.1f", site.Name, diag.SkyCoverFallback, SkyCoverFallback)
	}

	return df, diag, nil
}
