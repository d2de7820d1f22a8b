package trepw

// Converted weather data, one slice per EPW field (see https://bigladdersoftware.com/epx/docs/)
type Table struct {
	Site    Site
	Comment string // COMMENTS 1 of the header, the source file name
	YearOut int

	date []Timestamp //N1-N5

	TMP  []float64 //N6 dry-bulb temperature [degC]
	Tdp  []float64 //N7 dew point temperature [degC]
	RH   []float64 //N8 relative humidity [%]
	PRES []float64 //N9 atmospheric pressure [Pa]
	GHI0 []float64 //N10 extraterrestrial horizontal radiation [Wh/m2]
	DNI0 []float64 //N11 extraterrestrial direct normal radiation [Wh/m2]
	LWdn []float64 //N12 horizontal infrared radiation intensity [Wh/m2]
	GHI  []float64 //N13 global horizontal radiation [Wh/m2]
	DNI  []float64 //N14 direct normal radiation [Wh/m2]
	DHI  []float64 //N15 diffuse horizontal radiation [Wh/m2]
	WDIR []float64 //N20 wind direction [deg]
	WS   []float64 //N21 wind speed [m/s]
	N    []float64 //N22, N23 total and opaque sky cover [tenths]

	Kt []float64 //clearness index, nil for LongWaveSkyTemperature
}

// Len returns the number of hours.
func (t *Table) Len() int {
	return len(t.date)
}

// Date returns the EPW timestamp of hour i.
func (t *Table) Date(i int) Timestamp {
	return t.date[i]
}
