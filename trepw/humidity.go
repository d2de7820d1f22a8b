package trepw

import (
	"fmt"
	"math"
)

//--------------------------------------
// Vapor pressure and dew point
//--------------------------------------

const (
	// Saturation vapor pressure at 0 degC [Pa]
	pv0 = 610.5

	// Vapor pressures below this are sensor artifacts [Pa]
	PvInvalidBelow = 10.0

	// Substitute vapor pressure for invalid readings [Pa]
	PvSubstitute = 500.0
)

// Saturation vapor pressure over liquid water [Pa] at dry-bulb temperature Tdb [degC].
// Liquid water is used as reference below freezing too.
func PvsatWater(Tdb float64) float64 {
	return pv0 * math.Exp((17.269*Tdb)/(237.3+Tdb))
}

// Partial vapor pressure [Pa] from Tdb [degC] and relative humidity RH [%].
func Pv(Tdb float64, RH float64) float64 {
	return (RH / 100.0) * PvsatWater(Tdb)
}

// Dew point temperature [degC] from vapor pressure pv [Pa].
// Below 610.5 Pa the ice branch of the inversion is used.
func DewPointFromPv(pv float64) float64 {
	y := math.Log(pv / pv0)
	if pv >= pv0 {
		return (237.3 * y) / (17.269 - y)
	}
	return (265.5 * y) / (21.875 - y)
}

// DewPoint computes the dew point series Tdp [degC] from Tdb [degC] and RH [%].
//
// Vapor pressures below PvInvalidBelow are replaced with the value carried from the
// previous position; the carry then resets to PvSubstitute, so a run of invalid
// readings falls back to PvSubstitute after its first element.
// substituted is the number of replaced readings.
// Tdb and RH must have the same length.
func DewPoint(Tdb []float64, RH []float64) (Tdp []float64, substituted int) {
	if len(Tdb) != len(RH) {
		panic(fmt.Sprintf("trepw: dew point input lengths differ: Tdb=%d RH=%d", len(Tdb), len(RH)))
	}
	Tdp = make([]float64, len(Tdb))

	carry := PvSubstitute
	for i := 0; i < len(Tdb); i++ {
		raw := Pv(Tdb[i], RH[i])
		if raw < PvInvalidBelow {
			substituted++
		}

		var pv float64
		pv, carry = sanitizePv(raw, carry)
		Tdp[i] = DewPointFromPv(pv)
	}

	return Tdp, substituted
}

// One step of the carry-forward fold: returns the value to use and the next carry.
func sanitizePv(pv float64, carry float64) (float64, float64) {
	if pv < PvInvalidBelow {
		return carry, PvSubstitute
	}
	return pv, pv
}
