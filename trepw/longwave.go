package trepw

import (
	"fmt"
	"math"
)

//--------------------------------------
// Downward long-wave (infrared) radiation
//--------------------------------------

const (
	// Stefan-Boltzmann constant [W/m2K4]
	SigmaSB = 5.67e-8

	// Sky temperature depression below the dry-bulb temperature [K]
	SkyTemperatureDepression = 11.0

	// GHI below this is too noisy for a clearness index [W/m2]
	GHIUnreliableBelow = 20.0

	// Extraterrestrial GHI below this gives no clearness index (night hours) [W/m2]
	GHI0UnreliableBelow = 1.0

	// Clearness index used when interpolation leaves a gap [-]
	KtFallback = 0.5
)

// Estimation method of the downward long-wave radiation
type LongWaveMethod int

const (
	// Sky temperature = Tdb - SkyTemperatureDepression
	LongWaveSkyTemperature LongWaveMethod = iota

	// Cloud fraction from the clearness index, clear/cloudy sky emissivities
	LongWaveClearness
)

func (m LongWaveMethod) String() string {
	switch m {
	case LongWaveSkyTemperature:
		return "dTsky"
	case LongWaveClearness:
		return "clearness"
	default:
		return fmt.Sprintf("LongWaveMethod(%d)", int(m))
	}
}

// ParseLongWaveMethod parses the command line names "dTsky" and "clearness".
func ParseLongWaveMethod(s string) (LongWaveMethod, error) {
	switch s {
	case "dTsky":
		return LongWaveSkyTemperature, nil
	case "clearness":
		return LongWaveClearness, nil
	}
	return 0, fmt.Errorf("unknown long-wave method %q", s)
}

// Inputs of the long-wave estimate. RH, GHI and GHI0 are only needed by LongWaveClearness.
type LongWaveInput struct {
	Tdb  []float64 // dry-bulb temperature [degC]
	RH   []float64 // relative humidity over liquid water [%]
	GHI  []float64 // global horizontal irradiance [W/m2]
	GHI0 []float64 // extraterrestrial horizontal irradiance [W/m2]
}

// Result of the long-wave estimate
type LongWave struct {
	LWdn []float64 // downward long-wave radiation [W/m2]

	// only for LongWaveClearness
	Kt          []float64 // clearness index after gap filling [-]
	KtFallbacks int       // samples set to KtFallback
}

// EstimateLongWave computes LWdn with the given method.
func EstimateLongWave(method LongWaveMethod, in LongWaveInput) (*LongWave, error) {
	switch method {
	case LongWaveSkyTemperature:
		return &LongWave{LWdn: LongWaveFromSkyTemperature(in.Tdb)}, nil
	case LongWaveClearness:
		n := len(in.Tdb)
		if len(in.RH) != n || len(in.GHI) != n || len(in.GHI0) != n {
			return nil, fmt.Errorf("long-wave input lengths differ: Tdb=%d RH=%d GHI=%d GHI0=%d",
				n, len(in.RH), len(in.GHI), len(in.GHI0))
		}
		return longWaveFromClearness(in), nil
	}
	return nil, fmt.Errorf("unsupported long-wave method %v", method)
}

// LongWaveFromSkyTemperature: LWdn = sigma * (Tdb + 273.15 - 11)^4
func LongWaveFromSkyTemperature(Tdb []float64) []float64 {
	LWdn := make([]float64, len(Tdb))
	for i := 0; i < len(Tdb); i++ {
		Tsky := Tdb[i] + 273.15 - SkyTemperatureDepression
		LWdn[i] = SigmaSB * math.Pow(Tsky, 4)
	}
	return LWdn
}

// ClearnessIndex computes Kt = GHI/GHI0. Samples with GHI < GHIUnreliableBelow or
// GHI0 < GHI0UnreliableBelow are interpolated from their neighbours; whatever is
// still undefined is set to KtFallback.
func ClearnessIndex(GHI []float64, GHI0 []float64) (Kt []float64, fallbacks int) {
	Kt = make([]float64, len(GHI))
	for i := 0; i < len(GHI); i++ {
		if GHI[i] < GHIUnreliableBelow || GHI0[i] < GHI0UnreliableBelow || math.IsNaN(GHI[i]) {
			Kt[i] = math.NaN()
			continue
		}
		Kt[i] = GHI[i] / GHI0[i]
	}

	InterpolateNaN(Kt)

	for i := 0; i < len(Kt); i++ {
		if math.IsNaN(Kt[i]) {
			Kt[i] = KtFallback
			fallbacks++
		}
	}

	return Kt, fallbacks
}

// Clear sky emissivity from vapor pressure ea [hPa] and air temperature T [K]
func emissivityClearSky(ea float64, T float64) float64 {
	return 1.24 * math.Pow(ea/T, 1.0/7.0)
}

func longWaveFromClearness(in LongWaveInput) *LongWave {
	const emissivityCloudySky = 1.0

	Kt, fallbacks := ClearnessIndex(in.GHI, in.GHI0)
	if fallbacks > 0 {
		logger.Warnf("Kt: %d samples without a clearness index, using %.1f", fallbacks, KtFallback)
	}

	LWdn := make([]float64, len(in.Tdb))
	for i := 0; i < len(in.Tdb); i++ {
		T := in.Tdb[i] + 273.15
		ea := Pv(in.Tdb[i], in.RH[i]) / 100.0 // hPa

		// cloud fraction
		fc := math.Min(math.Max(1.0-Kt[i], 0.0), 1.0)

		emissivity := fc*emissivityCloudySky + (1-fc)*emissivityClearSky(ea, T)
		LWdn[i] = emissivity * SigmaSB * math.Pow(T, 4)
	}

	return &LongWave{LWdn: LWdn, Kt: Kt, KtFallbacks: fallbacks}
}
