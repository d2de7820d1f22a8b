package trepw

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Solar geometry consumed by the long-wave estimate
type SolarGeometry interface {
	// Extraterrestrial direct normal irradiance [W/m2]
	ExtraterrestrialDNI(t time.Time) float64

	// Solar zenith angle [deg]
	SolarZenith(t time.Time, lat float64, lon float64, elevation float64, temperature float64) float64
}

// Sun: Spencer extraterrestrial irradiance and NOAA solar position.
// The zenith is geometric, so elevation and temperature (refraction inputs) do not change it.
type Sun struct{}

// Solar constant [W/m2]
const SolarConstant = 1366.1

var _ SolarGeometry = Sun{}

// Spencer (1971) earth-sun distance correction applied to SolarConstant
func (Sun) ExtraterrestrialDNI(t time.Time) float64 {
	B := 2 * math.Pi * float64(t.YearDay()-1) / 365.0
	RoverR0sqrd := 1.00011 +
		0.034221*math.Cos(B) + 0.00128*math.Sin(B) +
		0.000719*math.Cos(2*B) + 0.000077*math.Sin(2*B)
	return SolarConstant * RoverR0sqrd
}

func (Sun) SolarZenith(t time.Time, lat float64, lon float64, elevation float64, temperature float64) float64 {
	t = t.UTC()
	T := (julian.TimeToJD(t) - 2451545.0) / 36525.0 // centuries since J2000

	L0 := fixAngle(280.46646 + T*(36000.76983+T*0.0003032)) // mean longitude
	M := fixAngle(357.52911 + T*(35999.05029-T*0.0001537))  // mean anomaly
	e := 0.016708634 - T*(0.000042037+T*0.0000001267)       // eccentricity
	C := math.Sin(degreeToRad(M))*(1.914602-T*(0.004817+T*0.000014)) +
		math.Sin(degreeToRad(2*M))*(0.019993-T*0.000101) +
		math.Sin(degreeToRad(3*M))*0.000289 // equation of center
	omega := 125.04 - 1934.136*T
	lambda := L0 + C - 0.00569 - 0.00478*math.Sin(degreeToRad(omega)) // apparent longitude
	eps0 := 23 + (26+(21.448-T*(46.815+T*(0.00059-T*0.001813)))/60)/60
	eps := eps0 + 0.00256*math.Cos(degreeToRad(omega))
	dlt := math.Asin(math.Sin(degreeToRad(eps)) * math.Sin(degreeToRad(lambda))) // declination

	// equation of time [min]
	y := math.Pow(math.Tan(degreeToRad(eps)/2), 2)
	Et := 4 * radToDegree(y*math.Sin(degreeToRad(2*L0))-
		2*e*math.Sin(degreeToRad(M))+
		4*e*y*math.Sin(degreeToRad(M))*math.Cos(degreeToRad(2*L0))-
		0.5*y*y*math.Sin(degreeToRad(4*L0))-
		1.25*e*e*math.Sin(degreeToRad(2*M)))

	// hour angle
	minutes := float64(t.Hour()*60+t.Minute()) + float64(t.Second())/60.0
	ha := (minutes+Et+4*lon)/4 - 180

	latrad := degreeToRad(lat)
	cosZ := math.Sin(latrad)*math.Sin(dlt) + math.Cos(latrad)*math.Cos(dlt)*math.Cos(degreeToRad(ha))
	cosZ = math.Min(math.Max(cosZ, -1), 1)

	return radToDegree(math.Acos(cosZ))
}

// ExtraterrestrialGHI: horizontal component of the extraterrestrial beam, no diffuse part.
func ExtraterrestrialGHI(DNI0 float64, zenith float64) float64 {
	return math.Max(DNI0*math.Cos(degreeToRad(zenith)), 0.0)
}

// Extraterrestrial radiation of one hour
type SunPositionRecord struct {
	DNI0   float64 // extraterrestrial direct normal irradiance [W/m2]
	GHI0   float64 // extraterrestrial horizontal irradiance [W/m2]
	Zenith float64 // solar zenith at the middle of the hour [deg]
}

// SunPosition evaluates the solar geometry at the middle of every hour ending at date[i].
// TMP is the dry-bulb temperature [degC] handed to the geometry provider.
func SunPosition(sun SolarGeometry, site Site, date []time.Time, TMP []float64) []SunPositionRecord {
	df := make([]SunPositionRecord, len(date))
	for i := 0; i < len(date); i++ {
		t := date[i].Add(-30 * time.Minute)

		DNI0 := sun.ExtraterrestrialDNI(t)
		zenith := sun.SolarZenith(t, site.Latitude, site.Longitude, site.Elevation, TMP[i])

		df[i] = SunPositionRecord{
			DNI0:   DNI0,
			GHI0:   ExtraterrestrialGHI(DNI0, zenith),
			Zenith: zenith,
		}
	}
	return df
}

// fixAngle normalizes an angle to [0, 360)
func fixAngle(a float64) float64 {
	return a - 360.0*math.Floor(a/360.0)
}

func radToDegree(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

func degreeToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
