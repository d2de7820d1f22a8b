package trepw

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Uncertainty flags of the data fields, groups 4 2 4; 4 6 2 4 2
const EPWFlags = "?9?9?9?9" + "E9?9D9?9" + "?9?9?9?9" + "?9?9?9?9?9?9" + "?9?9?9?9"

// Number of columns of an EPW data row
const EPWColumns = 35

// Fixed values of the fields not present in the source data
const (
	epwPressure          = 101325.0  //N9 [Pa]
	epwIlluminance       = 0.0       //N16-N19
	epwVisibility        = 9999.0    //N24
	epwCeilingHeight     = 99999.0   //N25
	epwWeatherObserved   = 9.0       //N26
	epwWeatherCodes      = 999999999 //N27
	epwPrecipitableWater = 999.0     //N28
	epwAerosolDepth      = 0.999     //N29
	epwSnowDepth         = 999.0     //N30
	epwDaysSinceSnow     = 99.0      //N31
	epwAlbedo            = 0.2       //N32
	epwLiquidDepth       = 0.0       //N33 [mm]
	epwLiquidQuantity    = 1.0       //N34 [h]
)

// EPW header
//
// Note:
//
//	No design conditions, typical periods, ground temperatures or daylight saving.
func (df *Table) writeEPWHeader(out *bytes.Buffer) {
	// LOCATION
	out.WriteString(fmt.Sprintf("LOCATION,%s,FIN,Finland,Finnish Meteorological Institute,%d,%s,%s,%s,%s\n",
		df.Site.Name, df.Site.WMO,
		headerFloat(df.Site.Latitude), headerFloat(df.Site.Longitude),
		headerFloat(df.Site.TimeZone), headerFloat(df.Site.Elevation)))

	out.WriteString("DESIGN CONDITIONS,0\n")
	out.WriteString("TYPICAL/EXTREME PERIODS,0\n")
	out.WriteString("GROUND TEMPERATURES,0\n")
	out.WriteString("HOLIDAYS/DAYLIGHT SAVINGS,No,0,0,0\n")
	out.WriteString(fmt.Sprintf("COMMENTS 1,%s\n", df.Comment))
	out.WriteString("COMMENTS 2,\"Finnish Test Reference Year by Finnish Meteorological Institute\"\n")

	// DATA PERIODS, start weekday of the output year
	weekday := time.Date(df.YearOut, time.January, 1, 0, 0, 0, 0, time.UTC).Weekday()
	out.WriteString(fmt.Sprintf("DATA PERIODS,1,1,Data,%s,1/1,12/31\n", weekday))
}

// EPW format
//
// Note:
//
//	Radiation fields hold the hourly means [W/m2], i.e. the hourly sums [Wh/m2].
//	Fields not derived from the source data are written with fixed values.
func (df *Table) ToEPW(out *bytes.Buffer) {
	df.writeEPWHeader(out)

	writeFloat := func(v float64) {
		out.WriteString(",")
		out.WriteString(strconv.FormatFloat(v, 'f', 3, 64))
	}

	for i := 0; i < len(df.date); i++ {
		ts := df.date[i]

		// N1-N5, A1
		out.WriteString(fmt.Sprintf("%d,%d,%d,%d,%d,%s", ts.Year, ts.Month, ts.Day, ts.Hour, ts.Minute, EPWFlags))

		writeFloat(df.TMP[i])  //N6
		writeFloat(df.Tdp[i])  //N7
		writeFloat(df.RH[i])   //N8
		writeFloat(df.PRES[i]) //N9
		writeFloat(df.GHI0[i]) //N10
		writeFloat(df.DNI0[i]) //N11
		writeFloat(df.LWdn[i]) //N12
		writeFloat(df.GHI[i])  //N13
		writeFloat(df.DNI[i])  //N14
		writeFloat(df.DHI[i])  //N15
		for k := 0; k < 4; k++ {
			writeFloat(epwIlluminance) //N16-N19
		}
		writeFloat(df.WDIR[i])            //N20
		writeFloat(df.WS[i])              //N21
		writeFloat(df.N[i])               //N22
		writeFloat(df.N[i])               //N23
		writeFloat(epwVisibility)         //N24
		writeFloat(epwCeilingHeight)      //N25
		writeFloat(epwWeatherObserved)    //N26
		writeFloat(epwWeatherCodes)       //N27
		writeFloat(epwPrecipitableWater)  //N28
		writeFloat(epwAerosolDepth)       //N29
		writeFloat(epwSnowDepth)          //N30
		writeFloat(epwDaysSinceSnow)      //N31
		writeFloat(epwAlbedo)             //N32
		writeFloat(epwLiquidDepth)        //N33
		writeFloat(epwLiquidQuantity)     //N34
		out.WriteString("\n")
	}
}

// Header numbers keep one decimal for whole values (179.0, 2.0)
func headerFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
