package trepw

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// Hours of a non-leap year
const HoursPerYear = 8760

func init() {
	// every HourlyRecord column must be present in the header
	gocsv.FailIfUnmatchedStructTags = true
}

// One row of a test reference year file
type HourlyRecord struct {
	Step  int     `csv:"STEP"`
	Year  int     `csv:"YEAR"`
	Month int     `csv:"MON"`
	Day   int     `csv:"DAY"`
	Hour  int     `csv:"HOUR"` // 0..23
	TMP   float64 `csv:"TEMP"` // dry-bulb temperature [degC]
	RH    float64 `csv:"RH"`   // relative humidity over liquid water [%]
	WS    float64 `csv:"WS"`   // wind speed [m/s]
	WDIR  float64 `csv:"WDIR"` // wind direction [deg]
	GHI   float64 `csv:"GHI"`  // global horizontal irradiance [W/m2]
	DHI   float64 `csv:"DHI"`  // diffuse horizontal irradiance [W/m2]
	DNI   float64 `csv:"DNI"`  // direct normal irradiance [W/m2]
}

// ReadRecords reads a ';' separated table with a header row. Lines starting with '#' are comments.
// A header missing one of the HourlyRecord columns is an error.
func ReadRecords(r io.Reader) ([]HourlyRecord, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = ';'
	csvReader.Comment = '#'
	csvReader.TrimLeadingSpace = true

	var rows []HourlyRecord
	if err := gocsv.UnmarshalCSV(csvReader, &rows); err != nil {
		return nil, errors.Wrap(err, "parse records")
	}
	return rows, nil
}

// ReadRecordFile reads the records of one file.
func ReadRecordFile(path string) ([]HourlyRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	rows, err := ReadRecords(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return rows, nil
}

// DropLeapDays returns the records without Feb 29.
func DropLeapDays(rows []HourlyRecord) []HourlyRecord {
	kept := make([]HourlyRecord, 0, len(rows))
	for i := 0; i < len(rows); i++ {
		if !(rows[i].Month == 2 && rows[i].Day == 29) {
			kept = append(kept, rows[i])
		}
	}
	return kept
}

// ShiftHourEnding drops the first record and repeats the last one, so that the record
// of "day 1, hour 0" of the next year is not needed.
func ShiftHourEnding(rows []HourlyRecord) []HourlyRecord {
	if len(rows) == 0 {
		return nil
	}
	shifted := make([]HourlyRecord, 0, len(rows))
	shifted = append(shifted, rows[1:]...)
	shifted = append(shifted, rows[len(rows)-1])
	return shifted
}
