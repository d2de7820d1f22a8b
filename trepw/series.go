package trepw

import (
	"os"

	parquet "github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
)

// One hour of the derived series
type SeriesRow struct {
	Month int32    `parquet:"month"`
	Day   int32    `parquet:"day"`
	Hour  int32    `parquet:"hour"`
	Tdb   float64  `parquet:"tdb"`
	RH    float64  `parquet:"rh"`
	Tdp   float64  `parquet:"tdp"`
	GHI   float64  `parquet:"ghi"`
	GHI0  float64  `parquet:"ghi0"`
	Kt    *float64 `parquet:"kt"`
	LWdn  float64  `parquet:"lwdn"`
	N     float64  `parquet:"sky_cover"`
}

// Series returns the derived quantities of the table row by row.
func (df *Table) Series() []SeriesRow {
	rows := make([]SeriesRow, df.Len())
	for i := 0; i < len(rows); i++ {
		ts := df.date[i]
		rows[i] = SeriesRow{
			Month: int32(ts.Month),
			Day:   int32(ts.Day),
			Hour:  int32(ts.Hour),
			Tdb:   df.TMP[i],
			RH:    df.RH[i],
			Tdp:   df.Tdp[i],
			GHI:   df.GHI[i],
			GHI0:  df.GHI0[i],
			LWdn:  df.LWdn[i],
			N:     df.N[i],
		}
		if df.Kt != nil {
			Kt := df.Kt[i]
			rows[i].Kt = &Kt
		}
	}
	return rows
}

// WriteSeries writes the derived series to a Parquet file via a .tmp intermediate file.
func WriteSeries(path string, df *Table) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "create %s", tmp)
	}

	w := parquet.NewGenericWriter[SeriesRow](f)
	if _, err := w.Write(df.Series()); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := w.Close(); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrapf(err, "close parquet writer %s", tmp)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "close %s", tmp)
	}
	return os.Rename(tmp, path)
}
