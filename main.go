// trepw
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/trepw-go/trepw"
)

func main() {
	// command line
	parser := argparse.NewParser("trepw", "Converts Finnish test reference year files into EnergyPlus weather (EPW) files")

	inputDir := parser.StringPositional(&argparse.Options{
		Default: "input",
		Help:    "Folder of the semicolon separated input files"})

	outputDir := parser.StringPositional(&argparse.Options{
		Default: "output",
		Help:    "Folder of the EPW files"})

	year := parser.Int("", "year", &argparse.Options{
		Default: 2023,
		Help:    "Year written to the EPW timestamps (non-leap)"})

	lwMethod := parser.Selector("", "lw_method", []string{"clearness", "dTsky"}, &argparse.Options{
		Default: "clearness",
		Help:    "Long-wave radiation estimate: clearness index (clearness) or sky temperature depression (dTsky)"})

	sitesFile := parser.String("", "sites", &argparse.Options{
		Default: "",
		Help:    "YAML site table, replaces the built-in stations"})

	jobs := parser.Int("j", "jobs", &argparse.Options{
		Default: 1,
		Help:    "Number of files converted concurrently"})

	labelTZ := parser.Float("", "label_tz", &argparse.Options{
		Default: 0.0,
		Help:    "Time zone of the input timestamps in hours east of UTC, used for the solar position"})

	metricsFile := parser.String("", "metrics_file", &argparse.Options{
		Default: "",
		Help:    "Write run counters in the Prometheus text format"})

	seriesDir := parser.String("", "series_dir", &argparse.Options{
		Default: "",
		Help:    "Folder for Parquet dumps of the derived series"})

	log := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "INFO",
		Help:    "Log level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	// log level
	trepw.SetLogLevel(*log)
	logger := logging.GetLogger(trepw.LoggerName)

	method, err := trepw.ParseLongWaveMethod(*lwMethod)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	opts := trepw.BatchOptions{
		Options: trepw.Options{
			YearOut:        *year,
			LongWaveMethod: method,
			Sun:            trepw.Sun{},
			LabelTimeZone:  *labelTZ,
		},
		Jobs:      *jobs,
		SeriesDir: *seriesDir,
		Metrics:   trepw.NewMetrics(),
	}

	if *sitesFile != "" {
		sites, err := trepw.LoadSites(*sitesFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		opts.Sites = sites
	}

	// conversion
	res, err := trepw.ConvertFolder(context.Background(), *inputDir, *outputDir, opts)

	if *metricsFile != "" {
		if werr := opts.Metrics.WriteToTextfile(*metricsFile); werr != nil {
			logger.Errorf("metrics: %v", werr)
		}
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	logger.Infof("converted %d files", len(res.Converted))
}
