package trepw

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Batch settings
type BatchOptions struct {
	Options

	Sites     *Sites   // nil = DefaultSites()
	Jobs      int      // files converted concurrently, <1 = 1
	SeriesDir string   // Parquet dumps of the derived series, "" = none
	Metrics   *Metrics // nil = not collected
}

// EPWName maps an input file name to its output name.
func EPWName(filename string) string {
	return strings.ReplaceAll(filepath.Base(filename), "csv", "epw")
}

// InputFiles lists the regular, non-hidden files of dir in name order.
func InputFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read input folder %s", dir)
	}

	files := []string{}
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// ConvertFile converts one input file into output_dir and returns the output path.
func ConvertFile(path string, output_dir string, opts BatchOptions) (string, Diagnostics, error) {
	sites := opts.Sites
	if sites == nil {
		sites = DefaultSites()
	}

	rows, err := ReadRecordFile(path)
	if err != nil {
		return "", Diagnostics{}, err
	}

	site := sites.Lookup(path)
	df, diag, err := Convert(rows, site, opts.Options)
	if err != nil {
		return "", diag, errors.Wrapf(err, "convert %s", path)
	}
	df.Comment = filepath.Base(path)

	// series first, a failed file leaves no EPW behind
	if opts.SeriesDir != "" {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".parquet"
		if err := WriteSeries(filepath.Join(opts.SeriesDir, name), df); err != nil {
			return "", diag, err
		}
	}

	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	df.ToEPW(buf)

	out := filepath.Join(output_dir, EPWName(path))
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return "", diag, errors.Wrapf(err, "write %s", out)
	}

	return out, diag, nil
}

// Result of a folder conversion
type BatchResult struct {
	Converted []string               // output files
	Failed    []string               // input files
	Diag      map[string]Diagnostics // by input file
}

// ConvertFolder converts every file of input_dir into output_dir.
// A failing file does not stop the others; all errors are returned together.
func ConvertFolder(ctx context.Context, input_dir string, output_dir string, opts BatchOptions) (*BatchResult, error) {
	files, err := InputFiles(input_dir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(output_dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create output folder %s", output_dir)
	}
	if opts.SeriesDir != "" {
		if err := os.MkdirAll(opts.SeriesDir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "create series folder %s", opts.SeriesDir)
		}
	}
	if opts.Sites == nil {
		opts.Sites = DefaultSites()
	}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	result := &BatchResult{Diag: map[string]Diagnostics{}}
	var mu sync.Mutex
	var errs *multierror.Error

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			logger.Infof("converting %s", file)
			start := time.Now()
			out, diag, err := ConvertFile(file, output_dir, opts)
			elapsed := time.Since(start)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Errorf("%s: %v", file, err)
				errs = multierror.Append(errs, err)
				result.Failed = append(result.Failed, file)
				if opts.Metrics != nil {
					opts.Metrics.FilesFailed.Inc()
				}
				return nil
			}

			logger.Infof("saved %s (%d records, %.2fs)", out, diag.Records, elapsed.Seconds())
			result.Converted = append(result.Converted, out)
			result.Diag[file] = diag
			if opts.Metrics != nil {
				opts.Metrics.ObserveFile(diag, elapsed)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		errs = multierror.Append(errs, err)
	}

	sort.Strings(result.Converted)
	sort.Strings(result.Failed)
	return result, errs.ErrorOrNil()
}
