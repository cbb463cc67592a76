// Package optimize re-encodes JPEG and PNG images as WebP in place. Each
// output is staged to a temporary sibling and renamed over its final path,
// and the original is removed only after that succeeds.
package optimize

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/sonnes/chitrashala/core"
	"github.com/sonnes/chitrashala/scan"
)

// Options are the encoding parameters held for a whole run.
type Options struct {
	Quality  int // 0..100
	MaxWidth int // 0 disables downsampling
	Method   int // 0..6
}

// DefaultOptions returns quality 80, max width 1920 and method 6.
func DefaultOptions() Options {
	return Options{Quality: 80, MaxWidth: 1920, Method: 6}
}

// Validate checks that every option is in range.
func (o Options) Validate() error {
	if o.Quality < 0 || o.Quality > 100 {
		return fmt.Errorf("quality %d out of range 0..100", o.Quality)
	}
	if o.MaxWidth < 0 {
		return fmt.Errorf("max width %d must not be negative", o.MaxWidth)
	}
	if o.Method < 0 || o.Method > 6 {
		return fmt.Errorf("method %d out of range 0..6", o.Method)
	}
	return nil
}

// Reporter receives per-file outcomes in walk order. Skipped files are not
// reported.
type Reporter interface {
	Converted(path, output string, r core.Result)
	Failed(path string, err error)
}

// Optimizer converts images according to fixed Options.
type Optimizer struct {
	Options Options
	// Encoder writes the target format. New sets a WebPEncoder matching
	// Options.
	Encoder Encoder
}

// New creates an Optimizer that encodes WebP with opts.
func New(opts Options) *Optimizer {
	return &Optimizer{
		Options: opts,
		Encoder: WebPEncoder{Quality: opts.Quality, Method: opts.Method},
	}
}

// OutputPath returns where the optimized version of path is written.
func OutputPath(path string) string {
	return scan.WithSuffix(path, core.TargetExt)
}

// Run walks root recursively, optimizing every eligible file, and returns
// the accumulated totals. Per-file failures go to rep and do not stop the
// walk; an error reading the tree does.
func (o *Optimizer) Run(root string, rep Reporter) (core.Totals, error) {
	var totals core.Totals

	for e, err := range scan.Walk(root) {
		if err != nil {
			return totals, fmt.Errorf("walk %s: %w", root, err)
		}
		if !e.IsFile() || !core.IsOptimizable(e.Suffix()) {
			continue
		}

		r, err := o.File(e.Path)
		totals.Add(r)

		switch {
		case err != nil:
			rep.Failed(e.Path, err)
		case r.Converted:
			rep.Converted(e.Path, OutputPath(e.Path), r)
		case r.Skipped:
			log.Debug("output exists, skipping", "path", e.Path, "output", OutputPath(e.Path))
		}
	}

	log.Debug("walk done", "root", root, "scanned", totals.Scanned, "converted", totals.Converted, "skipped", totals.Skipped)
	return totals, nil
}

// File optimizes a single image. When the output already exists nothing is
// written and the result carries the existing sizes with Skipped set. On
// failure the original is left untouched and the result reports the
// original size as both Before and After.
func (o *Optimizer) File(path string) (core.Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return core.Result{}, err
	}
	before := info.Size()

	out := OutputPath(path)
	if existing, err := os.Stat(out); err == nil {
		return core.Result{Before: before, After: existing.Size(), Skipped: true}, nil
	}

	after, err := o.convert(path, out)
	if err != nil {
		return core.Result{Before: before, After: before}, err
	}
	return core.Result{Before: before, After: after, Converted: true}, nil
}

// convert runs decode, normalize, downsample and encode for src, then
// replaces out and removes src. It returns the size of the written output.
func (o *Optimizer) convert(src, out string) (int64, error) {
	img, err := decode(src)
	if err != nil {
		return 0, err
	}

	img, mode := Normalize(img)
	log.Debug("decoded", "path", src, "mode", mode, "size", img.Bounds().Size())

	img, err = Downsample(img, o.Options.MaxWidth)
	if err != nil {
		return 0, err
	}

	tmp := out + ".tmp"
	size, err := o.encodeFile(tmp, img)
	if err != nil {
		os.Remove(tmp)
		return 0, err
	}

	if err := os.Rename(tmp, out); err != nil {
		os.Remove(tmp)
		return 0, fmt.Errorf("replace %s: %w", out, err)
	}

	if err := os.Remove(src); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("remove original: %w", err)
	}

	return size, nil
}

// encodeFile writes img to path and returns the resulting file size.
func (o *Optimizer) encodeFile(path string, img image.Image) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	if err := o.Encoder.Encode(f, img); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
