package wordfreq

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// defaultOutputMode is used when the output file does not exist yet
const defaultOutputMode fs.FileMode = 0644

// ReportFormat selects the renderer used by WordCount
type ReportFormat int

const (
	// ReportDefault is the WriteReport format
	ReportDefault ReportFormat = iota
	// ReportBuckets is the WriteBucketReport format
	ReportBuckets
	// ReportSorted is the WriteSortedReport format
	ReportSorted
	// ReportTop is the WriteTopReport format
	ReportTop
)

// ParseReportFormat accepts: default, buckets, sorted, top
func ParseReportFormat(s string) (ReportFormat, error) {
	switch strings.ToLower(s) {
	case "", "default":
		return ReportDefault, nil
	case "buckets":
		return ReportBuckets, nil
	case "sorted":
		return ReportSorted, nil
	case "top":
		return ReportTop, nil
	default:
		return ReportDefault, fmt.Errorf("wordfreq: unknown report format %q", s)
	}
}

type countConfig struct {
	bucketCount  int
	tableOptions []Option
	format       ReportFormat
	topN         int
}

func computeCountConfig(options []CountOption) countConfig {
	conf := countConfig{
		bucketCount: DefaultBucketCount,
		format:      ReportDefault,
		topN:        10,
	}
	for _, fn := range options {
		fn(&conf)
	}
	return conf
}

// CountOption ...
type CountOption func(conf *countConfig)

// WithBucketCount sets the initial bucket count of the table
func WithBucketCount(n int) CountOption {
	return func(conf *countConfig) {
		conf.bucketCount = n
	}
}

// WithTableOptions ...
func WithTableOptions(options ...Option) CountOption {
	return func(conf *countConfig) {
		conf.tableOptions = options
	}
}

// WithReportFormat ...
func WithReportFormat(format ReportFormat) CountOption {
	return func(conf *countConfig) {
		conf.format = format
	}
}

// WithTopN is the number of words written by ReportTop
func WithTopN(n int) CountOption {
	return func(conf *countConfig) {
		conf.topN = n
	}
}

// WordCount counts the words of inputPath and writes the report to outputPath.
// Files ending with .gz or .zst are decompressed / compressed.
// On error no output file is created.
func WordCount(
	ctx context.Context,
	inputPath string, outputPath string,
	options ...CountOption,
) (*Table, error) {
	conf := computeCountConfig(options)

	t, err := New(conf.bucketCount, conf.tableOptions...)
	if err != nil {
		return nil, err
	}

	input, err := openInput(inputPath)
	if err != nil {
		return nil, err
	}

	err = loadLines(ctx, input, t.InsertLine)
	closeErr := input.Close()
	if err != nil {
		return nil, err
	}
	if closeErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputOutput, closeErr)
	}

	err = writeOutput(outputPath, func(w io.Writer) error {
		return renderReport(w, t, conf)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Load inserts every token of r into t
func Load(ctx context.Context, t *Table, r io.Reader) error {
	return loadLines(ctx, r, t.InsertLine)
}

// loadLines calls insertLine for every line of r, without any limit on the line length.
// The line terminator (\n or \r\n) is removed.
func loadLines(ctx context.Context, r io.Reader, insertLine func(line string)) error {
	reader := bufio.NewReaderSize(r, 64*1024)

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: read input: %w", ErrInputOutput, err)
		}
		if len(line) == 0 && err != nil {
			return nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		insertLine(trimLineEnding(line))

		if err != nil {
			return nil
		}
	}
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

func renderReport(w io.Writer, t *Table, conf countConfig) error {
	switch conf.format {
	case ReportBuckets:
		return WriteBucketReport(w, t)
	case ReportSorted:
		return WriteSortedReport(w, t)
	case ReportTop:
		return WriteTopReport(w, t, conf.topN)
	default:
		return WriteReport(w, t)
	}
}

type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var result error
	for _, fn := range r.closers {
		if err := fn(); err != nil && result == nil {
			result = err
		}
	}
	return result
}

func openInput(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInputOutput, err)
	}

	switch compressionOf(path) {
	case compressionGzip:
		gz, err := pgzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("%w: gzip input: %w", ErrInputOutput, err)
		}
		return &readCloser{
			Reader:  gz,
			closers: []func() error{gz.Close, file.Close},
		}, nil

	case compressionZstd:
		dec, err := zstd.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("%w: zstd input: %w", ErrInputOutput, err)
		}
		return &readCloser{
			Reader: dec,
			closers: []func() error{
				func() error {
					dec.Close()
					return nil
				},
				file.Close,
			},
		}, nil

	default:
		return file, nil
	}
}

// resolveOutput follows a symlink at path, returns the real target and the mode to give it.
// An existing target keeps its permissions, a new one gets defaultOutputMode.
func resolveOutput(path string) (string, fs.FileMode, error) {
	target := path
	if info, err := os.Lstat(path); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		resolved, err := filepath.EvalSymlinks(path)
		if err == nil {
			target = resolved
		} else if link, linkErr := os.Readlink(path); linkErr == nil {
			// dangling link: create the file it points to
			if !filepath.IsAbs(link) {
				link = filepath.Join(filepath.Dir(path), link)
			}
			target = link
		}
	}

	info, err := os.Stat(target)
	if err == nil {
		return target, info.Mode().Perm(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return target, defaultOutputMode, nil
	}
	return "", 0, err
}

// writeOutput writes to a temporary file in the same directory then renames it to path.
// If path is a symlink, the file it points to is replaced and the link is kept.
func writeOutput(path string, render func(w io.Writer) error) (err error) {
	target, mode, err := resolveOutput(path)
	if err != nil {
		return fmt.Errorf("%w: stat output: %w", ErrInputOutput, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create output: %w", ErrInputOutput, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := writeCompressed(tmp, compressionOf(path), render); err != nil {
		return fmt.Errorf("%w: write output: %w", ErrInputOutput, err)
	}

	if err := tmp.Chmod(mode); err != nil {
		return fmt.Errorf("%w: chmod output: %w", ErrInputOutput, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close output: %w", ErrInputOutput, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("%w: rename output: %w", ErrInputOutput, err)
	}
	return nil
}

func writeCompressed(w io.Writer, c compression, render func(w io.Writer) error) error {
	switch c {
	case compressionGzip:
		gz := pgzip.NewWriter(w)
		if err := render(gz); err != nil {
			_ = gz.Close()
			return err
		}
		return gz.Close()

	case compressionZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		if err := render(enc); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()

	default:
		return render(w)
	}
}

type compression int

const (
	compressionNone compression = iota
	compressionGzip
	compressionZstd
)

func compressionOf(path string) compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return compressionGzip
	case ".zst":
		return compressionZstd
	default:
		return compressionNone
	}
}
