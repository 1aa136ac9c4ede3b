// Package sample reads the (index, amplitude) lines produced by oscillator
// test harnesses.
//
// Lines starting with the comment marker are skipped. Every other line must
// hold exactly two fields separated by the delimiter: a base-10 integer index
// and a finite floating point value. Lines not following this layout are
// dropped without interrupting the reading.
package sample

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/midbel/slices"
)

const (
	DefaultComment   = "#"
	DefaultDelimiter = ","
)

var ErrMalformed = errors.New("malformed line")

type Point struct {
	Index int
	Value float64
}

type LineError struct {
	Line int
	Text string
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}

// Parse reads a point from a single line. The line should not be a comment.
func Parse(line, delim string) (Point, error) {
	var pt Point
	if delim == "" {
		delim = DefaultDelimiter
	}
	parts := strings.Split(strings.TrimSpace(line), delim)
	if len(parts) != 2 {
		return pt, fmt.Errorf("%w: %d field(s) found, 2 expected", ErrMalformed, len(parts))
	}
	idx, err := strconv.Atoi(strings.TrimSpace(slices.Fst(parts)))
	if err != nil {
		return pt, fmt.Errorf("%w: index: %w", ErrMalformed, err)
	}
	val, err := strconv.ParseFloat(strings.TrimSpace(slices.Lst(parts)), 64)
	if err != nil {
		return pt, fmt.Errorf("%w: value: %w", ErrMalformed, err)
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return pt, fmt.Errorf("%w: value: %v is not finite", ErrMalformed, val)
	}
	pt.Index = idx
	pt.Value = val
	return pt, nil
}

type Options struct {
	Comment   string
	Delimiter string
	Logger    *slog.Logger
}

type Option func(*Options)

func WithComment(marker string) Option {
	return func(o *Options) {
		o.Comment = marker
	}
}

func WithDelimiter(delim string) Option {
	return func(o *Options) {
		o.Delimiter = delim
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

type Reader struct {
	inner *bufio.Reader
	Options

	line  int
	done  bool
	stats Stats
}

func NewReader(r io.Reader, options ...Option) *Reader {
	opts := Options{
		Comment:   DefaultComment,
		Delimiter: DefaultDelimiter,
	}
	for _, o := range options {
		o(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Reader{
		inner:   bufio.NewReader(r),
		Options: opts,
		stats:   Stats{Min: math.NaN(), Max: math.NaN()},
	}
}

// Read returns the next valid point of the stream. It returns io.EOF once
// the input is exhausted. Malformed lines never surface as errors: they are
// counted and reported to the logger at debug level.
func (r *Reader) Read() (Point, error) {
	for !r.done {
		text, err := r.inner.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return Point{}, err
			}
			r.done = true
			if text == "" {
				break
			}
		}
		r.line++
		r.stats.Lines++

		text = strings.TrimRight(text, "\r\n")
		if r.Comment != "" && strings.HasPrefix(text, r.Comment) {
			r.stats.Comments++
			continue
		}
		pt, err := Parse(text, r.Delimiter)
		if err != nil {
			r.stats.Dropped++
			r.Logger.Debug("line dropped", "err", LineError{
				Line: r.line,
				Text: text,
				Err:  err,
			})
			continue
		}
		r.stats.add(pt)
		return pt, nil
	}
	return Point{}, io.EOF
}

func (r *Reader) Stats() Stats {
	return r.stats
}

// ReadAll drains r and returns its valid points in arrival order.
func ReadAll(r io.Reader, options ...Option) ([]Point, Stats, error) {
	var (
		rs     = NewReader(r, options...)
		points []Point
	)
	for {
		pt, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return points, rs.Stats(), err
		}
		points = append(points, pt)
	}
	return points, rs.Stats(), nil
}
