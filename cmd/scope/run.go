package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/midbel/scope/internal/config"
	"github.com/midbel/scope/internal/logging"
	"github.com/midbel/scope/render"
	"github.com/midbel/scope/sample"
)

var errUsage = errors.New("usage")

type fileList struct {
	files []string
	set   bool
}

func (f *fileList) String() string {
	return strings.Join(f.files, ",")
}

func (f *fileList) Set(str string) error {
	if !f.set {
		f.files, f.set = nil, true
	}
	f.files = append(f.files, str)
	return nil
}

// run parses the arguments, reads every input in order and renders the
// collected points. It never calls os.Exit so that it can be tested.
func run(ctx context.Context, args []string, getenv func(string) string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := config.DefaultConfig()
	if out := getenv("SCOPE_OUTPUT"); out != "" {
		cfg.Files = []string{out}
	}
	cfg.NoColor = getenv("NO_COLOR") != ""

	var (
		flags = flag.NewFlagSet(args[0], flag.ContinueOnError)
		files = fileList{files: cfg.Files}
		ydom  = flags.String("ydom", fmt.Sprintf("%g:%g", cfg.YMin, cfg.YMax), "domain for amplitude values")
	)
	flags.SetOutput(stderr)
	flags.Var(&files, "file", "output file, repeat to write several formats")
	flags.StringVar(&cfg.Title, "title", cfg.Title, "chart title")
	flags.StringVar(&cfg.XLabel, "xlabel", cfg.XLabel, "label of the sample axis")
	flags.StringVar(&cfg.YLabel, "ylabel", cfg.YLabel, "label of the amplitude axis")
	flags.Float64Var(&cfg.Width, "width", cfg.Width, "figure width in inches")
	flags.Float64Var(&cfg.Height, "height", cfg.Height, "figure height in inches")
	flags.IntVar(&cfg.DPI, "dpi", cfg.DPI, "dots per inch")
	flags.StringVar(&cfg.Kind, "type", cfg.Kind, "chart type (line, step, scatter)")
	flags.StringVar(&cfg.Marker, "marker", cfg.Marker, "marker shape (circle, square, diamond)")
	flags.BoolVar(&cfg.Markers, "markers", cfg.Markers, "mark every point of line charts")
	flags.StringVar(&cfg.Color, "color", cfg.Color, "line colour")
	flags.Float64Var(&cfg.LineWidth, "linewidth", cfg.LineWidth, "line width in points")
	flags.BoolVar(&cfg.NoGrid, "no-grid", cfg.NoGrid, "remove grid lines")
	flags.StringVar(&cfg.Comment, "comment", cfg.Comment, "marker of comment lines")
	flags.StringVar(&cfg.Delimiter, "delim", cfg.Delimiter, "field delimiter")
	flags.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "report dropped lines")
	if err := flags.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	cfg.Files = files.files

	var err error
	if cfg.YMin, cfg.YMax, err = config.ParseDomain(*ydom); err != nil {
		return fmt.Errorf("%w: ydom: %w", errUsage, err)
	}
	fig, err := cfg.Figure()
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(logging.NewTerminalHandler(stderr, level, cfg.NoColor))

	points, stats, err := readInputs(flags.Args(), stdin, cfg, logger)
	if err != nil {
		return err
	}
	logger.Debug("input read",
		"lines", stats.Lines,
		"comments", stats.Comments,
		"dropped", stats.Dropped,
		"points", stats.Count)

	if stats.Empty() {
		fmt.Fprintln(stdout, "No data to plot")
		return nil
	}
	if err := render.Save(ctx, fig, points, cfg.Files...); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	for _, f := range cfg.Files {
		fmt.Fprintf(stdout, "Plot saved to %s\n", f)
	}
	fmt.Fprintf(stdout, "Max amplitude: %.3f\n", stats.Max)
	fmt.Fprintf(stdout, "Min amplitude: %.3f\n", stats.Min)
	return nil
}

func readInputs(names []string, stdin io.Reader, cfg *config.Config, logger *slog.Logger) ([]sample.Point, sample.Stats, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}
	var (
		points []sample.Point
		stats  = sample.Summarize(nil)
	)
	for _, name := range names {
		pts, st, err := readInput(name, stdin, cfg, logger)
		if err != nil {
			return nil, stats, err
		}
		points = append(points, pts...)
		stats = stats.Merge(st)
	}
	return points, stats, nil
}

func readInput(name string, stdin io.Reader, cfg *config.Config, logger *slog.Logger) ([]sample.Point, sample.Stats, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, sample.Stats{}, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	points, stats, err := sample.ReadAll(r,
		sample.WithComment(cfg.Comment),
		sample.WithDelimiter(cfg.Delimiter),
		sample.WithLogger(logger.With("input", name)))
	if err != nil {
		return nil, stats, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return points, stats, nil
}
