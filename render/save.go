package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/midbel/scope/sample"
)

// Save writes the figure to every file, in parallel. A file is only replaced
// once its content has been fully rendered.
func Save(ctx context.Context, fig Figure, points []sample.Point, files ...string) error {
	if len(points) == 0 {
		return ErrNoData
	}
	for _, f := range files {
		if _, err := FormatFromPath(f); err != nil {
			return err
		}
	}
	grp, ctx := errgroup.WithContext(ctx)
	for _, f := range files {
		grp.Go(func() error {
			return saveFile(ctx, fig, points, f)
		})
	}
	return grp.Wait()
}

func saveFile(ctx context.Context, fig Figure, points []sample.Point, file string) error {
	format, err := FormatFromPath(file)
	if err != nil {
		return err
	}
	rdr, err := For(format)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(file), "."+filepath.Base(file)+".*")
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	defer os.Remove(tmp.Name())

	if err := rdr.Render(tmp, fig, points); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", file, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", file, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), file)
}
