package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
)

// File is one output document below the output directory.
type File struct {
	Path  string
	Write func(w io.Writer) error
}

// Save writes the file below dir, creating directories as needed. The file
// is written next to its final name first and renamed into place.
func (f File) Save(ctx context.Context, dir string) (err error) {
	path := filepath.Join(dir, f.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory for %s: %w", f.Path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", f.Path, err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", f.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.Path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", f.Path, err)
	}

	ctxlog.FromContext(ctx).Debug("Output file written.", "path", path)
	return nil
}
