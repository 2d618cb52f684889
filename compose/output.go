package compose

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"readmesvg/utils/images"
)

// writeFile replaces destination with content produced by fill. Content goes
// to a temporary file in the destination directory first, so on any failure
// previous destination file stays intact.
func writeFile(dst string, fill func(io.Writer) error) (err error) {
	dir, base := filepath.Split(dst)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return fmt.Errorf("unable to create output in %q: %w", dir, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = fill(tmp); err != nil {
		return fmt.Errorf("unable to write output %q: %w", dst, err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return fmt.Errorf("unable to set permissions on %q: %w", dst, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("unable to write output %q: %w", dst, err)
	}
	if err = os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("unable to replace output %q: %w", dst, err)
	}
	return nil
}

// WriteSVG writes composite text to destination.
func WriteSVG(dst string, comp *Composite) error {
	return writeFile(dst, func(w io.Writer) error {
		_, err := io.WriteString(w, comp.Text)
		return err
	})
}

// WritePreview renders composite to PNG of requested width (0 - composite
// width).
func WritePreview(dst string, comp *Composite, width int) error {
	if width <= 0 {
		width = comp.Width
	}
	img, err := images.RasterizeSVG([]byte(comp.Text), width)
	if err != nil {
		return fmt.Errorf("unable to render preview: %w", err)
	}
	var buf bytes.Buffer
	if err := images.EncodePNG(&buf, img); err != nil {
		return fmt.Errorf("unable to encode preview: %w", err)
	}
	return writeFile(dst, func(w io.Writer) error {
		_, err := buf.WriteTo(w)
		return err
	})
}
