package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/windlab/plant-ingest/pkg/logger"
)

// ExtractAll prepares the working copy of the dataset: every *.zip
// directly under root is extracted into dest, and every other entry
// is symlinked into dest (an existing symlink is replaced). The
// input root itself is never written to.
func ExtractAll(root, dest string, log logger.Logger) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("archive: reading %s: %w", root, err)
	}

	for _, entry := range entries {
		src := filepath.Join(root, entry.Name())
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), ".zip") {
			log.Info("Extracting archive", logger.String("archive", src))
			if err := extractZip(src, dest); err != nil {
				return err
			}
			continue
		}
		if err := linkInto(src, dest); err != nil {
			return err
		}
	}

	return nil
}

func extractZip(path, dest string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("archive: open %s: %w", path, err)
	}
	defer zr.Close()

	for _, file := range zr.File {
		if err := extractEntry(file, dest); err != nil {
			return fmt.Errorf("archive: %s: %w", path, err)
		}
	}
	return nil
}

func extractEntry(file *zip.File, dest string) error {
	target := filepath.Join(dest, file.Name)

	// Reject entries escaping the destination.
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return fmt.Errorf("entry %q escapes destination", file.Name)
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(target, 0755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	rc, err := file.Open()
	if err != nil {
		return fmt.Errorf("entry %q: %w", file.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("entry %q: %w", file.Name, err)
	}
	return out.Close()
}

// linkInto drops a symlink to src inside dest, replacing a previous
// link of the same name.
func linkInto(src, dest string) error {
	abs, err := filepath.Abs(src)
	if err != nil {
		return fmt.Errorf("archive: resolving %s: %w", src, err)
	}
	link := filepath.Join(dest, filepath.Base(src))
	if info, err := os.Lstat(link); err == nil && info.Mode()&os.ModeSymlink != 0 {
		if err := os.Remove(link); err != nil {
			return fmt.Errorf("archive: replacing link %s: %w", link, err)
		}
	}
	if err := os.Symlink(abs, link); err != nil {
		return fmt.Errorf("archive: linking %s: %w", src, err)
	}
	return nil
}
