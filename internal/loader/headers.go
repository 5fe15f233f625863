package loader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/windlab/plant-ingest/config"
	"github.com/windlab/plant-ingest/internal/models"
	"github.com/windlab/plant-ingest/pkg/logger"
)

// ExtractHeaders reads the fixed-offset header block of every file
// and returns one header record per file, path attached. Files may
// declare slightly different key sets; the header table aligns on
// the key union and leaves absent keys missing.
//
// In strict mode an unparsable header aborts the whole batch; in
// lenient mode the file is logged and skipped.
func ExtractHeaders(paths []string, profile config.DatasetProfile, log logger.Logger) (*models.HeaderTable, error) {
	if len(paths) == 0 {
		return nil, ErrNoSourceFiles
	}

	files := make([]models.FileHeader, 0, len(paths))
	for _, path := range paths {
		header, err := readHeaderBlock(path, profile)
		if err != nil {
			if profile.StrictHeaders {
				return nil, err
			}
			log.Warn("Skipping file with unparsable header",
				logger.String("file", path),
				logger.Error(err),
			)
			continue
		}
		files = append(files, header)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: every header block failed to parse", ErrNoSourceFiles)
	}

	log.Debug("Extracted file headers",
		logger.Int("files", len(files)),
	)

	return models.NewHeaderTable(files, profile.TurbineKey), nil
}

// readHeaderBlock parses the key/value lines of one file. The block
// sits at a fixed offset: HeaderSkipRows lines are skipped, then
// HeaderRows lines are read as "<prefix><key><delimiter><value>".
func readHeaderBlock(path string, profile config.DatasetProfile) (models.FileHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.FileHeader{}, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for i := 0; i < profile.HeaderSkipRows; i++ {
		if !scanner.Scan() {
			return models.FileHeader{}, fmt.Errorf("loader: %s: header block truncated: %w", path, scanErr(scanner))
		}
	}

	header := models.FileHeader{
		Path:   path,
		Fields: make(map[string]string, profile.HeaderRows),
	}
	for i := 0; i < profile.HeaderRows; i++ {
		if !scanner.Scan() {
			return models.FileHeader{}, fmt.Errorf("loader: %s: header block truncated: %w", path, scanErr(scanner))
		}
		line := scanner.Text()
		key, value, found := strings.Cut(line, profile.HeaderDelimiter)
		if !found {
			return models.FileHeader{}, fmt.Errorf("loader: %s: header line %d is not %q-delimited: %q",
				path, profile.HeaderSkipRows+i+1, profile.HeaderDelimiter, line)
		}
		key = strings.TrimPrefix(key, profile.CommentPrefix)
		header.Fields[key] = strings.TrimSpace(value)
		header.Keys = append(header.Keys, key)
	}

	return header, nil
}

func scanErr(scanner *bufio.Scanner) error {
	if err := scanner.Err(); err != nil {
		return err
	}
	return fmt.Errorf("unexpected end of file")
}
