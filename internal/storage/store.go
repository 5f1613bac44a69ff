package storage

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ValidatingSpec is anything that can check itself after decoding.
type ValidatingSpec interface {
	Validate() error
}

// Dataset is a list of records that may be spread across several files.
type Dataset[E any] interface {
	~[]E
	ValidatingSpec
}

// Load reads a dataset from path. If path is a directory, every dataset file
// beneath it is decoded in lexical order and the records are concatenated.
// The combined dataset is validated once all files are read.
//
// JSON and YAML files are both decoded as YAML so that mapping order is kept.
func Load[T Dataset[E], E any](path string) (T, error) {
	var out T

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var files int
	if !info.IsDir() {
		out, err = decodeFile[T](path)
		if err != nil {
			return nil, err
		}
		files = 1
	} else {
		err = filepath.Walk(path, func(p string, info os.FileInfo, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if info.IsDir() || !isDatasetFile(p) {
				return nil
			}

			part, err := decodeFile[T](p)
			if err != nil {
				return err
			}
			out = append(out, part...)
			files++
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}

	slog.Info("loaded dataset", "path", path, "files", files, "records", len(out))
	return out, nil
}

func isDatasetFile(path string) bool {
	switch filepath.Ext(path) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func decodeFile[T any](path string) (T, error) {
	var v T

	if !isDatasetFile(path) {
		return v, fmt.Errorf("%s: unsupported file type %q", filepath.Base(path), filepath.Ext(path))
	}

	file, err := os.Open(path)
	if err != nil {
		return v, fmt.Errorf("opening file: %w", err)
	}

	// Ignoring close error - file is read-only, error is not actionable
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return v, fmt.Errorf("reading file: %w", err)
	}

	if err := yaml.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}

	return v, nil
}
