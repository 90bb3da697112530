package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File is an artifact rendered in memory and waiting to be written.
type File struct {
	Path string
	Data []byte
}

// WriteFiles writes every file to a temporary sibling and renames them
// into place only once all temporary files are complete. Missing parent
// directories are created.
func WriteFiles(files ...File) error {
	temps := make([]string, 0, len(files))
	cleanup := func() {
		for _, tmp := range temps {
			os.Remove(tmp)
		}
	}

	for _, f := range files {
		tmp, err := writeTemp(f)
		if err != nil {
			cleanup()
			return fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
		temps = append(temps, tmp)
	}

	for i, f := range files {
		if err := os.Rename(temps[i], f.Path); err != nil {
			temps = temps[i:]
			cleanup()
			return fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
	}
	return nil
}

func writeTemp(f File) (string, error) {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	base := strings.ReplaceAll(filepath.Base(f.Path), "*", "_")
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(f.Data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
