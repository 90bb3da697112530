package assets

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ukaji3/chemviz-go/pkg/chemviz/models"
)

// Mode selects how a resolved image is emitted.
type Mode string

const (
	// ModeInline embeds the file bytes as base64. Missing images are omitted.
	ModeInline Mode = "inline"
	// ModePath passes the manifest path through. Missing images map to null.
	ModePath Mode = "path"
)

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case ModeInline, ModePath:
		return m, nil
	}
	return "", fmt.Errorf("invalid image mode: %s (must be inline or path)", s)
}

// Warning records a manifest entry whose image file is absent.
type Warning struct {
	ID   string
	Path string
}

func (w Warning) String() string {
	return fmt.Sprintf("image file not found for %s at %s", w.ID, w.Path)
}

// Resolver locates manifest images under Root.
type Resolver struct {
	// Root is the directory holding the image files.
	Root string
	Mode Mode
	// DataURI prefixes inline images with a data: URI header.
	DataURI bool
	Logger  *slog.Logger
}

// Result is the outcome of resolving a manifest.
type Result struct {
	Images   models.Images
	Warnings []Warning
}

// Resolve resolves every manifest entry. A missing image file is
// recorded as a warning and never fails the call; read errors other
// than absence do.
func (r *Resolver) Resolve(m Manifest) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	mode := r.Mode
	if mode == "" {
		mode = ModeInline
	}

	res := &Result{Images: make(models.Images, len(m))}
	for _, id := range m.IDs() {
		src := m[id]
		full := r.locate(src)

		var value *string
		switch mode {
		case ModeInline:
			data, err := os.ReadFile(full)
			if err == nil {
				s := r.encode(full, data)
				value = &s
			} else if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("image for %s: %w", id, err)
			}
		case ModePath:
			if _, err := os.Stat(full); err == nil {
				s := src
				value = &s
			} else if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("image for %s: %w", id, err)
			}
		default:
			return nil, fmt.Errorf("invalid image mode: %s", mode)
		}

		if value == nil {
			w := Warning{ID: id, Path: full}
			res.Warnings = append(res.Warnings, w)
			logger.Warn("Image file not found", "id", id, "path", full)
			if mode == ModeInline {
				continue
			}
		}
		res.Images[id] = value
	}
	return res, nil
}

// locate maps a manifest path to its file under Root.
func (r *Resolver) locate(src string) string {
	base := path.Base(strings.ReplaceAll(src, `\`, "/"))
	return filepath.Join(r.Root, base)
}

func (r *Resolver) encode(name string, data []byte) string {
	enc := base64.StdEncoding.EncodeToString(data)
	if !r.DataURI {
		return enc
	}
	return "data:" + mediaType(name, data) + ";base64," + enc
}

// mediaType sniffs the image format, falling back to the file extension.
func mediaType(name string, data []byte) string {
	if _, format, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		return "image/" + format
	}
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); t != "" {
		return t
	}
	return "application/octet-stream"
}
