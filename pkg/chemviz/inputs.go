package chemviz

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/chemviz-go/pkg/chemviz/assets"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/frame"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/parser"
)

// RequireFiles checks that every path exists before anything is read.
// It returns a *MissingInputError for the first absent path.
func RequireFiles(paths ...string) error {
	for _, p := range paths {
		if err := requirePath(p, "file"); err != nil {
			return err
		}
	}
	return nil
}

// RequireDir checks that dir exists and is a directory.
func RequireDir(dir, kind string) error {
	if err := requirePath(dir, kind); err != nil {
		return err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory: %s", kind, dir)
	}
	return nil
}

func requirePath(p, kind string) error {
	if p == "" {
		return &MissingInputError{Path: "(unset)", Kind: kind}
	}
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &MissingInputError{Path: p, Kind: kind}
		}
		return err
	}
	return nil
}

func loadTable(t Table) (*frame.Frame, error) {
	f, err := parser.LoadTable(t.Path, t.TableOptions)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", t.Path, err)
	}
	return f, nil
}

// resolveImages loads the manifest and resolves it under the image dir.
func resolveImages(in Inputs, mode assets.Mode, opts Options) (*assets.Result, error) {
	m, err := assets.LoadManifest(in.Manifest)
	if err != nil {
		return nil, err
	}
	r := &assets.Resolver{
		Root:    in.ImageDir,
		Mode:    mode,
		DataURI: opts.DataURI && mode == assets.ModeInline,
		Logger:  opts.logger(),
	}
	return r.Resolve(m)
}
