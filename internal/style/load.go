package style

import (
	"fmt"
	"path/filepath"
	"strings"

	"cmakefmt/internal/diag"
	"cmakefmt/internal/format"
	"cmakefmt/internal/source"
)

// Load reads the style file at path and applies it on top of base.
// Findings inside the file go to rep; the returned error means the file
// could not be used at all, in which case base is returned unchanged.
func Load(fs *source.FileSet, path string, base format.Options, rep diag.Reporter) (format.Options, error) {
	id, err := fs.Load(path)
	if err != nil {
		diag.ReportError(rep, diag.IOLoadFileError, source.Span{}, err.Error()).Emit()
		return base, fmt.Errorf("failed to read style file: %w", err)
	}
	return Decode(fs.Get(id), base, rep)
}

// Decode applies an already loaded style file on top of base. The format is
// picked by extension: .toml is TOML, everything else is YAML.
func Decode(file *source.File, base format.Options, rep diag.Reporter) (format.Options, error) {
	var (
		opt format.Options
		err error
	)
	if isTOML(file.Path) {
		opt, err = decodeTOML(file, base, rep)
	} else {
		opt, err = decodeYAML(file, base, rep)
	}
	if err != nil {
		return base, err
	}
	if err := opt.Validate(); err != nil {
		diag.ReportError(rep, diag.CfgBadValue, source.Span{File: file.ID}, err.Error()).Emit()
		return base, fmt.Errorf("%s: %w", file.Path, err)
	}
	return opt, nil
}

// Resolve returns the style for files under dir. An explicit path wins,
// then the nearest style file found upward from dir, then base itself.
// The second result is the path of the file used, or "".
func Resolve(fs *source.FileSet, explicit, dir string, base format.Options, rep diag.Reporter) (format.Options, string, error) {
	path := explicit
	if path == "" {
		found, ok, err := Find(dir)
		if err != nil {
			return base, "", err
		}
		if !ok {
			return base, "", nil
		}
		path = found
	}
	opt, err := Load(fs, path, base, rep)
	if err != nil {
		return base, path, err
	}
	return opt, path, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
