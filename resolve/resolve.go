// Package resolve locates stylesheet files from user supplied names.
package resolve

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// DefaultExtension is appended to names which do not have it already.
const DefaultExtension = ".css"

// ErrFileNotFound is returned when no candidate path refers to an existing file.
var ErrFileNotFound = errors.New("could not construct file path to CSS file")

// Resolver turns a path-like string into a path of an existing file.
type Resolver struct {
	// WorkDir anchors relative names. Empty means relative names are only
	// tried as given.
	WorkDir string
	// Extension is appended to names without it, DefaultExtension when empty.
	Extension string
	// Stat is used to check candidates, os.Stat when nil.
	Stat func(name string) (fs.FileInfo, error)

	log *zap.Logger
}

// New returns Resolver anchored at workDir.
func New(workDir, ext string, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		WorkDir:   workDir,
		Extension: ext,
		log:       log.Named("resolve"),
	}
}

func (r *Resolver) ext() string {
	if r.Extension == "" {
		return DefaultExtension
	}
	return r.Extension
}

// Candidates returns paths to try for pathLike in order: as given, with
// extension appended, anchored to working directory, anchored with extension
// appended. Steps which do not apply are left out, as are duplicates.
func (r *Resolver) Candidates(pathLike string) []string {
	if pathLike == "" {
		return nil
	}

	ext := r.ext()
	hasExt := strings.HasSuffix(pathLike, ext)
	anchor := r.WorkDir != "" && !filepath.IsAbs(pathLike)

	transforms := []struct {
		applies bool
		apply   func(string) string
	}{
		{true, func(p string) string { return p }},
		{!hasExt, func(p string) string { return p + ext }},
		{anchor, func(p string) string { return filepath.Join(r.WorkDir, p) }},
		{anchor && !hasExt, func(p string) string { return filepath.Join(r.WorkDir, p) + ext }},
	}

	candidates := make([]string, 0, len(transforms))
	for _, t := range transforms {
		if !t.applies {
			continue
		}
		c := t.apply(pathLike)
		if !slices.Contains(candidates, c) {
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// Resolve returns the first candidate which exists and is not a directory.
func (r *Resolver) Resolve(pathLike string) (string, error) {
	if pathLike == "" {
		return "", fmt.Errorf("%w (empty file name), check params and try again", ErrFileNotFound)
	}

	stat := r.Stat
	if stat == nil {
		stat = os.Stat
	}

	log := r.logger()
	for _, c := range r.Candidates(pathLike) {
		fi, err := stat(c)
		if err != nil {
			log.Debug("Candidate rejected", zap.String("path", c), zap.Error(err))
			continue
		}
		if fi.IsDir() {
			log.Debug("Candidate is a directory", zap.String("path", c))
			continue
		}
		log.Debug("Resolved file", zap.String("name", pathLike), zap.String("path", c))
		return c, nil
	}
	return "", fmt.Errorf("%w (%s), check params and try again", ErrFileNotFound, pathLike)
}

func (r *Resolver) logger() *zap.Logger {
	if r.log == nil {
		return zap.NewNop()
	}
	return r.log
}
