// Package templates ships the tag views and installs them into a site
// project so they can be customized there.
package templates

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/natefinch/atomic"

	ferrors "git.home.luguber.info/inful/tagindex/internal/foundation/errors"
)

// VendorDir is where Publish installs the views, relative to the project root.
const VendorDir = "views/vendor/plugin-tags"

// ProjectMarker is the file that identifies a site project root.
const ProjectMarker = "site.yaml"

// Files lists the shipped views, relative to the views directory.
var Files = []string{
	"pages/tag-overview.html",
	"partials/tag-cloud.html",
	"partials/tag-links.html",
}

// ErrNotProjectRoot is returned when Publish runs outside a site project.
var ErrNotProjectRoot = errors.New("not a site project root")

//go:embed views
var views embed.FS

// FS returns the shipped views rooted at the views directory.
func FS() fs.FS {
	sub, err := fs.Sub(views, "views")
	if err != nil {
		panic(err) // embedded directory always exists
	}
	return sub
}

// Result describes what Publish did.
type Result struct {
	// Destination is the absolute vendor directory.
	Destination string
	// Files are the written paths, relative to Destination.
	Files []string
	// Skipped is true when Destination already existed and nothing was written.
	Skipped bool
}

// Publish copies the shipped views into <projectRoot>/views/vendor/plugin-tags.
// An existing destination is left untouched and reported as skipped so local
// customizations survive re-runs.
func Publish(projectRoot string) (Result, error) {
	root, err := filepath.Abs(projectRoot)
	if err != nil {
		return Result{}, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to resolve project root").
			WithContext("path", projectRoot).
			Build()
	}

	if _, err := os.Stat(filepath.Join(root, ProjectMarker)); err != nil {
		return Result{}, ferrors.WrapError(ErrNotProjectRoot, ferrors.CategoryValidation,
			fmt.Sprintf("%s not found; run from the site project root", ProjectMarker)).
			WithContext("path", root).
			Build()
	}

	dest := filepath.Join(root, filepath.FromSlash(VendorDir))
	res := Result{Destination: dest}
	if _, err := os.Stat(dest); err == nil {
		res.Skipped = true
		return res, nil
	}

	src := FS()
	for _, name := range Files {
		data, err := fs.ReadFile(src, name)
		if err != nil {
			return res, ferrors.WrapError(err, ferrors.CategoryInternal, "shipped template missing").
				WithContext("template", name).
				Build()
		}
		target := filepath.Join(dest, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
			return res, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create template directory").
				WithContext("path", filepath.Dir(target)).
				Build()
		}
		if err := atomic.WriteFile(target, bytes.NewReader(data)); err != nil {
			return res, ferrors.WrapError(err, ferrors.CategoryTemplates, "failed to write template").
				WithContext("path", target).
				Build()
		}
		res.Files = append(res.Files, path.Clean(name))
	}
	return res, nil
}
