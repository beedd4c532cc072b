// Package fixtures loads the static catalogue the dashboard renders: the
// repository summary, per-file findings, the vulnerability details side table,
// scan history, weekly trends and the initial webhook list.
package fixtures

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/devguard-ai/devguard/internal/models"
)

//go:embed data/*.yaml
var embedded embed.FS

var ErrInvalidFixture = errors.New("invalid fixture")

type Catalog struct {
	Repository   models.Repository             `yaml:"repository"`
	Repositories []models.Repository           `yaml:"repositories"`
	Files        []models.FileWithFindings     `yaml:"files"`
	Details      []models.VulnerabilityDetails `yaml:"details"`
	Scans        []models.Scan                 `yaml:"scans"`
	Trends       []models.TrendPoint           `yaml:"trends"`
	Webhooks     []models.Webhook              `yaml:"webhooks"`
}

var files = []string{
	"repository.yaml",
	"findings.yaml",
	"details.yaml",
	"scans.yaml",
	"webhooks.yaml",
}

// Default returns the catalogue compiled into the binary.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded fixtures: %w", err)
	}
	return Load(sub)
}

// LoadDir reads the catalogue from dir, or the embedded one when dir is empty.
func LoadDir(dir string) (*Catalog, error) {
	if dir == "" {
		return Default()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixtures dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("failed to open fixtures dir: %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load decodes every fixture file in fsys into one catalogue. Files are
// merged key by key, so a directory override may split or combine them, but
// at least one of them must exist.
func Load(fsys fs.FS) (*Catalog, error) {
	var cat Catalog
	read := 0
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read fixture %s: %w", name, err)
		}
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("failed to parse fixture %s: %w", name, err)
		}
		read++
	}
	if read == 0 {
		return nil, fmt.Errorf("%w: none of %s found", ErrInvalidFixture, strings.Join(files, ", "))
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Catalog) Validate() error {
	paths := map[string]bool{}
	ids := map[string]bool{}
	for _, f := range c.Files {
		if f.Path == "" {
			return fmt.Errorf("%w: file without path", ErrInvalidFixture)
		}
		if paths[f.Path] {
			return fmt.Errorf("%w: duplicate file %s", ErrInvalidFixture, f.Path)
		}
		paths[f.Path] = true

		for _, finding := range f.Findings {
			if finding.ID == "" {
				return fmt.Errorf("%w: finding without id in %s", ErrInvalidFixture, f.Path)
			}
			if ids[finding.ID] {
				return fmt.Errorf("%w: duplicate finding id %s", ErrInvalidFixture, finding.ID)
			}
			ids[finding.ID] = true
			if !finding.Severity.Valid() {
				return fmt.Errorf("%w: finding %s has severity %q", ErrInvalidFixture, finding.ID, finding.Severity)
			}
		}
	}

	for _, d := range c.Details {
		if d.ID == "" {
			return fmt.Errorf("%w: detail record without id", ErrInvalidFixture)
		}
		if d.Severity != "" && !d.Severity.Valid() {
			return fmt.Errorf("%w: detail %s has severity %q", ErrInvalidFixture, d.ID, d.Severity)
		}
	}

	for _, s := range c.Scans {
		if !s.Status.Valid() {
			return fmt.Errorf("%w: scan %s has status %q", ErrInvalidFixture, s.ID, s.Status)
		}
	}

	return nil
}
