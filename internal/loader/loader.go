// Package loader reads exported project files for the search commands and
// the API. Loading is read-only; missing ids are backfilled in memory.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"vykaz/pkg/vykaz/models"
)

// LoadFile reads one project JSON file.
func LoadFile(path string) (models.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}
	var p models.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return models.Project{}, fmt.Errorf("failed to parse project file %s: %w", path, err)
	}
	ensureIDs(&p)
	return p, nil
}

// LoadGlob reads every project file matching the pattern concurrently and
// returns the projects in path order.
func LoadGlob(pattern string, logger zerolog.Logger) ([]models.Project, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad project glob %q: %w", pattern, err)
	}
	sort.Strings(paths)

	projects := make([]models.Project, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			p, err := LoadFile(path)
			if err != nil {
				return err
			}
			projects[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info().
		Int("projects", len(projects)).
		Str("pattern", pattern).
		Msg("loaded projects")
	return projects, nil
}

// ensureIDs assigns ids missing from hand-written fixtures. Search needs
// unique item ids to associate hits with their owning project.
func ensureIDs(p *models.Project) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	for si := range p.Sheets {
		items := p.Sheets[si].Items
		for ii := range items {
			if items[ii].ID == "" {
				items[ii].ID = uuid.NewString()
			}
		}
	}
}
