// Package catalog loads the static, read-only list of portfolio projects.
//
// The catalog is decoded and validated in one step; callers never observe a
// partially built project list.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tperticaro.dev/internal/models"
)

var (
	// ErrDuplicateID is returned when two projects share an id.
	ErrDuplicateID = errors.New("duplicate project id")
	// ErrAmbiguousPresentation is returned when a project declares both an icon and an image.
	ErrAmbiguousPresentation = errors.New("project declares both icon and image")
	// ErrMissingTitle is returned for a project without a title.
	ErrMissingTitle = errors.New("project title is required")
)

//go:embed projects.yaml
var embeddedProjects []byte

type fileProject struct {
	ID              int                       `yaml:"id"`
	Title           string                    `yaml:"title"`
	Description     string                    `yaml:"description"`
	FullDescription string                    `yaml:"full_description"`
	Technologies    []string                  `yaml:"technologies"`
	Tags            []string                  `yaml:"tags"`
	Icon            *models.IconPresentation  `yaml:"icon"`
	Image           *models.ImagePresentation `yaml:"image"`
}

type file struct {
	Projects []fileProject `yaml:"projects"`
}

// Default returns the catalog compiled into the binary.
func Default() (*models.ProjectList, error) {
	list, err := Parse(embeddedProjects)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return list, nil
}

// Load reads a catalog from path. An empty path selects the embedded catalog.
func Load(path string) (*models.ProjectList, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return list, nil
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*models.ProjectList, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	seen := make(map[int]bool, len(f.Projects))
	list := &models.ProjectList{Projects: make([]models.Project, 0, len(f.Projects))}
	for i, fp := range f.Projects {
		if seen[fp.ID] {
			return nil, fmt.Errorf("project %d: %w", fp.ID, ErrDuplicateID)
		}
		seen[fp.ID] = true

		if strings.TrimSpace(fp.Title) == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrMissingTitle)
		}

		p, err := fp.toModel()
		if err != nil {
			return nil, fmt.Errorf("project %d: %w", fp.ID, err)
		}
		list.Projects = append(list.Projects, p)
	}
	return list, nil
}

func (fp fileProject) toModel() (models.Project, error) {
	p := models.Project{
		ID:              fp.ID,
		Title:           fp.Title,
		Description:     fp.Description,
		FullDescription: strings.TrimSpace(fp.FullDescription),
		Technologies:    nonNil(fp.Technologies),
		Tags:            nonNil(fp.Tags),
	}

	switch {
	case fp.Icon != nil && fp.Image != nil:
		return models.Project{}, ErrAmbiguousPresentation
	case fp.Image != nil:
		p.Presentation = *fp.Image
	case fp.Icon != nil:
		icon := *fp.Icon
		if icon.Class == "" {
			icon.Class = models.DefaultIconClass
		}
		p.Presentation = icon
	default:
		p.Presentation = models.IconPresentation{Class: models.DefaultIconClass}
	}
	return p, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
