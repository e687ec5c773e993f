package models

import "encoding/json"

// FilterAll is the filter value that selects every project.
const FilterAll = "all"

// DefaultIconClass is used when a project declares no presentation.
const DefaultIconClass = "fa-solid fa-diagram-project"

// Project represents a portfolio project
type Project struct {
	ID              int
	Title           string
	Description     string
	FullDescription string
	Technologies    []string
	Tags            []string
	Presentation    Presentation
}

// HasTag reports whether the project is tagged with tag.
func (p *Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Presentation is either an IconPresentation or an ImagePresentation.
type Presentation interface {
	presentationKind() string
}

// IconPresentation draws the project as an icon font glyph.
type IconPresentation struct {
	Class      string `json:"class" yaml:"class"`
	Color      string `json:"color,omitempty" yaml:"color"`
	Background string `json:"background,omitempty" yaml:"background"`
}

func (IconPresentation) presentationKind() string { return "icon" }

// ImagePresentation draws the project with a picture.
type ImagePresentation struct {
	Src string `json:"src" yaml:"src"`
	Alt string `json:"alt,omitempty" yaml:"alt"`
}

func (ImagePresentation) presentationKind() string { return "image" }

type projectJSON struct {
	ID              int              `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	FullDescription string           `json:"full_description"`
	Technologies    []string         `json:"technologies"`
	Tags            []string         `json:"tags"`
	Presentation    presentationJSON `json:"presentation"`
}

type presentationJSON struct {
	Kind       string `json:"kind"`
	Class      string `json:"class,omitempty"`
	Color      string `json:"color,omitempty"`
	Background string `json:"background,omitempty"`
	Src        string `json:"src,omitempty"`
	Alt        string `json:"alt,omitempty"`
}

// MarshalJSON flattens the presentation variant into a kind-tagged object.
func (p Project) MarshalJSON() ([]byte, error) {
	out := projectJSON{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		FullDescription: p.FullDescription,
		Technologies:    p.Technologies,
		Tags:            p.Tags,
	}
	switch pr := p.Presentation.(type) {
	case ImagePresentation:
		out.Presentation = presentationJSON{Kind: pr.presentationKind(), Src: pr.Src, Alt: pr.Alt}
	case IconPresentation:
		out.Presentation = presentationJSON{Kind: pr.presentationKind(), Class: pr.Class, Color: pr.Color, Background: pr.Background}
	default:
		out.Presentation = presentationJSON{Kind: "icon", Class: DefaultIconClass}
	}
	if out.Technologies == nil {
		out.Technologies = []string{}
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return json.Marshal(out)
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}

// Refs returns pointers into the list, in catalog order.
func (l *ProjectList) Refs() []*Project {
	refs := make([]*Project, len(l.Projects))
	for i := range l.Projects {
		refs[i] = &l.Projects[i]
	}
	return refs
}
