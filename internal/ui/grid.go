package ui

import "tperticaro.dev/internal/models"

// Grid is the set of currently rendered project cards. Every Render replaces
// the whole set and starts a new generation; cards of older generations no
// longer resolve.
type Grid struct {
	generation uint64
	cards      []*models.Project
}

// Render replaces the rendered set and returns its generation.
func (g *Grid) Render(projects []*models.Project) uint64 {
	cards := make([]*models.Project, len(projects))
	copy(cards, projects)
	g.cards = cards
	g.generation++
	return g.generation
}

// Card returns the project behind card index of generation gen.
func (g *Grid) Card(gen uint64, index int) (*models.Project, bool) {
	if gen != g.generation || index < 0 || index >= len(g.cards) {
		return nil, false
	}
	return g.cards[index], true
}

// Generation returns the current generation.
func (g *Grid) Generation() uint64 { return g.generation }

// Cards returns the rendered projects in display order.
func (g *Grid) Cards() []*models.Project { return g.cards }
