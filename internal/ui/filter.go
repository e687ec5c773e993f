package ui

import "tperticaro.dev/internal/models"

// FilterBar tracks which filter button is active. Exactly one value is active.
type FilterBar struct {
	values []string
	active string
}

// NewFilterBar returns a bar with models.FilterAll first, followed by tags.
func NewFilterBar(tags []string) *FilterBar {
	values := make([]string, 0, len(tags)+1)
	values = append(values, models.FilterAll)
	for _, t := range tags {
		if t != models.FilterAll {
			values = append(values, t)
		}
	}
	return &FilterBar{values: values, active: models.FilterAll}
}

// Select marks v active. Values without a button are still accepted as the
// current filter; no button is then shown active.
func (f *FilterBar) Select(v string) {
	f.active = v
}

// Active returns the current filter value.
func (f *FilterBar) Active() string { return f.active }

// Values returns the filter values in button order.
func (f *FilterBar) Values() []string { return f.values }
