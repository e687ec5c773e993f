package models

import "time"

// Particle is one decorative floating dot. Sizes are pixels, positions percent.
type Particle struct {
	Width    float64
	Height   float64
	Opacity  float64
	Left     float64
	Top      float64
	Duration time.Duration
	Delay    time.Duration
}
