package services

import (
	"math/rand/v2"
	"time"

	"tperticaro.dev/internal/models"
)

// DefaultParticleCount is the number of particles drawn behind the hero section.
const DefaultParticleCount = 50

// SpawnParticles draws n particles with independently randomised size,
// opacity, position and animation timing.
func SpawnParticles(rng *rand.Rand, n int) []models.Particle {
	if n <= 0 {
		return nil
	}
	particles := make([]models.Particle, n)
	for i := range particles {
		particles[i] = models.Particle{
			Width:    rng.Float64()*4 + 2,
			Height:   rng.Float64()*4 + 2,
			Opacity:  rng.Float64()*0.3 + 0.1,
			Left:     rng.Float64() * 100,
			Top:      rng.Float64() * 100,
			Duration: seconds(rng.Float64()*10 + 5),
			Delay:    seconds(rng.Float64() * 5),
		}
	}
	return particles
}

// NewRand returns a PCG source. A zero seed picks a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func seconds(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}
