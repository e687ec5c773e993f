package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpawnParticlesRanges(t *testing.T) {
	particles := SpawnParticles(NewRand(7), DefaultParticleCount)
	assert.Len(t, particles, DefaultParticleCount)

	for _, p := range particles {
		assert.GreaterOrEqual(t, p.Width, 2.0)
		assert.Less(t, p.Width, 6.0)
		assert.GreaterOrEqual(t, p.Height, 2.0)
		assert.Less(t, p.Height, 6.0)
		assert.GreaterOrEqual(t, p.Opacity, 0.1)
		assert.Less(t, p.Opacity, 0.4)
		assert.GreaterOrEqual(t, p.Left, 0.0)
		assert.Less(t, p.Left, 100.0)
		assert.GreaterOrEqual(t, p.Top, 0.0)
		assert.Less(t, p.Top, 100.0)
		assert.GreaterOrEqual(t, p.Duration, 5*time.Second)
		assert.Less(t, p.Duration, 15*time.Second)
		assert.GreaterOrEqual(t, p.Delay, time.Duration(0))
		assert.Less(t, p.Delay, 5*time.Second)
	}
}

func TestSpawnParticlesSeeded(t *testing.T) {
	a := SpawnParticles(NewRand(42), 5)
	b := SpawnParticles(NewRand(42), 5)
	assert.Equal(t, a, b)
}

func TestSpawnParticlesNonPositive(t *testing.T) {
	assert.Empty(t, SpawnParticles(NewRand(1), 0))
	assert.Empty(t, SpawnParticles(NewRand(1), -3))
}
