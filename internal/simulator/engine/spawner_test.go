package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/live-match-feed-poc/internal/simulator/registry"
	"github.com/radieske/live-match-feed-poc/pkg/contracts/events"
)

func TestSpawnBatch_CreatesRequestedGames(t *testing.T) {
	reg := registry.New(&stubRand{ints: []int{0, 1, 2, 3, 4, 5}, floats: []float64{0.25, 0.5, 0.75}})
	s := &Spawner{Registry: reg, Rng: &stubRand{floats: []float64{0.5}}, Log: zap.NewNop()}

	before := time.Now()
	created := s.SpawnBatch(3, 5*time.Second, 20*time.Second)

	require.Len(t, created, 3)
	assert.Equal(t, 3, reg.Len())

	for _, g := range created {
		assert.Equal(t, events.StatusScheduled, g.Status)
		// início dentro da faixa pedida
		assert.True(t, g.StartTime.After(before.Add(5*time.Second-time.Second)))
		assert.True(t, g.StartTime.Before(before.Add(20*time.Second+time.Second)))
	}
}

func TestSpawnBatch_DelayRangeBounds(t *testing.T) {
	reg := registry.New(&stubRand{ints: []int{0, 1, 2, 3}, floats: []float64{0.5}})

	before := time.Now()
	// Float64 = 0 cai no mínimo da faixa
	s := &Spawner{Registry: reg, Rng: &stubRand{floats: []float64{0}}, Log: zap.NewNop()}
	low := s.SpawnBatch(1, 15*time.Second, 45*time.Second)[0]
	assert.WithinDuration(t, before.Add(15*time.Second), low.StartTime, 2*time.Second)

	// Float64 perto de 1 encosta no máximo
	s.Rng = &stubRand{floats: []float64{0.999}}
	high := s.SpawnBatch(1, 15*time.Second, 45*time.Second)[0]
	assert.WithinDuration(t, before.Add(45*time.Second), high.StartTime, 2*time.Second)
}
