package flappy

import (
	"time"

	"github.com/vovakirdan/cactusflap/internal/config"
)

// Cloud is a decorative background puff drifting left at its own speed.
type Cloud struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// CloudField spawns clouds on a simulated clock so runs replay exactly.
type CloudField struct {
	clouds    []Cloud
	rng       Source
	cfg       *config.FlappyConfig
	elapsed   time.Duration
	lastSpawn time.Duration
	spawned   bool
}

// NewCloudField creates an empty sky.
func NewCloudField(rng Source, cfg *config.FlappyConfig) *CloudField {
	return &CloudField{
		clouds: make([]Cloud, 0, 8),
		rng:    rng,
		cfg:    cfg,
	}
}

// Reset clears the sky and restarts the spawn clock.
func (cf *CloudField) Reset() {
	cf.clouds = cf.clouds[:0]
	cf.elapsed = 0
	cf.lastSpawn = 0
	cf.spawned = false
}

// Update advances the clock by dt, spawns a cloud if the interval has
// elapsed, then moves and culls.
func (cf *CloudField) Update(dt time.Duration) {
	cf.elapsed += dt
	if !cf.spawned || cf.elapsed-cf.lastSpawn > cf.cfg.Clouds.SpawnInterval {
		cf.spawn()
		cf.lastSpawn = cf.elapsed
		cf.spawned = true
	}

	kept := cf.clouds[:0]
	for _, c := range cf.clouds {
		c.X -= c.Speed
		if c.X+c.Size > 0 {
			kept = append(kept, c)
		}
	}
	cf.clouds = kept
}

func (cf *CloudField) spawn() {
	c := cf.cfg.Clouds
	cf.clouds = append(cf.clouds, Cloud{
		X:     cf.cfg.Canvas.Width,
		Y:     uniform(cf.rng, 0, cf.cfg.Canvas.Height*c.MaxYFraction),
		Size:  uniform(cf.rng, c.MinSize, c.MaxSize),
		Speed: uniform(cf.rng, c.MinSpeed, c.MaxSpeed),
	})
}

// Clouds returns the live clouds, oldest first.
func (cf *CloudField) Clouds() []Cloud {
	return cf.clouds
}
