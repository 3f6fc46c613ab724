package flappy

import (
	"testing"
	"time"

	"github.com/vovakirdan/cactusflap/internal/config"
	"github.com/vovakirdan/cactusflap/internal/core"
)

func newTestPipes(src Source) (*PipeManager, *config.FlappyConfig) {
	cfg := config.DefaultFlappyConfig()
	return NewPipeManager(src, &cfg, config.NewDifficultyManager(cfg.Difficulty)), &cfg
}

func TestUniformDegenerateRange(t *testing.T) {
	src := &seqSource{vals: []float64{0.7}}

	if got := uniform(src, 5, 5); got != 5 {
		t.Errorf("uniform(5, 5) = %v, expected 5", got)
	}
	if got := uniform(src, 10, 20); got != 17 {
		t.Errorf("uniform(10, 20) with 0.7 = %v, expected 17", got)
	}
}

func TestPipeGapRange(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 0.999999} {
		pm, cfg := newTestPipes(&seqSource{vals: []float64{v}})
		pm.Update(0, 0, 0)

		p := pm.Pipes()[0]
		if p.TopHeight < cfg.Pipes.MinHeight || p.TopHeight > cfg.Pipes.MaxHeight {
			t.Errorf("top height %v outside [%v, %v]", p.TopHeight, cfg.Pipes.MinHeight, cfg.Pipes.MaxHeight)
		}
		if p.BottomY != p.TopHeight+cfg.Pipes.Gap {
			t.Errorf("bottom %v, expected top %v + gap %v", p.BottomY, p.TopHeight, cfg.Pipes.Gap)
		}
	}
}

func TestPipeFixedHeight(t *testing.T) {
	pm, cfg := newTestPipes(&seqSource{vals: []float64{0.9}})
	cfg.Pipes.MinHeight = 120
	cfg.Pipes.MaxHeight = 120

	pm.Update(0, 0, 0)

	if got := pm.Pipes()[0].TopHeight; got != 120 {
		t.Errorf("top height = %v, expected 120 for a degenerate range", got)
	}
}

func TestPipeSpawnPolicy(t *testing.T) {
	pm, _ := newTestPipes(&seqSource{vals: []float64{0.5}})

	pm.Update(0, 0, 0)
	if n := len(pm.Pipes()); n != 1 {
		t.Fatalf("first update should spawn one pipe, got %d", n)
	}
	if x := pm.Pipes()[0].X; x != 398 {
		t.Errorf("new pipe x = %v, expected spawned at 400 then moved to 398", x)
	}

	// The last pipe must travel past 200 before the next spawns
	for i := 1; i < 101; i++ {
		pm.Update(0, 0, 0)
	}
	if n := len(pm.Pipes()); n != 1 {
		t.Fatalf("after 101 updates expected 1 pipe, got %d", n)
	}
	pm.Update(0, 0, 0)
	if n := len(pm.Pipes()); n != 2 {
		t.Fatalf("after 102 updates expected 2 pipes, got %d", n)
	}
}

func TestPipeCulling(t *testing.T) {
	pm, _ := newTestPipes(&seqSource{vals: []float64{0.5}})
	pm.pipes = append(pm.pipes, Pipe{X: -70, TopHeight: 100, BottomY: 250})

	pm.Update(0, 0, 0)

	for _, p := range pm.Pipes() {
		if p.X+60 <= 0 {
			t.Errorf("pipe at x=%v should have been culled", p.X)
		}
	}
	if n := len(pm.Pipes()); n != 1 {
		t.Errorf("expected only the freshly spawned pipe, got %d", n)
	}
}

func TestPipeScoring(t *testing.T) {
	pm, _ := newTestPipes(&seqSource{vals: []float64{0.5}})
	pm.pipes = append(pm.pipes, Pipe{X: 150, TopHeight: 100, BottomY: 250})

	tests := []struct {
		name     string
		expected int
	}{
		{"right edge still ahead of bird", 0},
		{"right edge passes bird", 1},
		{"already passed", 0},
	}

	// Bird at 207: right edge goes 208, 206, 204
	for _, tc := range tests {
		if got := pm.Update(207, 0, 0); got != tc.expected {
			t.Errorf("%s: passed = %d, expected %d", tc.name, got, tc.expected)
		}
	}
}

func TestPipeNext(t *testing.T) {
	pm, _ := newTestPipes(&seqSource{vals: []float64{0.5}})
	if _, ok := pm.Next(); ok {
		t.Error("empty manager should have no next pipe")
	}

	pm.pipes = []Pipe{{X: 10, Passed: true}, {X: 250}}
	p, ok := pm.Next()
	if !ok || p.X != 250 {
		t.Errorf("Next() = %+v, %v; expected the unpassed pipe at 250", p, ok)
	}
}

func TestCloudSpawnClock(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cf := NewCloudField(&seqSource{vals: []float64{0.5}}, &cfg)
	dt := cfg.FrameInterval()

	cf.Update(dt)
	if n := len(cf.Clouds()); n != 1 {
		t.Fatalf("first frame should spawn a cloud, got %d", n)
	}

	c := cf.Clouds()[0]
	if c.Y != 150 || c.Size != 45 || c.Speed != 1 {
		t.Errorf("cloud = %+v, expected y=150 size=45 speed=1", c)
	}
	if c.X != 399 {
		t.Errorf("cloud x = %v, expected spawned at 400 then moved to 399", c.X)
	}

	// 3s at 60 fps is 180 frames; the gate is strict
	for i := 1; i < 181; i++ {
		cf.Update(dt)
	}
	if n := len(cf.Clouds()); n != 1 {
		t.Fatalf("expected 1 cloud before the interval elapsed, got %d", n)
	}
	cf.Update(dt)
	if n := len(cf.Clouds()); n != 2 {
		t.Fatalf("expected a second cloud once 3s elapsed, got %d", n)
	}

	cf.Reset()
	if len(cf.Clouds()) != 0 {
		t.Error("reset should clear the sky")
	}
	cf.Update(dt)
	if n := len(cf.Clouds()); n != 1 {
		t.Errorf("first frame after reset should spawn again, got %d clouds", n)
	}
}

func TestCloudCulling(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Clouds.SpawnInterval = time.Hour
	cf := NewCloudField(&seqSource{vals: []float64{0.5}}, &cfg)
	cf.Update(time.Millisecond)
	cf.clouds = append(cf.clouds, Cloud{X: -44.5, Size: 45, Speed: 1})

	cf.Update(time.Millisecond)

	if n := len(cf.Clouds()); n != 1 {
		t.Errorf("cloud past the left edge should be culled, %d clouds left", n)
	}
}

func TestCollides(t *testing.T) {
	pipe := Pipe{X: 190, TopHeight: 200, BottomY: 350}
	tests := []struct {
		name     string
		bird     Bird
		pipes    []Pipe
		expected bool
	}{
		{"open sky", Bird{X: 200, Y: 300, Radius: 17}, nil, false},
		{"on the ground", Bird{X: 200, Y: 495, Radius: 17}, nil, true},
		{"touching ground", Bird{X: 200, Y: 483, Radius: 17}, nil, true},
		{"just above ground", Bird{X: 200, Y: 482.9, Radius: 17}, nil, false},
		{"inside gap", Bird{X: 200, Y: 275, Radius: 17}, []Pipe{pipe}, false},
		{"hits top segment", Bird{X: 200, Y: 210, Radius: 17}, []Pipe{pipe}, true},
		{"hits bottom segment", Bird{X: 200, Y: 340, Radius: 17}, []Pipe{pipe}, true},
		{"grazes gap edges", Bird{X: 200, Y: 217, Radius: 17}, []Pipe{{X: 190, TopHeight: 200, BottomY: 234}}, false},
		{"pipe ahead", Bird{X: 200, Y: 100, Radius: 17}, []Pipe{{X: 217, TopHeight: 200, BottomY: 350}}, false},
		{"pipe behind", Bird{X: 200, Y: 100, Radius: 17}, []Pipe{{X: 123, TopHeight: 200, BottomY: 350}}, false},
		{"pipe edge overlaps", Bird{X: 200, Y: 100, Radius: 17}, []Pipe{{X: 216, TopHeight: 200, BottomY: 350}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(tc.bird, tc.pipes, 60, 500); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPipeSegments(t *testing.T) {
	p := Pipe{X: 120, TopHeight: 175, BottomY: 325}

	top := p.TopRect(60)
	if top != (core.RectF{X: 120, Y: 0, W: 60, H: 175}) {
		t.Errorf("TopRect = %+v, expected canvas top down to the gap", top)
	}
	bottom := p.BottomRect(60, 600)
	if bottom != (core.RectF{X: 120, Y: 325, W: 60, H: 275}) {
		t.Errorf("BottomRect = %+v, expected gap bottom down to 600", bottom)
	}
}
