package flappy

// Collides reports whether the bird touches the ground or any pipe segment.
// The lower segment is tested down to the ground; below it the ground
// check already fired.
func Collides(b Bird, pipes []Pipe, pipeWidth, groundY float64) bool {
	if b.Y+b.Radius >= groundY {
		return true
	}

	box := b.Box()
	for _, p := range pipes {
		if box.Intersects(p.TopRect(pipeWidth)) || box.Intersects(p.BottomRect(pipeWidth, groundY)) {
			return true
		}
	}
	return false
}
