package pairs

// Flip animations are presentation only. They start when the turn
// controller fires a FlipEffect and finish on their own a few ticks
// later; the card's state transition has already happened by then and
// never waits for them.

// flipAnim is one in-flight card flip.
type flipAnim struct {
	effect FlipEffect
	ticks  int // Ticks elapsed since the flip started
	total  int // Duration in ticks
}

// flipAnimator tracks per-card flip animations. A new flip on a card
// replaces whatever was still playing there.
type flipAnimator struct {
	anims    map[int]*flipAnim
	duration int
}

func newFlipAnimator(durationTicks int) *flipAnimator {
	if durationTicks < 1 {
		durationTicks = 1
	}
	return &flipAnimator{
		anims:    make(map[int]*flipAnim),
		duration: durationTicks,
	}
}

// Start begins an animation for the card at index.
func (fa *flipAnimator) Start(index int, effect FlipEffect) {
	fa.anims[index] = &flipAnim{effect: effect, total: fa.duration}
}

// Update advances all animations by one tick, discarding finished ones.
func (fa *flipAnimator) Update() {
	for index, a := range fa.anims {
		a.ticks++
		if a.ticks >= a.total {
			delete(fa.anims, index)
		}
	}
}

// Reset drops all in-flight animations (board redeal).
func (fa *flipAnimator) Reset() {
	fa.anims = make(map[int]*flipAnim)
}

// Progress returns the animation progress for a card in [0,1), and
// whether an animation is playing there at all.
func (fa *flipAnimator) Progress(index int) (float64, bool) {
	a, ok := fa.anims[index]
	if !ok {
		return 0, false
	}
	return float64(a.ticks) / float64(a.total), true
}

// Effect returns the effect being animated for a card, if any.
func (fa *flipAnimator) Effect(index int) (FlipEffect, bool) {
	a, ok := fa.anims[index]
	if !ok {
		return 0, false
	}
	return a.effect, true
}

// WidthScale returns the horizontal scale of a flipping card: it collapses
// to an edge at the halfway point and expands back, reading as a flip in a
// character grid. Cards without an animation render at full width.
func (fa *flipAnimator) WidthScale(index int) float64 {
	p, ok := fa.Progress(index)
	if !ok {
		return 1.0
	}
	// 1 -> 0 over the first half, 0 -> 1 over the second.
	if p < 0.5 {
		return 1.0 - 2*p
	}
	return 2*p - 1.0
}

// ShowsBack reports whether the flip is still displaying the pre-transition
// face (the first half of the animation).
func (fa *flipAnimator) ShowsBack(index int) bool {
	p, ok := fa.Progress(index)
	return ok && p < 0.5
}
