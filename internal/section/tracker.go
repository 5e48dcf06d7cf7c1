package section

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrSectionOutOfRange is returned by a strict Tracker when the scroll offset maps past either end.
var ErrSectionOutOfRange = errors.New("section index out of range")

// Policy decides what happens when a scroll offset maps outside [0, count-1].
type Policy int

const (
	PolicyClamp  Policy = iota // snap to the nearest valid section
	PolicyIgnore               // drop the scroll event
	PolicyStrict               // report ErrSectionOutOfRange
)

// ParsePolicy maps a config string to a Policy. Empty means clamp.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "clamp":
		return PolicyClamp, nil
	case "ignore":
		return PolicyIgnore, nil
	case "strict":
		return PolicyStrict, nil
	}
	return PolicyClamp, fmt.Errorf("section: unknown out-of-range policy %q", s)
}

func (p Policy) String() string {
	switch p {
	case PolicyClamp:
		return "clamp"
	case PolicyIgnore:
		return "ignore"
	case PolicyStrict:
		return "strict"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

const (
	// TurnDuration is the length of a transition turn in seconds.
	TurnDuration = 1
	// TurnEase mirrors gsap's power2.inOut.
	TurnEase = "quad-in-out"
)

// Tween is a rotation command issued on a section transition.
// Both tweens of one transition share StartAt.
type Tween struct {
	Section  int
	Axis     Axis
	Delta    float32
	Duration float32
	Ease     string
	StartAt  float64
}

// Animator starts rotation tweens. The Tracker only issues commands and never
// looks at how they are played back.
type Animator interface {
	StartRotationTween(Tween)
}

// Tracker maps a continuous scroll offset to the current section and turns
// the sections it leaves and enters.
type Tracker struct {
	count    int
	current  int
	policy   Policy
	animator Animator
}

// NewTracker returns a tracker over count sections, starting at section 0.
func NewTracker(count int, policy Policy, animator Animator) *Tracker {
	return &Tracker{count: count, policy: policy, animator: animator}
}

// Current returns the index computed by the last accepted scroll event.
func (t *Tracker) Current() int {
	return t.current
}

// maxIndex bounds Index so the int conversion stays defined for huge or
// infinite offsets.
const maxIndex = 1 << 30

// Index returns round(offset / viewportHeight), halves rounded away from zero.
// A non-positive height or a NaN offset maps to section 0. Results saturate at
// ±maxIndex.
func Index(offset, viewportHeight float32) int {
	if viewportHeight <= 0 || math32.IsNaN(offset) {
		return 0
	}
	r := math32.Round(offset / viewportHeight)
	switch {
	case r > maxIndex:
		return maxIndex
	case r < -maxIndex:
		return -maxIndex
	}
	return int(r)
}

// Scroll handles one scroll event at clock time now. It reports whether the
// current section changed.
func (t *Tracker) Scroll(offset, viewportHeight float32, now float64) (bool, error) {
	next := Index(offset, viewportHeight)
	if next < 0 || next >= t.count {
		switch t.policy {
		case PolicyIgnore:
			return false, nil
		case PolicyStrict:
			return false, fmt.Errorf("%w: %d not in [0, %d]", ErrSectionOutOfRange, next, t.count-1)
		default:
			next = max(0, min(next, t.count-1))
		}
	}
	if next == t.current {
		return false, nil
	}
	if t.animator != nil {
		t.animator.StartRotationTween(turn(t.current, now))
		t.animator.StartRotationTween(turn(next, now))
	}
	t.current = next
	return true, nil
}

func turn(index int, startAt float64) Tween {
	return Tween{
		Section:  index,
		Axis:     AxisY,
		Delta:    math32.Pi,
		Duration: TurnDuration,
		Ease:     TurnEase,
		StartAt:  startAt,
	}
}
