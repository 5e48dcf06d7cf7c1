// Package tween plays relative property animations ("+= delta over d seconds")
// against float32 targets, driven by an external clock.
package tween

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gen2brain/raylib-go/easings"
)

// Ease is a Penner easing function: t elapsed, b start, c change, d duration.
type Ease func(t, b, c, d float32) float32

var eases = map[string]Ease{
	"linear":       easings.LinearNone,
	"quad-in-out":  easings.QuadInOut,
	"cubic-in-out": easings.CubicInOut,
	"sine-in-out":  easings.SineInOut,
}

// ParseEase looks up an ease by name. Unknown names return linear and an error.
func ParseEase(name string) (Ease, error) {
	if e, ok := eases[name]; ok {
		return e, nil
	}
	return easings.LinearNone, fmt.Errorf("tween: unknown ease %q (want one of %s)", name, strings.Join(EaseNames(), ", "))
}

// EaseNames lists the supported ease names in sorted order.
func EaseNames() []string {
	names := make([]string, 0, len(eases))
	for name := range eases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type tween struct {
	target   *float32
	delta    float32
	duration float32
	ease     Ease
	startAt  float64

	started  bool
	from, to float32
}

// Engine owns the running tweens. At most one tween drives a target at a time.
type Engine struct {
	tweens []*tween
}

// NewEngine returns an engine with nothing scheduled.
func NewEngine() *Engine {
	return &Engine{}
}

// To schedules target += delta over duration seconds starting at clock time
// startAt. The start value is read when the tween first becomes active.
//
// A tween already driving target is superseded: its unplayed distance is
// folded into the new tween, so two quick half-turns still end a full turn
// away from where the first one started.
func (e *Engine) To(target *float32, delta, duration float32, ease Ease, startAt float64) {
	if ease == nil {
		ease = easings.LinearNone
	}
	for i, old := range e.tweens {
		if old.target != target {
			continue
		}
		if old.started {
			delta += old.to - *target
		} else {
			delta += old.delta
		}
		e.tweens = append(e.tweens[:i], e.tweens[i+1:]...)
		break
	}
	e.tweens = append(e.tweens, &tween{
		target:   target,
		delta:    delta,
		duration: duration,
		ease:     ease,
		startAt:  startAt,
	})
}

// Advance writes every active tween's value for clock time now and drops the
// ones that have finished.
func (e *Engine) Advance(now float64) {
	live := e.tweens[:0]
	for _, tw := range e.tweens {
		if now < tw.startAt {
			live = append(live, tw)
			continue
		}
		if !tw.started {
			tw.started = true
			tw.from = *tw.target
			tw.to = tw.from + tw.delta
		}
		elapsed := float32(now - tw.startAt)
		if elapsed >= tw.duration {
			*tw.target = tw.to
			continue
		}
		*tw.target = tw.ease(elapsed, tw.from, tw.to-tw.from, tw.duration)
		live = append(live, tw)
	}
	for i := len(live); i < len(e.tweens); i++ {
		e.tweens[i] = nil
	}
	e.tweens = live
}

// Active returns the number of scheduled or running tweens.
func (e *Engine) Active() int {
	return len(e.tweens)
}
