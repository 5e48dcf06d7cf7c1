// Package portfolio holds the scroll experience's state and per-frame update:
// scroll position, section tracking, pointer parallax, tweens and ambient spin.
// It never touches the window or GPU; the scene package renders FrameState.
package portfolio

import (
	"fmt"

	"scroll-portfolio/internal/layout"
	"scroll-portfolio/internal/pointer"
	"scroll-portfolio/internal/rig"
	"scroll-portfolio/internal/section"
	"scroll-portfolio/internal/tween"
)

// Options configure a Portfolio beyond what the layout says.
type Options struct {
	Policy section.Policy
	// ClampScroll keeps the offset inside the page. Turning it off lets
	// ScrollChanged report any offset, which is how over-scroll reaches the
	// section tracker's out-of-range policy.
	ClampScroll bool
	Viewport    Viewport
}

// Portfolio is the whole mutable state of the experience.
type Portfolio struct {
	sections []*section.Section
	spacing  float32

	tracker *section.Tracker
	tweens  *tween.Engine
	pointer pointer.Tracker
	rig     *rig.Rig

	scroll   Scroll
	viewport Viewport
	clamp    bool
	clock    float64
	frames   uint64
}

// New builds the sections from l and puts the camera at the top of the page.
func New(l *layout.Layout, opts Options) *Portfolio {
	p := &Portfolio{
		sections: l.Build(),
		spacing:  l.Spacing,
		tweens:   tween.NewEngine(),
		rig:      rig.New(l.Camera.Parallax, l.Camera.Damping),
		viewport: opts.Viewport,
		clamp:    opts.ClampScroll,
	}
	p.tracker = section.NewTracker(len(p.sections), opts.Policy, p)
	return p
}

// StartRotationTween implements section.Animator on top of the tween engine.
func (p *Portfolio) StartRotationTween(tw section.Tween) {
	if tw.Section < 0 || tw.Section >= len(p.sections) {
		return
	}
	ease, _ := tween.ParseEase(tw.Ease)
	target := p.sections[tw.Section].RotationOf(tw.Axis)
	p.tweens.To(target, tw.Delta, tw.Duration, ease, tw.StartAt)
}

// Dispatch applies one event. Errors come from the section tracker's strict
// policy; the state stays consistent either way.
func (p *Portfolio) Dispatch(ev Event) error {
	switch ev := ev.(type) {
	case ScrollChanged:
		return p.setScroll(ev.Offset)
	case ScrollBy:
		return p.setScroll(p.scroll.Offset + ev.Delta)
	case ScrollTo:
		return p.setScroll(float32(ev.Index * p.viewport.Height))
	case PointerMoved:
		p.pointer.Move(ev.X, ev.Y, float32(p.viewport.Width), float32(p.viewport.Height))
	case Resized:
		p.viewport = Viewport{Width: ev.Width, Height: ev.Height, PixelRatio: ev.PixelRatio}
		return p.setScroll(p.scroll.Offset)
	case FrameTick:
		p.frame(ev.Delta)
	default:
		return fmt.Errorf("portfolio: unknown event %T", ev)
	}
	return nil
}

func (p *Portfolio) setScroll(offset float32) error {
	if p.clamp {
		offset = clampOffset(offset, len(p.sections), p.viewport.Height)
	}
	p.scroll.Offset = offset
	_, err := p.tracker.Scroll(offset, float32(p.viewport.Height), p.clock)
	return err
}

// frame runs one render-loop step of dt seconds.
func (p *Portfolio) frame(dt float32) {
	if dt < 0 {
		dt = 0
	}
	p.clock += float64(dt)
	p.frames++

	for _, s := range p.sections {
		if s.Spinning() {
			s.Advance(dt)
		}
	}
	p.tweens.Advance(p.clock)

	p.rig.Scroll(p.scroll.Offset, float32(p.viewport.Height), p.spacing)
	px, py := p.pointer.Offset()
	p.rig.Follow(px, py, dt)
}

// Section returns section i.
func (p *Portfolio) Section(i int) *section.Section {
	return p.sections[i]
}

// Sections returns all sections in index order.
func (p *Portfolio) Sections() []*section.Section {
	return p.sections
}

// Current returns the current section index.
func (p *Portfolio) Current() int {
	return p.tracker.Current()
}

// ScrollOffset returns the scroll offset in pixels.
func (p *Portfolio) ScrollOffset() float32 {
	return p.scroll.Offset
}

// Viewport returns the last known viewport.
func (p *Portfolio) Viewport() Viewport {
	return p.viewport
}

// Pointer returns the normalized pointer offset.
func (p *Portfolio) Pointer() (x, y float32) {
	return p.pointer.Offset()
}

// Clock returns the seconds accumulated by FrameTick events.
func (p *Portfolio) Clock() float64 {
	return p.clock
}

// Tweens returns the number of running or scheduled tweens.
func (p *Portfolio) Tweens() int {
	return p.tweens.Active()
}

// Rig returns the camera rig.
func (p *Portfolio) Rig() *rig.Rig {
	return p.rig
}
