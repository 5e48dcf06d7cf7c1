package portfolio

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scroll-portfolio/internal/layout"
	"scroll-portfolio/internal/section"
)

func newTestPortfolio(t *testing.T, clamp bool, policy section.Policy) *Portfolio {
	t.Helper()
	p := New(layout.Default(), Options{
		Policy:      policy,
		ClampScroll: clamp,
		Viewport:    Viewport{Width: 1600, Height: 1000, PixelRatio: 1},
	})
	require.Len(t, p.Sections(), 8)
	return p
}

func TestScrollToSectionMapping(t *testing.T) {
	p := newTestPortfolio(t, true, section.PolicyClamp)
	for _, c := range []struct {
		offset float32
		want   int
	}{
		{0, 0}, {1499, 1}, {1500, 2}, {2400, 2}, {6600, 7}, {0, 0},
	} {
		require.NoError(t, p.Dispatch(ScrollChanged{Offset: c.offset}))
		assert.Equal(t, c.want, p.Current(), "offset %v", c.offset)
	}
}

func TestOverScroll(t *testing.T) {
	p := newTestPortfolio(t, true, section.PolicyClamp)
	require.NoError(t, p.Dispatch(ScrollChanged{Offset: 8000}))
	assert.Equal(t, float32(7000), p.ScrollOffset(), "page ends at the last section")
	assert.Equal(t, 7, p.Current())

	p = newTestPortfolio(t, false, section.PolicyClamp)
	require.NoError(t, p.Dispatch(ScrollChanged{Offset: 8000}))
	assert.Equal(t, float32(8000), p.ScrollOffset())
	assert.Equal(t, 7, p.Current(), "index 8 is clamped to the last section")

	p = newTestPortfolio(t, false, section.PolicyStrict)
	err := p.Dispatch(ScrollChanged{Offset: 8000})
	assert.ErrorIs(t, err, section.ErrSectionOutOfRange)
	assert.Equal(t, 0, p.Current())
}

func TestScrollByAndTo(t *testing.T) {
	p := newTestPortfolio(t, true, section.PolicyClamp)
	require.NoError(t, p.Dispatch(ScrollBy{Delta: -300}))
	assert.Zero(t, p.ScrollOffset())
	require.NoError(t, p.Dispatch(ScrollBy{Delta: 600}))
	assert.Equal(t, 1, p.Current())
	require.NoError(t, p.Dispatch(ScrollTo{Index: 5}))
	assert.Equal(t, float32(5000), p.ScrollOffset())
	assert.Equal(t, 5, p.Current())
	require.NoError(t, p.Dispatch(ScrollTo{Index: 42}))
	assert.Equal(t, 7, p.Current())
}

func TestTransitionTurnsBothSections(t *testing.T) {
	p := newTestPortfolio(t, true, section.PolicyClamp)
	start0 := p.Section(0).Rotation[1]
	start1 := p.Section(1).Rotation[1]

	require.NoError(t, p.Dispatch(ScrollChanged{Offset: 1000}))
	assert.Equal(t, 2, p.Tweens())

	require.NoError(t, p.Dispatch(FrameTick{Delta: 0.5}))
	half0 := p.Section(0).Rotation[1] - start0
	half1 := p.Section(1).Rotation[1] - start1
	assert.InDelta(t, math32.Pi/2, half0, 1e-4)
	assert.InDelta(t, half0, half1, 1e-6, "both turns started together")

	for i := 0; i < 10; i++ {
		require.NoError(t, p.Dispatch(FrameTick{Delta: 0.1}))
	}
	assert.InDelta(t, start0+math32.Pi, p.Section(0).Rotation[1], 1e-5)
	assert.InDelta(t, start1+math32.Pi, p.Section(1).Rotation[1], 1e-5)
	assert.Zero(t, p.Tweens())
	assert.Equal(t, p.Section(2).Rotation[1], float32(math32.Pi), "untouched section keeps its pose")
}

func TestRepeatedScrollInsideSectionIsQuiet(t *testing.T) {
	p := newTestPortfolio(t, true, section.PolicyClamp)
	for _, off := range []float32{100, 200, 300, 400, 499} {
		require.NoError(t, p.Dispatch(ScrollChanged{Offset: off}))
	}
	assert.Zero(t, p.Tweens())
}

func TestPointerCorner(t *testing.T) {
	p := newTestPortfolio(t, true, section.PolicyClamp)
	require.NoError(t, p.Dispatch(Resized{Width: 1920, Height: 1080, PixelRatio: 2}))
	require.NoError(t, p.Dispatch(PointerMoved{X: 960, Y: 540}))
	require.NoError(t, p.Dispatch(PointerMoved{X: 0, Y: 0}))
	x, y := p.Pointer()
	assert.InDelta(t, -0.5, x, 1e-6)
	assert.InDelta(t, -0.5, y, 1e-6)
	assert.Equal(t, Viewport{Width: 1920, Height: 1080, PixelRatio: 2}, p.Viewport())
}

func TestParallaxSettlesWithoutOvershoot(t *testing.T) {
	p := newTestPortfolio(t, true, section.PolicyClamp)
	// bottom-right corner: target (0.25, -0.25)
	require.NoError(t, p.Dispatch(PointerMoved{X: 1600, Y: 1000}))

	prevX, prevY := float32(0), float32(0)
	for i := 0; i < 60; i++ {
		require.NoError(t, p.Dispatch(FrameTick{Delta: 0.0166}))
		r := p.Rig()
		require.GreaterOrEqual(t, r.X, prevX)
		require.LessOrEqual(t, r.X, float32(0.25))
		require.LessOrEqual(t, r.Y, prevY)
		require.GreaterOrEqual(t, r.Y, float32(-0.25))
		prevX, prevY = r.X, r.Y
	}
	assert.InDelta(t, 0.25, prevX, 2e-3)
	assert.InDelta(t, -0.25, prevY, 2e-3)
}

func TestCameraFollowsScroll(t *testing.T) {
	p := newTestPortfolio(t, true, section.PolicyClamp)
	require.NoError(t, p.Dispatch(ScrollChanged{Offset: 1500}))
	require.NoError(t, p.Dispatch(FrameTick{Delta: 0.016}))

	fs := p.Snapshot(8)
	assert.InDelta(t, -6, fs.Camera.Local[1], 1e-5)
	assert.Equal(t, float32(8), fs.Camera.Local[2])
	assert.Equal(t, fs.Camera.Rig[1]+fs.Camera.Local[1], fs.Camera.Position[1])
	assert.Equal(t, 2, fs.Current)
	assert.Equal(t, uint64(1), fs.Frame)
	require.Len(t, fs.Sections, 8)
	assert.Equal(t, section.KindTorus, fs.Sections[3].Kind)
}

func TestResizeReevaluatesSection(t *testing.T) {
	p := newTestPortfolio(t, true, section.PolicyClamp)
	require.NoError(t, p.Dispatch(ScrollChanged{Offset: 3000}))
	assert.Equal(t, 3, p.Current())

	require.NoError(t, p.Dispatch(Resized{Width: 800, Height: 500, PixelRatio: 1}))
	assert.Equal(t, float32(3000), p.ScrollOffset())
	assert.Equal(t, 6, p.Current())

	require.NoError(t, p.Dispatch(Resized{Width: 800, Height: 200, PixelRatio: 1}))
	assert.Equal(t, float32(1400), p.ScrollOffset(), "offset re-clamped to the shorter page")
	assert.Equal(t, 7, p.Current())
}

func TestAmbientSpin(t *testing.T) {
	p := newTestPortfolio(t, true, section.PolicyClamp)
	require.NoError(t, p.Dispatch(FrameTick{Delta: 2}))
	assert.InDelta(t, 0.3, p.Section(3).Rotation[0], 1e-6)
	assert.InDelta(t, 0.5, p.Section(3).Rotation[1], 1e-6)
	assert.InDelta(t, 0.5, p.Section(7).Rotation[0], 1e-6)
	assert.InDelta(t, 0.2, p.Section(7).Rotation[2], 1e-6)
	assert.Zero(t, p.Section(0).Rotation[0])
	assert.InDelta(t, 2, p.Clock(), 1e-9)
}

type bogus struct{}

func (bogus) isEvent() {}

func TestUnknownEvent(t *testing.T) {
	p := newTestPortfolio(t, true, section.PolicyClamp)
	assert.Error(t, p.Dispatch(bogus{}))
}
