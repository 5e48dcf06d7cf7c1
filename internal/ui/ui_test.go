package ui

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fillCall struct {
	r Rect
	c color.RGBA
}

type recorder struct {
	w, h  int32
	fills []fillCall
	texts []string
}

func (r *recorder) ScreenSize() (int32, int32) { return r.w, r.h }

func (r *recorder) FillRect(rect Rect, c color.RGBA) { r.fills = append(r.fills, fillCall{rect, c}) }

func (r *recorder) StrokeRect(Rect, color.RGBA) {}

func (r *recorder) Text(s string, _, _, _ int32, _ color.RGBA) { r.texts = append(r.texts, s) }

func TestParseSelector(t *testing.T) {
	sel, err := ParseSelector("label#loading-text.dim.big")
	require.NoError(t, err)
	assert.Equal(t, Selector{Type: "label", ID: "loading-text", Classes: []string{"dim", "big"}}, sel)
	assert.Equal(t, 121, sel.Specificity())
	assert.Equal(t, "label#loading-text.dim.big", sel.String())

	for _, bad := range []string{"", "#a .b", "a>b", ".", "#a#b", ".a:hover"} {
		_, err := ParseSelector(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
		/* comment */
		.a, #b { color: #fff; width: 10px; }
		#b.c { opacity: 0.5 }
		@media (max-width: 600px) { .a { color: #000; } }
		.d { transition: opacity 0.6s ease; }
	`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 4)

	sels := make([]string, len(sheet.Rules))
	for i, r := range sheet.Rules {
		sels[i] = r.Selector.String()
	}
	// Ordered by specificity, then source order.
	assert.Equal(t, []string{".a", ".d", "#b", "#b.c"}, sels)
	assert.Equal(t, "#fff", sheet.Rules[0].Props["color"])
	assert.Equal(t, "10px", sheet.Rules[2].Props["width"])
	assert.Equal(t, "0.5", sheet.Rules[3].Props["opacity"])
	assert.Equal(t, "opacity 0.6s ease", sheet.Rules[1].Props["transition"])
}

func defaultSheet(t *testing.T) *Stylesheet {
	t.Helper()
	sheet, err := DefaultStylesheet()
	require.NoError(t, err)
	return sheet
}

func TestParseCSSSelectorLists(t *testing.T) {
	sheet, err := ParseCSS(`#x, #y { opacity: 0.5; }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 2)
	assert.Equal(t, "#x", sheet.Rules[0].Selector.String())
	assert.Equal(t, "#y", sheet.Rules[1].Selector.String())
	assert.Equal(t, "0.5", sheet.Rules[1].Props["opacity"])

	// A bad entry drops only itself.
	sheet, err = ParseCSS(`.a,#b .c,.d{color:#fff}`)
	assert.Error(t, err)
	require.Len(t, sheet.Rules, 2)
	assert.Equal(t, ".a", sheet.Rules[0].Selector.String())
	assert.Equal(t, ".d", sheet.Rules[1].Selector.String())
}

func TestDefaultStylesheetParses(t *testing.T) {
	sheet := defaultSheet(t)
	var ids []string
	for _, r := range sheet.Rules {
		ids = append(ids, r.Selector.String())
	}
	assert.Contains(t, ids, "#loading-text")
	assert.Contains(t, ids, "#loading-bar")
	assert.Contains(t, ids, "#loading-text.error")
}

func TestParseCSSSkipsCombinators(t *testing.T) {
	sheet, err := ParseCSS(`#a .b { color: #fff; } .c { color: #000; }`)
	assert.Error(t, err)
	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, ".c", sheet.Rules[0].Selector.String())
}

func TestValueParsers(t *testing.T) {
	c, ok := ParseHexColor("#ffeded")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{R: 255, G: 0xed, B: 0xed, A: 255}, c)
	c, ok = ParseHexColor("#0f0")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, c)
	_, ok = ParseHexColor("#zzz")
	assert.False(t, ok)
	c, ok = ParseHexColor("transparent")
	assert.True(t, ok)
	assert.Zero(t, c.A)

	px, ok := ParsePx("20px")
	assert.True(t, ok)
	assert.EqualValues(t, 20, px)
	pct, ok := ParsePct("50%")
	assert.True(t, ok)
	assert.EqualValues(t, 50, pct)
	_, ok = ParsePct("150%")
	assert.False(t, ok)

	sec, ok := ParseSeconds("opacity 600ms linear")
	assert.True(t, ok)
	assert.InDelta(t, 0.6, sec, 1e-6)
	_, ok = ParseSeconds("ease steps")
	assert.False(t, ok)
}

func TestResolveSpecificityAndInline(t *testing.T) {
	sheet, err := ParseCSS(`#x { color: #111111; } .y { color: #222222; background: #333333; }`)
	require.NoError(t, err)
	e := New()
	e.SetStylesheet(sheet)
	n := NewNode("label", "y", "x", "hi")
	e.AddNode(n)

	st := e.style(n)
	assert.Equal(t, color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 255}, st.Color)
	assert.Equal(t, color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}, st.Background)

	n.SetStyle("color", "#444444")
	assert.Equal(t, color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 255}, e.style(n).Color)
}

func TestClassChangesInvalidateCache(t *testing.T) {
	sheet, err := ParseCSS(`.on { opacity: 0.25; }`)
	require.NoError(t, err)
	e := New()
	e.SetStylesheet(sheet)
	n := NewNode("panel", "", "p", "")
	e.AddNode(n)
	assert.InDelta(t, 1, e.style(n).Opacity, 1e-6)

	n.AddClass("on")
	n.AddClass("on")
	assert.Equal(t, []string{"on"}, n.Classes())
	assert.InDelta(t, 0.25, e.style(n).Opacity, 1e-6)

	n.RemoveClass("on")
	assert.False(t, n.HasClass("on"))
	assert.InDelta(t, 1, e.style(n).Opacity, 1e-6)
}

func TestLoadingScreenFadesOut(t *testing.T) {
	e := New()
	e.SetStylesheet(defaultSheet(t))
	ls := NewLoadingScreen()
	e.SetNodes(ls.Nodes())

	ls.Progress(3, 6, "gm")
	ls.Sync()
	e.Update(1)
	assert.InDelta(t, 0.5, ls.Ratio(), 1e-6)
	assert.False(t, ls.Gone())
	assert.InDelta(t, 1, ls.screen.Opacity(), 1e-6)

	p := &recorder{w: 800, h: 600}
	e.Draw(p)
	assert.Contains(t, p.texts, "Loading gm (3/6)")
	require.Len(t, p.fills, 2)
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 800, Height: 600}, p.fills[0].r)
	assert.Equal(t, Rect{X: 0, Y: 596, Width: 400, Height: 4}, p.fills[1].r)

	ls.Progress(6, 6, "vbo")
	ls.Finish()
	ls.Sync()
	e.Update(0.3)
	assert.InDelta(t, 0.5, ls.screen.Opacity(), 1e-3)
	assert.False(t, ls.Gone())

	e.Update(1)
	assert.True(t, ls.Gone())

	p = &recorder{w: 800, h: 600}
	e.Draw(p)
	assert.Empty(t, p.fills)
	assert.Empty(t, p.texts)
}

func TestLoadingScreenFailureStaysUp(t *testing.T) {
	e := New()
	e.SetStylesheet(defaultSheet(t))
	ls := NewLoadingScreen()
	e.SetNodes(ls.Nodes())

	ls.Fail(errors.New("assets: gm: no such file"))
	ls.Finish()
	ls.Sync()
	e.Update(5)
	assert.False(t, ls.Gone())
	assert.Equal(t, "Failed: assets: gm: no such file", ls.text.Text)
	assert.True(t, ls.text.HasClass("error"))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x55, B: 0x55, A: 255}, e.style(ls.text).Color)

	p := &recorder{w: 800, h: 600}
	e.Draw(p)
	assert.Equal(t, []string{"Failed: assets: gm: no such file"}, p.texts)
	require.NotEmpty(t, p.fills)
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 800, Height: 600}, p.fills[0].r)
}

func TestInspector(t *testing.T) {
	in := NewInspector()
	assert.Empty(t, in.AppendNodes(nil, false, Selection{}))

	nodes := in.AppendNodes(nil, true, Selection{Index: 2, Count: 8, Name: "tools", Position: [3]float32{2, -8, 0}, Scale: 5.7})
	require.Len(t, nodes, 6)
	assert.Equal(t, "Section 3/8", nodes[1].Text)
	assert.Equal(t, "Name: tools", nodes[2].Text)
	assert.Equal(t, "Position: 2.00, -8.00, 0.00", nodes[3].Text)
	assert.Equal(t, "Scale: 5.70", nodes[5].Text)
}
