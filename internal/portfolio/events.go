package portfolio

// Event is one input to the portfolio. Hosts translate window input into
// events; tests feed synthetic sequences.
type Event interface {
	isEvent()
}

// ScrollChanged sets the absolute scroll offset in pixels.
type ScrollChanged struct {
	Offset float32
}

// ScrollBy moves the scroll offset by Delta pixels (positive is down the page).
type ScrollBy struct {
	Delta float32
}

// ScrollTo jumps to the top of section Index.
type ScrollTo struct {
	Index int
}

// PointerMoved reports the cursor position in window pixels.
type PointerMoved struct {
	X, Y float32
}

// Resized reports a new window size. PixelRatio is the display scale.
type Resized struct {
	Width, Height int
	PixelRatio    float32
}

// FrameTick advances time by Delta seconds.
type FrameTick struct {
	Delta float32
}

func (ScrollChanged) isEvent() {}
func (ScrollBy) isEvent()      {}
func (ScrollTo) isEvent()      {}
func (PointerMoved) isEvent()  {}
func (Resized) isEvent()       {}
func (FrameTick) isEvent()     {}
