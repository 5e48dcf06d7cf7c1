package ui

import (
	"fmt"
	"sync"
)

// LoadingScreen is the overlay shown while models load. Progress may be
// reported from loader goroutines; Sync copies it into the nodes on the main thread.
type LoadingScreen struct {
	screen *Node
	text   *Node
	bar    *Node

	mu     sync.Mutex
	done   int
	total  int
	last   string
	err    error
	loaded bool
}

// NewLoadingScreen creates the overlay nodes (#loading-screen, #loading-text,
// #loading-bar).
func NewLoadingScreen() *LoadingScreen {
	return &LoadingScreen{
		screen: NewNode("panel", "", "loading-screen", ""),
		text:   NewNode("label", "", "loading-text", "Loading"),
		bar:    NewNode("panel", "", "loading-bar", ""),
	}
}

// Nodes returns the overlay nodes in draw order.
func (l *LoadingScreen) Nodes() []*Node {
	return []*Node{l.screen, l.text, l.bar}
}

// Progress records that done of total assets have loaded, name being the latest.
func (l *LoadingScreen) Progress(done, total int, name string) {
	l.mu.Lock()
	l.done, l.total, l.last = done, total, name
	l.mu.Unlock()
}

// Fail records a load error. The overlay stays up and shows it.
func (l *LoadingScreen) Fail(err error) {
	l.mu.Lock()
	l.err = err
	l.mu.Unlock()
}

// Finish marks loading complete; the overlay fades out.
func (l *LoadingScreen) Finish() {
	l.mu.Lock()
	l.loaded = true
	l.mu.Unlock()
}

// Sync updates node text, bar width and classes from the recorded state.
func (l *LoadingScreen) Sync() {
	l.mu.Lock()
	done, total, last, err, loaded := l.done, l.total, l.last, l.err, l.loaded
	l.mu.Unlock()
	ratio := l.Ratio()

	switch {
	case err != nil:
		l.text.Text = "Failed: " + err.Error()
		l.text.AddClass("error")
	case total == 0:
		l.text.Text = "Loading"
	default:
		l.text.Text = fmt.Sprintf("Loading %s (%d/%d)", last, done, total)
	}
	l.bar.SetStyle("width", fmt.Sprintf("%d%%", int(100*ratio)))
	if loaded && err == nil {
		for _, n := range l.Nodes() {
			n.AddClass("fade-out")
		}
	}
}

// Ratio is the fraction of assets loaded, 0 before the first report.
func (l *LoadingScreen) Ratio() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.total == 0 {
		return 0
	}
	return float32(l.done) / float32(l.total)
}

// Gone reports whether the overlay has finished fading out.
func (l *LoadingScreen) Gone() bool {
	return l.screen.HasClass("fade-out") && l.screen.Opacity() == 0
}
