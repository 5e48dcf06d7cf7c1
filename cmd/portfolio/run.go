package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scroll-portfolio/internal/assets"
	"scroll-portfolio/internal/config"
	"scroll-portfolio/internal/debug"
	"scroll-portfolio/internal/fonts"
	"scroll-portfolio/internal/graphics"
	"scroll-portfolio/internal/layout"
	"scroll-portfolio/internal/logger"
	"scroll-portfolio/internal/particles"
	"scroll-portfolio/internal/portfolio"
	"scroll-portfolio/internal/scene"
	"scroll-portfolio/internal/section"
	"scroll-portfolio/internal/ui"
)

// debugLogLines is how many recent log lines the debug overlay shows.
const debugLogLines = 4

// loadFont needs the window's GL context, so it runs on the first frame.
func loadFont(p config.Prefs, painter *graphics.Painter, log *logger.Logger) {
	path, err := fonts.Find(fonts.DefaultDirs(p.AssetDir), p.Font)
	if err == nil {
		err = painter.LoadFont(path)
	}
	if err != nil {
		log.Logf("font %q: %v (using default)", p.Font, err)
		return
	}
	log.Logf("font %s", path)
}

type loadResult struct {
	models []assets.Model
	err    error
}

// run opens the window, loads models in the background behind the loading
// screen and then runs the scroll experience. A failed load is logged and
// shown on the loading screen until the window is closed, then returned;
// nothing of the scene is drawn in that case.
func run(ctx context.Context, p config.Prefs, log *logger.Logger) error {
	l, err := layout.Load(p.LayoutPath)
	if err != nil {
		log.Logf("layout: %v", err)
		return err
	}
	policy, err := section.ParsePolicy(p.OutOfRange)
	if err != nil {
		return err
	}

	state := portfolio.New(l, portfolio.Options{
		Policy:      policy,
		ClampScroll: true,
		Viewport:    portfolio.Viewport{Width: p.Width, Height: p.Height, PixelRatio: 1},
	})
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	field := particles.Generate(l.Particles.Count, l.Particles.Spread, l.Spacing, len(l.Sections), rng)
	scn, err := scene.New(l, field)
	if err != nil {
		return err
	}

	engine := ui.New()
	sheet, err := ui.DefaultStylesheet()
	if err != nil {
		log.Logf("%v", err)
	}
	engine.SetStylesheet(sheet)
	if p.StylePath != "" {
		if err := engine.LoadCSS(p.StylePath); err != nil {
			log.Logf("style %s: %v (using built-in)", p.StylePath, err)
		}
	}
	loading := ui.NewLoadingScreen()
	inspector := ui.NewInspector()
	showInspector := false

	dbg := debug.New()
	dbg.ShowFPS, dbg.ShowMemAlloc, dbg.ShowSection = p.ShowFPS, p.ShowMemAlloc, p.ShowSection

	srcs := sources(l)
	log.Logf("loading %d models from %s", len(srcs), p.AssetDir)
	results := make(chan loadResult, 1)
	loadCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		loader := &assets.Loader{Dir: p.AssetDir, CacheDir: p.CacheDir, Progress: loading.Progress}
		models, err := loader.LoadAll(loadCtx, srcs)
		results <- loadResult{models: models, err: err}
	}()

	input := &graphics.Input{ScrollStep: p.ScrollStep, Sections: len(l.Sections)}
	painter := &graphics.Painter{}
	var (
		ready     bool
		fontTried bool
		loadErr   error
		current   = state.Current()
	)

	update := func() bool {
		if !fontTried && p.Font != "" {
			fontTried = true
			loadFont(p, painter, log)
			dbg.SetFont(painter.Font())
		}
		select {
		case res := <-results:
			if res.err == nil {
				res.err = scn.LoadModels(res.models)
			}
			if res.err != nil {
				// The failure overlay stays up until the window is closed.
				loadErr = res.err
				loading.Fail(res.err)
				log.Logf("load failed: %v", res.err)
				break
			}
			ready = true
			loading.Finish()
			log.Logf("loaded %d models", len(res.models))
		case <-ctx.Done():
			return false
		default:
		}

		if rl.IsKeyPressed(rl.KeyI) {
			showInspector = !showInspector
		}
		if rl.IsKeyPressed(rl.KeyF3) {
			dbg.Toggle()
		}

		for _, ev := range input.Poll() {
			switch ev.(type) {
			case portfolio.ScrollBy, portfolio.ScrollTo, portfolio.ScrollChanged:
				if !ready {
					continue
				}
			}
			if err := state.Dispatch(ev); err != nil {
				log.Logf("%v", err)
			}
		}
		if c := state.Current(); c != current {
			log.Logf("section %d -> %d (%s)", current, c, state.Section(c).Title())
			current = c
		}

		loading.Sync()
		nodes := make([]*ui.Node, 0, 10)
		if !loading.Gone() {
			nodes = append(nodes, loading.Nodes()...)
		}
		s := state.Section(current)
		nodes = inspector.AppendNodes(nodes, showInspector && ready, ui.Selection{
			Index:    current,
			Count:    len(state.Sections()),
			Name:     s.Title(),
			Position: s.Position,
			Rotation: s.Rotation,
			Scale:    s.Scale[0],
		})
		engine.SetNodes(nodes)
		engine.Update(rl.GetFrameTime())

		px, py := state.Pointer()
		var recent []string
		if dbg.ShowSection {
			recent = log.Tail(debugLogLines)
		}
		dbg.SetStatus(debug.Status{
			Title:   s.Title(),
			Index:   current,
			Count:   len(state.Sections()),
			Scroll:  state.ScrollOffset(),
			Tweens:  state.Tweens(),
			Pointer: [2]float32{px, py},
			Clock:   state.Clock(),
			Log:     recent,
		})
		return true
	}

	draw := func() {
		if ready {
			scn.Draw(state.Snapshot(l.Camera.Distance))
		}
		engine.Draw(painter)
		dbg.Draw()
	}

	graphics.Run(graphics.Window{
		Title:      p.Title,
		Width:      p.Width,
		Height:     p.Height,
		Fullscreen: p.Fullscreen,
		Background: rl.NewColor(0x1e, 0x1a, 0x20, 255),
		Close:      scn.Unload,
	}, update, draw)

	if loadErr != nil {
		return fmt.Errorf("portfolio: %w", loadErr)
	}
	return nil
}
