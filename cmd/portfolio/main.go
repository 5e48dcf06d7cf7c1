package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"scroll-portfolio/internal/assets"
	"scroll-portfolio/internal/commands"
	"scroll-portfolio/internal/config"
	"scroll-portfolio/internal/env"
	"scroll-portfolio/internal/layout"
	"scroll-portfolio/internal/logger"
)

// options are the flags shared by every subcommand.
type options struct {
	configPath string
	layoutPath string
	assetDir   string
	fullscreen bool
	showFPS    bool
	quiet      bool
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.configPath, "config", config.DefaultPath, "preferences file")
	fs.StringVar(&o.layoutPath, "layout", "", "layout YAML (default: built-in)")
	fs.StringVar(&o.assetDir, "assets", "", "asset directory")
	fs.BoolVar(&o.fullscreen, "fullscreen", false, "open fullscreen")
	fs.BoolVar(&o.showFPS, "fps", false, "show the FPS overlay")
	fs.BoolVar(&o.quiet, "quiet", false, "log to the file only, not stderr")
}

// prefs resolves preferences: file, then PORTFOLIO_* environment, then flags.
func (o *options) prefs(fs *flag.FlagSet) (config.Prefs, error) {
	p, err := config.Load(o.configPath)
	if err != nil {
		return p, err
	}
	if err := p.ApplyEnv(os.LookupEnv); err != nil {
		return p, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "layout":
			p.LayoutPath = o.layoutPath
		case "assets":
			p.AssetDir = o.assetDir
		case "fullscreen":
			p.Fullscreen = o.fullscreen
		case "fps":
			p.ShowFPS = o.showFPS
		}
	})
	return p, p.Validate()
}

func sources(l *layout.Layout) []assets.Source {
	used := l.UsedModels()
	out := make([]assets.Source, len(used))
	for i, m := range used {
		out[i] = assets.Source{Name: m.Name, Path: m.Path}
	}
	return out
}

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "env:", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reg := commands.NewRegistry("run")

	var runOpts options
	runFS := flag.NewFlagSet("run", flag.ContinueOnError)
	runOpts.register(runFS)
	reg.Register("run", "open the portfolio window", runFS, func([]string) error {
		p, err := runOpts.prefs(runFS)
		if err != nil {
			return err
		}
		log := logger.New(p.LogPath)
		if runOpts.quiet {
			log.SetConsole(nil)
		}
		return run(ctx, p, log)
	})

	var checkOpts options
	checkFS := flag.NewFlagSet("check", flag.ContinueOnError)
	checkOpts.register(checkFS)
	reg.Register("check", "validate the layout and load every model without a window", checkFS, func([]string) error {
		p, err := checkOpts.prefs(checkFS)
		if err != nil {
			return err
		}
		return check(ctx, p)
	})

	var cfgOpts options
	cfgFS := flag.NewFlagSet("config", flag.ContinueOnError)
	cfgOpts.register(cfgFS)
	reg.Register("config", "write the resolved preferences to the config file", cfgFS, func([]string) error {
		p, err := cfgOpts.prefs(cfgFS)
		if err != nil {
			return err
		}
		return config.Save(cfgOpts.configPath, p)
	})

	if err := reg.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			reg.Usage(os.Stderr)
			return
		}
		if errors.Is(err, commands.ErrUnknown) {
			reg.Usage(os.Stderr)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// check loads the layout and every model it uses, then prints a summary.
func check(ctx context.Context, p config.Prefs) error {
	l, err := layout.Load(p.LayoutPath)
	if err != nil {
		return err
	}
	loader := &assets.Loader{Dir: p.AssetDir, CacheDir: p.CacheDir}
	models, err := loader.LoadAll(ctx, sources(l))
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODEL\tROOT\tMESHES\tPATH")
	for _, m := range models {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", m.Name, m.Root, m.Meshes, m.Path)
	}
	fmt.Fprintf(tw, "%d sections, %d models\n", len(l.Sections), len(models))
	return tw.Flush()
}
