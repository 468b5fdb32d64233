// Demo binary: wraps a styled sample text (or a file) to the terminal
// width and re-layouts on resize. Scroll with j/k, quit with q or ESC.
package main

import (
	"flag"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/loom/backend"
	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/grid"
	"github.com/lixenwraith/loom/logring"
	"github.com/lixenwraith/loom/span"
	"github.com/lixenwraith/loom/style"
	"github.com/lixenwraith/loom/view"
)

type config struct {
	Width      int    `toml:"width"`       // Wrap width override, 0 = terminal width
	TextFile   string `toml:"text_file"`   // Optional file to display instead of the sample
	ShowSpaces bool   `toml:"show_spaces"` // Keep a blank cell at wrap points
	LogLines   int    `toml:"log_lines"`   // Debug ring capacity
}

func loadConfig(path string) (config, error) {
	cfg := config{LogLines: 64}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parse config")
	}
	return cfg, nil
}

func sampleText() span.StyledText {
	text := span.Plain("I ")
	text = text.AppendStyled("didn't", style.Style{Effects: style.EffectBold})
	text = text.AppendPlain(" say ")
	text = text.AppendStyled("half", style.Style{Effects: style.EffectItalic})
	text = text.AppendPlain(" the things people say I did.\n\n    - A. Einstein")
	return text
}

func content(cfg config) (span.StyledText, error) {
	if cfg.TextFile == "" {
		return sampleText(), nil
	}
	data, err := os.ReadFile(cfg.TextFile)
	if err != nil {
		return span.StyledText{}, errors.Wrap(err, "read text file")
	}
	return span.Plain(string(data)), nil
}

func run(cfg config) error {
	text, err := content(cfg)
	if err != nil {
		return err
	}

	logring.Init(cfg.LogLines)

	tv := view.NewTextView(text)
	tv.SetShowSpaces(cfg.ShowSpaces)
	root := view.FullScreen(tv)

	term := backend.NewTcell()
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	w, h := term.Size()
	buf := grid.NewBuffer(w, h)
	term.SetResizeHandler(func(w, h int) {
		buf.Resize(w, h)
	})

	render := func() error {
		avail := geom.V(buf.Width(), buf.Height())
		if cfg.Width > 0 {
			avail.X = min(cfg.Width, avail.X)
		}
		size := root.RequiredSize(avail).Min(avail)
		root.Layout(size)
		buf.Clear()
		root.Draw(buf.Root().Sub(0, 0, size.X, size.Y))
		logring.Push("layout %dx%d, %d rows", size.X, size.Y, len(tv.Rows()))
		return term.Render(buf)
	}

	if err := render(); err != nil {
		return err
	}

	for {
		ev := term.PollEvent()
		switch ev.Kind {
		case backend.EventInterrupt:
			return nil
		case backend.EventResize:
			if err := render(); err != nil {
				return err
			}
		case backend.EventKey:
			switch ev.Rune {
			case 'q':
				return nil
			case 'j':
				tv.Scroll().ScrollBy(1)
			case 'k':
				tv.Scroll().ScrollBy(-1)
			case 'g':
				tv.Scroll().Home()
			case 'G':
				tv.Scroll().End()
			default:
				continue
			}
			if err := render(); err != nil {
				return err
			}
		}
	}
}

func main() {
	configPath := flag.String("config", "", "path to TOML config")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
