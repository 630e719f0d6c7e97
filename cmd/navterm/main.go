// Command navterm runs the sample UI in a terminal. Every key press or
// mouse event drives imcore frames; the item list recorded by the scene is
// drawn on a character grid with lipgloss styles reflecting hover, active
// and nav state.
//
//	go run ./cmd/navterm
//
// Keys: arrows move, Tab/Shift+Tab step through tab stops, Space/Enter
// activate, Esc cancels, F10 toggles the menu bar, F6/Shift+F6 cycle
// windows, q quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/imcore"
	"github.com/go-theft-auto/imcore/internal/configwatch"
	"github.com/go-theft-auto/imcore/internal/demo"
)

type configMsg imcore.Config

type model struct {
	ctx      *imcore.Context
	in       *imcore.InputState
	scene    *demo.Scene
	logger   *slog.Logger
	last     time.Time
	updates  <-chan imcore.Config
	frameErr error
}

func newModel(logger *slog.Logger, cfg imcore.Config, updates <-chan imcore.Config) *model {
	in := imcore.NewInputState()
	scene := demo.New(imcore.Vec2{X: 1, Y: 1})
	m := &model{
		in:      in,
		scene:   scene,
		logger:  logger,
		last:    time.Now(),
		updates: updates,
		ctx: imcore.New(
			imcore.WithInput(in),
			imcore.WithDisplaySize(imcore.Vec2{X: 80, Y: 24}),
			imcore.WithConfig(scene.Config(cfg)),
			imcore.WithLogger(logger),
		),
	}
	m.frame()
	return m
}

func (m *model) Init() tea.Cmd {
	return m.waitConfig()
}

// waitConfig delivers the next reloaded config as a message.
func (m *model) waitConfig() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-m.updates
		if !ok {
			return nil
		}
		return configMsg(cfg)
	}
}

// frame runs one imcore frame over the current input.
func (m *model) frame() {
	now := time.Now()
	m.ctx.DeltaTime = float32(now.Sub(m.last).Seconds())
	m.last = now

	m.ctx.NewFrame()
	m.scene.Draw(m.ctx)
	m.frameErr = m.ctx.EndFrame()
	if m.frameErr != nil {
		m.logger.Warn("frame", "err", m.frameErr)
	}
}

// tap presses k for one frame and releases it on the next; terminals do
// not report key releases.
func (m *model) tap(k imcore.Key, ctrl, shift bool) {
	m.in.ModCtrl, m.in.ModShift = ctrl, shift
	m.in.SetKey(k, true)
	m.frame()
	m.in.SetKey(k, false)
	m.frame()
	m.in.ModCtrl, m.in.ModShift = false, false
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ctx.DisplaySize = imcore.Vec2{X: float32(msg.Width), Y: float32(msg.Height - 1)}
		m.frame()

	case configMsg:
		m.ctx.SetConfig(m.scene.Config(imcore.Config(msg)))
		return m, m.waitConfig()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.tap(imcore.KeyTab, false, false)
		case "shift+tab":
			m.tap(imcore.KeyTab, false, true)
		case "f6":
			m.tap(imcore.KeyTab, true, false)
		case "shift+f6":
			m.tap(imcore.KeyTab, true, true)
		default:
			k, ok := keyFor(msg.String())
			if !ok {
				return m, nil
			}
			m.tap(k, false, false)
		}

	case tea.MouseMsg:
		m.in.SetMousePos(float32(msg.X)+0.5, float32(msg.Y)+0.5)
		if b, ok := buttonFor(msg.Button); ok {
			switch msg.Action {
			case tea.MouseActionPress:
				m.in.SetMouseButton(b, true)
			case tea.MouseActionRelease:
				m.in.SetMouseButton(b, false)
			}
		}
		if msg.Action == tea.MouseActionRelease {
			// Some terminals report releases without the button.
			for b := imcore.MouseButtonLeft; b < imcore.MouseButtonCount; b++ {
				m.in.SetMouseButton(b, false)
			}
		}
		m.frame()
	}

	if m.scene.QuitRequested {
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) View() string {
	status := m.scene.LastEvent()
	if m.frameErr != nil {
		status = m.frameErr.Error()
	}
	return render(m.ctx, m.scene.Items()) + "\n" + statusStyle.Render(fmt.Sprintf(" %s ", status))
}

func keyFor(s string) (imcore.Key, bool) {
	switch s {
	case "up":
		return imcore.KeyUp, true
	case "down":
		return imcore.KeyDown, true
	case "left":
		return imcore.KeyLeft, true
	case "right":
		return imcore.KeyRight, true
	case " ", "space":
		return imcore.KeySpace, true
	case "enter":
		return imcore.KeyEnter, true
	case "esc":
		return imcore.KeyEscape, true
	case "f10":
		return imcore.KeyAlt, true
	case "home":
		return imcore.KeyHome, true
	case "end":
		return imcore.KeyEnd, true
	}
	return imcore.KeyNone, false
}

func buttonFor(b tea.MouseButton) (imcore.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return imcore.MouseButtonLeft, true
	case tea.MouseButtonRight:
		return imcore.MouseButtonRight, true
	case tea.MouseButtonMiddle:
		return imcore.MouseButtonMiddle, true
	}
	return 0, false
}

func main() {
	configPath := flag.String("config", "", "TOML config file, reloaded on change")
	logPath := flag.String("log", "", "write logs to this file")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	if err := run(*configPath, *logPath, *debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, logPath string, debug bool) error {
	// The terminal belongs to the UI: logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	imcore.SetVerbose(debug)
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))

	cfg := imcore.DefaultConfig()
	var updates <-chan imcore.Config
	if configPath != "" {
		var err error
		if cfg, err = imcore.LoadConfig(configPath); err != nil {
			return err
		}
		w, err := configwatch.Watch(configPath, logger)
		if err != nil {
			return err
		}
		defer w.Close()
		updates = w.Updates()
	}

	m := newModel(logger, cfg, updates)
	defer m.ctx.Shutdown()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
