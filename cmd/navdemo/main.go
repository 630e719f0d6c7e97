// Command navdemo runs the sample UI in a GLFW window and draws the
// interaction state (hover, active item, nav highlight, snap guides) as an
// OpenGL overlay. Use the mouse, the arrow keys with Space/Enter/Escape,
// Alt for the menu bar, Ctrl+Tab to cycle windows, or a gamepad.
//
// Prerequisites:
//
//	devbox shell              # Go + OpenGL/X11 headers
//	go run ./cmd/navdemo -config imcore.toml
//
// The config file is reloaded whenever it changes on disk.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imcore"
	"github.com/go-theft-auto/imcore/backend/opengl"
	"github.com/go-theft-auto/imcore/backend/overlay"
	"github.com/go-theft-auto/imcore/internal/configwatch"
	"github.com/go-theft-auto/imcore/internal/demo"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "imcore navdemo"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML config file, reloaded on change")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	imcore.SetVerbose(*debug)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*configPath, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, logger *slog.Logger) error {
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

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("overlay renderer: %w", err)
	}
	defer renderer.Delete()

	adapter := opengl.NewGLFWInputAdapter(window)
	scene := demo.New(imcore.Vec2{X: 8, Y: 20})
	ctx := imcore.New(
		imcore.WithInput(adapter.Input()),
		imcore.WithConfig(scene.Config(cfg)),
		imcore.WithLogger(logger),
	)
	defer ctx.Shutdown()

	var ov overlay.Overlay
	last := glfw.GetTime()
	for !window.ShouldClose() && !scene.QuitRequested {
		glfw.PollEvents()
		adapter.Update()

		select {
		case c, ok := <-updates:
			if ok {
				ctx.SetConfig(scene.Config(c))
			}
		default:
		}

		w, h := window.GetFramebufferSize()
		ctx.DisplaySize = imcore.Vec2{X: float32(w), Y: float32(h)}
		now := glfw.GetTime()
		ctx.DeltaTime = float32(now - last)
		last = now

		ctx.NewFrame()
		scene.Draw(ctx)
		if err := ctx.EndFrame(); err != nil {
			logger.Warn("frame", "err", err)
		}

		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		renderer.Resize(w, h)
		ov.Build(ctx)
		renderer.Render(&ov)

		window.SetTitle(fmt.Sprintf("%s - %s", windowTitle, scene.LastEvent()))
		window.SwapBuffers()
	}

	return nil
}
