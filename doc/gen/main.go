// Command gen replays scripted input against the sample UI, rasterizes the
// resulting interaction overlay in software and saves JPEG screenshots to
// doc/imgs/. No window or GL context is needed.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-theft-auto/imcore"
	"github.com/go-theft-auto/imcore/backend/overlay"
	"github.com/go-theft-auto/imcore/internal/demo"
)

const (
	shotWidth  = 640
	shotHeight = 400
)

var background = color.RGBA{R: 30, G: 30, B: 36, A: 255}

// step mutates the input before one frame.
type step func(in *imcore.InputState)

// screenshot defines a single capture: the frames replayed before it.
type screenshot struct {
	name  string // filename without extension
	steps []step
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, shotWidth, shotHeight)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(s screenshot, outDir string) error {
	// Fresh context per screenshot so state does not leak between captures.
	in := imcore.NewInputState()
	scene := demo.New(imcore.Vec2{X: 8, Y: 20})
	ctx := imcore.New(
		imcore.WithInput(in),
		imcore.WithDisplaySize(imcore.Vec2{X: shotWidth, Y: shotHeight}),
		imcore.WithConfig(scene.Config(imcore.DefaultConfig())),
		imcore.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	defer ctx.Shutdown()

	// One warm-up frame so windows have rects to hover.
	steps := append([]step{func(*imcore.InputState) {}}, s.steps...)
	for _, st := range steps {
		st(in)
		ctx.DeltaTime = 1.0 / 60.0
		ctx.NewFrame()
		scene.Draw(ctx)
		if err := ctx.EndFrame(); err != nil {
			return err
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, shotWidth, shotHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	var ov overlay.Overlay
	ov.Build(ctx)
	ov.Draw(img)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func mouseAt(x, y float32) step {
	return func(in *imcore.InputState) { in.SetMousePos(x, y) }
}

func mouseButton(down bool) step {
	return func(in *imcore.InputState) { in.SetMouseButton(imcore.MouseButtonLeft, down) }
}

func key(k imcore.Key, down bool) step {
	return func(in *imcore.InputState) { in.SetKey(k, down) }
}

func click(x, y float32) []step {
	return []step{mouseAt(x, y), mouseButton(true), mouseButton(false)}
}

func tap(k imcore.Key) []step {
	return []step{key(k, true), key(k, false)}
}

// buildScreenshots returns the scripted captures. Coordinates follow the
// demo grid at 8x20 pixels per cell.
func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name:  "hover",
			steps: []step{mouseAt(80, 90), mouseAt(80, 90)},
		},
		{
			name:  "active",
			steps: []step{mouseAt(80, 90), mouseAt(80, 90), mouseButton(true)},
		},
		{
			name:  "nav",
			steps: concat(tap(imcore.KeyDown), tap(imcore.KeyDown), tap(imcore.KeyRight)),
		},
		{
			name:  "menu_layer",
			steps: concat(tap(imcore.KeyDown), tap(imcore.KeyAlt)),
		},
		{
			name:  "modal",
			steps: concat(click(248, 210), []step{mouseAt(0, 0)}),
		},
		{
			name: "snap",
			steps: []step{
				mouseAt(312, 300), mouseButton(true),
				mouseAt(306, 300), mouseAt(306, 300),
			},
		},
	}
}

func concat(parts ...[]step) []step {
	var out []step
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
