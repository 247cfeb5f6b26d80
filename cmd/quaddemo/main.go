// Command quaddemo batches a grid of colored squares and uploads it to
// the GPU, reporting the resulting batch layout.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/quad"
	"github.com/gogpu/quad/backend"
	"github.com/gogpu/quad/render"
)

func main() {
	var (
		count    = flag.Int("count", 100, "number of squares")
		capacity = flag.Int("capacity", 16, "max squares per batch")
		width    = flag.Float64("width", 20, "camera frustum width")
		height   = flag.Float64("height", 20, "camera frustum height")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		quad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	gpu, err := backend.Open()
	if err != nil {
		log.Fatalf("Failed to open GPU: %v", err)
	}
	defer gpu.Close()

	factory, err := render.NewDeviceFactory(gpu.Device, gpu.Queue)
	if err != nil {
		log.Fatalf("Failed to create factory: %v", err)
	}
	r, err := render.NewRenderer(factory, *capacity)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Destroy()

	addGrid(r, *count)

	camera := quad.Camera{
		Eye:    quad.V3(0, 0, -10),
		Target: quad.V3(0, 0, 0),
		Up:     quad.V3(0, 1, 0),
		Width:  float32(*width),
		Height: float32(*height),
	}
	uniform := quad.NewCameraUniform()
	uniform.UpdateProjection(camera)

	pipe, err := render.NewPipeline(gpu.Device, gpu.Queue, gputypes.TextureFormatBGRA8Unorm)
	if err != nil {
		log.Fatalf("Failed to create pipeline: %v", err)
	}
	defer pipe.Destroy()
	pipe.WriteCamera(uniform)

	batches := r.Batches()
	log.Printf("Adapter: %s", gpu.Name)
	log.Printf("Batched %d squares into %d batches (capacity %d)", r.ItemCount(), len(batches), *capacity)
	for i, b := range batches {
		log.Printf("  batch %d: %d items, %d vertices, %d indices", i, b.ItemCount(), len(b.Vertices()), b.IndexCount())
	}
}

// addGrid lays squares out in a rough square grid centered on the
// origin, cycling through a small palette.
func addGrid(r *render.Renderer, count int) {
	palette := []quad.Color{
		quad.RGB(0.9, 0.2, 0.2),
		quad.RGB(0.2, 0.9, 0.2),
		quad.RGB(0.2, 0.4, 0.9),
		quad.RGB(0.9, 0.8, 0.2),
	}
	side := 1
	for side*side < count {
		side++
	}
	const cell = 1.5
	origin := -float32(side) * cell / 2

	for i := 0; i < count; i++ {
		col := i % side
		row := i / side
		sq := quad.Square{
			Position: quad.P(origin+float32(col)*cell, origin+float32(row)*cell+cell),
			Size:     1,
			Color:    palette[i%len(palette)],
		}
		if err := r.Add(sq); err != nil {
			log.Fatalf("Failed to add square %d: %v", i, err)
		}
	}
}
