// Package quad provides the drawing core of a minimal real-time 2D
// rendering engine built on the gogpu WebGPU stack.
//
// # Overview
//
// quad accumulates axis-aligned square primitives into GPU geometry
// batches bounded by a per-batch capacity, and computes the camera
// view-projection matrix that maps world space into WebGPU clip space.
// The root package holds the data model and math; package render owns
// batching, the shader pipeline, and GPU buffer management; package
// backend offers an optional device bootstrap for hosts without one.
//
// # Quick Start
//
//	gpu, err := backend.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gpu.Close()
//
//	factory, err := render.NewDeviceFactory(gpu.Device, gpu.Queue)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, err := render.NewRenderer(factory, 64)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Destroy()
//
//	err = r.Add(quad.Square{
//	    Position: quad.P(-0.5, 0.5),
//	    Size:     1,
//	    Color:    quad.RGB(1, 0, 0),
//	})
//
// At frame time the host binds the pipeline once, then records one
// indexed draw per batch:
//
//	pipe.Bind(rp)
//	r.RecordDraws(rp)
//
// # Architecture
//
// Squares flow through three layers. A Square expands into four Vertex
// values in a fixed corner order. A Batch packs vertices and a derived
// uint16 index list into a vertex/index buffer pair, rebuilding both
// buffers whenever its contents change. The Renderer routes each new
// square to its most recent batch, opening a new one when the current
// batch reaches capacity. The Camera derives an orthographic
// view-projection matrix; CameraUniform is its 64-byte GPU mirror,
// re-uploaded by the host whenever the camera moves.
//
// The library never creates a GPU device. Hosts thread an explicit
// render.ResourceFactory (usually a render.DeviceFactory around their
// hal.Device and hal.Queue) through construction.
package quad

// Version information.
const (
	// Version is the current version of the quad library.
	Version = "0.1.0"
)
