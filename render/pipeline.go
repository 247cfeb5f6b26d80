// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/quad"
)

//go:embed shaders/quad.wgsl
var quadShaderSource string

// Pipeline owns the quad render pipeline and the camera uniform it
// feeds: the shader module, bind group layout, pipeline layout, the
// 64-byte uniform buffer, and its bind group. One Pipeline serves any
// number of Renderers drawing into targets of the same format.
type Pipeline struct {
	device hal.Device
	queue  hal.Queue

	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline

	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup
}

// NewPipeline creates the quad render pipeline for color targets of
// the given format. The uniform buffer starts holding the identity
// matrix; call WriteCamera before the first frame.
func NewPipeline(device hal.Device, queue hal.Queue, format gputypes.TextureFormat) (*Pipeline, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}
	p := &Pipeline{device: device, queue: queue}
	if err := p.createPipeline(format); err != nil {
		p.Destroy()
		return nil, err
	}
	if err := p.createUniform(); err != nil {
		p.Destroy()
		return nil, err
	}
	return p, nil
}

// WriteCamera re-uploads the camera uniform. Call once per frame after
// updating the camera.
func (p *Pipeline) WriteCamera(u quad.CameraUniform) {
	p.queue.WriteBuffer(p.uniformBuf, 0, u.Bytes())
}

// Bind sets the pipeline and camera bind group on a render pass. Call
// once per pass, before Renderer.RecordDraws.
func (p *Pipeline) Bind(rp hal.RenderPassEncoder) {
	rp.SetPipeline(p.pipeline)
	rp.SetBindGroup(0, p.bindGroup, nil)
}

// Destroy releases all pipeline resources in reverse creation order.
func (p *Pipeline) Destroy() {
	if p.device == nil {
		return
	}
	if p.bindGroup != nil {
		p.device.DestroyBindGroup(p.bindGroup)
		p.bindGroup = nil
	}
	if p.uniformBuf != nil {
		p.device.DestroyBuffer(p.uniformBuf)
		p.uniformBuf = nil
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.uniformLayout != nil {
		p.device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

func (p *Pipeline) createPipeline(format gputypes.TextureFormat) error {
	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "quad_shader",
		Source: quadShaderModuleSource(),
	})
	if err != nil {
		return fmt.Errorf("compile quad shader: %w", err)
	}
	p.shader = shader

	uniformLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "quad_camera_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create camera bind group layout: %w", err)
	}
	p.uniformLayout = uniformLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "quad_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create quad pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "quad_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers:    []gputypes.VertexBufferLayout{quad.VertexBufferLayout()},
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    format,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create quad pipeline: %w", err)
	}
	p.pipeline = pipeline

	return nil
}

func (p *Pipeline) createUniform() error {
	uniformBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "quad_camera_uniform",
		Size:  quad.CameraUniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create camera uniform buffer: %w", err)
	}
	p.uniformBuf = uniformBuf
	p.queue.WriteBuffer(p.uniformBuf, 0, quad.NewCameraUniform().Bytes())

	bindGroup, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "quad_camera_bind_group",
		Layout: p.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{
				Binding: 0,
				Resource: gputypes.BufferBinding{
					Buffer: p.uniformBuf.NativeHandle(),
					Offset: 0,
					Size:   quad.CameraUniformSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create camera bind group: %w", err)
	}
	p.bindGroup = bindGroup

	return nil
}

// quadShaderModuleSource pre-compiles the WGSL source to SPIR-V with
// naga so shader errors surface before pipeline creation. Backends
// that prefer WGSL still get it when naga cannot compile.
func quadShaderModuleSource() hal.ShaderSource {
	spirvBytes, err := naga.Compile(quadShaderSource)
	if err != nil {
		quad.Logger().Warn("render: naga compile failed, passing WGSL through", "error", err)
		return hal.ShaderSource{WGSL: quadShaderSource}
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return hal.ShaderSource{SPIRV: words}
}
