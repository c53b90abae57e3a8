//go:build ebiten

package render

import (
	"fmt"
	"sync"

	"ripplefield/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchQuads keeps every batch addressable by 16-bit indices.
const maxBatchQuads = (1<<16 - 1) / 4

// Pipeline draws instances with the Kage marker shader. It owns the compiled
// shader and releases it in Close.
type Pipeline struct {
	shader   *ebiten.Shader
	inst     Instances
	proj     Projection
	size     core.Size
	vertices []ebiten.Vertex
	indices  []uint16
	uniforms map[string]any
	op       ebiten.DrawTrianglesShaderOptions

	closeOnce sync.Once
}

// NewPipeline compiles the marker shader. A compile failure is returned and
// leaves nothing allocated.
func NewPipeline(inst Instances) (*Pipeline, error) {
	shader, err := ebiten.NewShader(ShaderSource)
	if err != nil {
		return nil, fmt.Errorf("compiling marker shader: %w", err)
	}
	p := &Pipeline{
		shader:   shader,
		inst:     inst,
		uniforms: make(map[string]any, 5),
	}
	p.indices = buildQuadIndices(min(inst.Len(), maxBatchQuads))
	p.op.Uniforms = p.uniforms
	core.Logger().Info("marker pipeline ready", "instances", inst.Len())
	return p, nil
}

// SetInstances swaps the attribute buffers and rebuilds the vertex data for
// the current projection.
func (p *Pipeline) SetInstances(inst Instances) {
	p.inst = inst
	if n := min(inst.Len(), maxBatchQuads); len(p.indices) < n*6 {
		p.indices = buildQuadIndices(n)
	}
	p.rebuild()
}

// Resize updates the projection for a w×h surface. Only vertex positions are
// recomputed; the attribute buffers stay as they are.
func (p *Pipeline) Resize(proj Projection, w, h int) {
	p.proj = proj
	p.size = core.Size{W: w, H: h}
	p.rebuild()
	core.Logger().Debug("marker pipeline resized",
		"w", w, "h", h,
		"marker_px", proj.MarkerPx(w))
}

func (p *Pipeline) rebuild() {
	n := p.inst.Len()
	if cap(p.vertices) < 4*n {
		p.vertices = make([]ebiten.Vertex, 4*n)
	}
	p.vertices = p.vertices[:4*n]
	m := p.proj.MarkerSize
	for i := 0; i < n; i++ {
		cx, cy := p.inst.Center(i)
		delay := p.inst.Delays[i]
		for k, corner := range UnitQuad {
			nx, ny := p.proj.Apply(cx+float64(corner[0])*m, cy+float64(corner[1])*m)
			sx, sy := ToScreen(nx, ny, p.size.W, p.size.H)
			p.vertices[4*i+k] = ebiten.Vertex{
				DstX:    float32(sx),
				DstY:    float32(sy),
				ColorR:  1,
				ColorG:  1,
				ColorB:  1,
				ColorA:  1,
				Custom0: corner[0],
				Custom1: corner[1],
				Custom2: delay,
			}
		}
	}
}

// Draw renders one frame at the time carried by uni.
func (p *Pipeline) Draw(dst *ebiten.Image, uni Uniforms) {
	if p.shader == nil || len(p.vertices) == 0 {
		return
	}
	p.uniforms[uniformTime] = float32(uni.Time)
	p.uniforms[uniformCycle] = float32(uni.Cycle)
	p.uniforms[uniformCorner] = float32(uni.Corner)
	p.uniforms[uniformIdle] = uni.Theme.Idle.Vec3()
	p.uniforms[uniformBright] = uni.Theme.Bright.Vec3()

	for start := 0; start < p.inst.Len(); start += maxBatchQuads {
		end := min(start+maxBatchQuads, p.inst.Len())
		verts := p.vertices[4*start : 4*end]
		dst.DrawTrianglesShader(verts, p.indices[:6*(end-start)], p.shader, &p.op)
	}
}

// Close releases the shader. It is safe to call more than once.
func (p *Pipeline) Close() {
	p.closeOnce.Do(func() {
		if p.shader != nil {
			p.shader.Deallocate()
			p.shader = nil
		}
		p.vertices = nil
	})
}

func buildQuadIndices(quads int) []uint16 {
	indices := make([]uint16, 0, 6*quads)
	for q := 0; q < quads; q++ {
		base := uint16(4 * q)
		for _, idx := range QuadIndices {
			indices = append(indices, base+idx)
		}
	}
	return indices
}
