package render

import (
	"ripplefield/internal/ripple"
)

// Uniform names shared by ShaderSource and the pipelines.
const (
	uniformTime   = "Time"
	uniformCycle  = "Cycle"
	uniformCorner = "Corner"
	uniformIdle   = "Idle"
	uniformBright = "Bright"
)

// ShaderSource is the Kage fragment program of the marker pipeline. Each
// vertex carries its quad-local coordinate in custom.xy and the instance
// delay in custom.z.
var ShaderSource = []byte(`//kage:unit pixels

package main

var Time float
var Cycle float
var Corner float
var Idle vec3
var Bright vec3

func envelope(x float) float {
	if x < 0.03 {
		return smoothstep(0.0, 0.03, x)
	}
	if x < 0.10 {
		return 1.0
	}
	return 1.0 - (x-0.10)/0.90
}

func Fragment(dstPos vec4, srcPos vec2, color vec4, custom vec4) vec4 {
	a := abs(custom.xy) - vec2(0.5) + vec2(Corner)
	// Compared against Corner so the marker keeps its full edge and the
	// arc test below can round the corners. Mirrors ripple.InsideRoundedSquare.
	if max(a.x, a.y) > Corner {
		discard()
	}
	q := max(a, vec2(0.0))
	if length(q)-Corner > 0.0 {
		discard()
	}
	t := mod(Time+custom.z, Cycle)
	w := envelope(t / Cycle)
	return vec4(mix(Idle, Bright, w), 1.0)
}
`)

// ShadePixel is the CPU twin of ShaderSource's Fragment. It reports false for
// pixels the mask rejects; those must not be written.
func ShadePixel(u, v, delay float64, uni Uniforms) (LinearRGB, bool) {
	if !ripple.InsideRoundedSquare(u, v, uni.Corner) {
		return LinearRGB{}, false
	}
	w := ripple.InstanceIntensity(uni.Time, delay, uni.Cycle)
	return uni.Theme.Idle.Lerp(uni.Theme.Bright, float32(w)), true
}
