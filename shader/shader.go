// Package shader carries the GPU form of the deficiency simulation: a WGSL
// compute shader, its uniform layout and its bind group layout.
//
// The package does not own a device. Callers create buffers and pipelines
// with their own wgpu setup and use the pieces here to fill them:
//
//	spirv, err := shader.Compile()
//	layout := shader.BindGroupLayout()
//	params := shader.NewParams(colorblind.Deuteranopia, colorblind.GammaAccurate, n)
//	queue.WriteBuffer(paramsBuf, 0, params.Bytes())
//	pass.Dispatch(shader.Workgroups(n), 1, 1)
package shader

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"

	"github.com/gogpu/colorblind"
)

//go:embed shaders/simulate.wgsl
var simulateWGSL string

// WorkgroupSize is the compute workgroup width declared by the shader.
const WorkgroupSize = 64

// ParamsSize is the size in bytes of the uniform block.
const ParamsSize = 64

// Binding indices in group 0.
const (
	BindingParams = 0
	BindingInput  = 1
	BindingOutput = 2
)

// Source returns the WGSL source of the simulation shader.
func Source() string { return simulateWGSL }

// Compile compiles the shader to SPIR-V words.
func Compile() ([]uint32, error) {
	spirvBytes, err := naga.Compile(simulateWGSL)
	if err != nil {
		return nil, fmt.Errorf("shader: failed to compile simulate shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("shader: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}

	colorblind.Logger().Debug("shader: compiled simulate shader", slog.Int("words", len(words)))
	return words, nil
}

// BindGroupLayout returns the entries of bind group 0: the uniform params,
// the read-only input pixels and the output pixels.
func BindGroupLayout() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    BindingParams,
			Visibility: gputypes.ShaderStageCompute,
			Buffer: &gputypes.BufferBindingLayout{
				Type:           gputypes.BufferBindingTypeUniform,
				MinBindingSize: ParamsSize,
			},
		},
		{
			Binding:    BindingInput,
			Visibility: gputypes.ShaderStageCompute,
			Buffer: &gputypes.BufferBindingLayout{
				Type: gputypes.BufferBindingTypeReadOnlyStorage,
			},
		},
		{
			Binding:    BindingOutput,
			Visibility: gputypes.ShaderStageCompute,
			Buffer: &gputypes.BufferBindingLayout{
				Type: gputypes.BufferBindingTypeStorage,
			},
		},
	}
}

// BufferUsages returns the usage flags for the params, input and output
// buffers. The output can be copied back for readback.
func BufferUsages() (params, input, output gputypes.BufferUsage) {
	params = gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst
	input = gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst
	output = gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc
	return params, input, output
}

// PixelBufferSize returns the byte size of a buffer of count vec4<f32> pixels.
func PixelBufferSize(count uint32) uint64 {
	return uint64(count) * 16
}

// Workgroups returns the number of workgroups needed to cover count pixels.
func Workgroups(count uint32) uint32 {
	return (count + WorkgroupSize - 1) / WorkgroupSize
}

// Params mirrors the uniform block of the shader.
type Params struct {
	// Rows of the deficiency matrix, each padded to a vec4.
	Rows  [3][4]float32
	Mode  colorblind.GammaMode
	Count uint32
}

// NewParams fills the uniform block for simulating impairment i with the
// given gamma mode over count pixels. Unknown modes use the accurate curve,
// matching GammaMode.Curve.
func NewParams(i colorblind.Impairment, mode colorblind.GammaMode, count uint32) Params {
	switch mode {
	case colorblind.GammaAccurate, colorblind.GammaFast, colorblind.GammaFastest:
	default:
		mode = colorblind.GammaAccurate
	}

	p := Params{Mode: mode, Count: count}
	m := i.Matrix()
	for r := range m {
		p.Rows[r] = [4]float32{m[r][0], m[r][1], m[r][2], 0}
	}
	return p
}

// Bytes encodes p in the std140 layout of the shader's Params struct.
func (p Params) Bytes() []byte {
	buf := make([]byte, ParamsSize)
	for r, row := range p.Rows {
		for c, v := range row {
			off := r*16 + c*4
			binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(v))
		}
	}
	binary.LittleEndian.PutUint32(buf[48:52], uint32(p.Mode))
	binary.LittleEndian.PutUint32(buf[52:56], p.Count)
	// buf[56:64] is padding.
	return buf
}

// PackPixels converts 8-bit NRGBA pixel data to normalized vec4<f32>
// words for the input buffer.
func PackPixels(pix []uint8) []byte {
	out := make([]byte, len(pix)/4*16)
	for i := 0; i+3 < len(pix); i += 4 {
		off := i * 4
		for c := 0; c < 4; c++ {
			v := float32(pix[i+c]) / 255
			binary.LittleEndian.PutUint32(out[off+c*4:], math.Float32bits(v))
		}
	}
	return out
}

// UnpackPixels converts output buffer contents back to 8-bit NRGBA,
// clamping and rounding each component.
func UnpackPixels(data []byte) []uint8 {
	out := make([]uint8, len(data)/16*4)
	for i := range out {
		v := math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		out[i] = colorblind.RGB{R: v}.Clamp().Denorm().R
	}
	return out
}
