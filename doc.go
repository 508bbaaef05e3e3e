// Package colorblind simulates color vision deficiencies and measures the
// contrast of color pairs against accessibility guidelines.
//
// # Overview
//
// colorblind is a small, pure Go numeric library. It answers two questions
// about a pair of on-screen colors: how do they look to someone missing one
// of the three cone types, and is their contrast still high enough for the
// WCAG and ISO 9241-3 guidelines?
//
// # Quick Start
//
//	import "github.com/gogpu/colorblind"
//
//	fg, _ := colorblind.ParseHex("#cc1a99")
//	bg, _ := colorblind.ParseHex("#1acc33")
//
//	// How the foreground looks with deuteranopia
//	seen := colorblind.SimulateGamma8(colorblind.Deuteranopia, fg)
//
//	// Worst WCAG contrast across every impairment
//	a := colorblind.Assess(colorblind.WCAGContrastAA, fg, bg)
//	fmt.Println(a.Worst, a.Value(), a.Pass)
//
// # Color Domains
//
// Colors come in two forms: [RGB] with float32 components in [0, 1] and
// [RGB8] with bytes. Functions that only read colors, such as [Contrast]
// and [Luminance], are generic over both. Simulation is defined on linear
// light ([Simulate]); the SimulateGamma variants wrap it with gamma removal
// and reapplication for sRGB input.
//
// # Gamma
//
// The gamma strategy is chosen once per [Space]. The package-level
// functions use the accurate piecewise sRGB curve; [NewSpace] with
// [WithGamma] selects the cheaper power 2.2 or square-root curves, and
// [WithCurve] injects a custom one.
//
// # Metrics
//
//   - WCAG contrast: (High+0.05) / (Low+0.05), from 1 to 21
//   - ISO 9241-3 contrast ratio: High / Low, undefined for black
//   - ISO 9241-3 contrast modulation: (High-Low) / (High+Low), from 0 to 1
//
// # Concurrency
//
// Every function is safe for concurrent use. Tables are read-only after
// package initialization.
package colorblind

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
