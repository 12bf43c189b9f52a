// Package rav1e implements the geometric and predictive core of an AV1
// encoder.
//
// # Overview
//
// rav1e is a Go port of the block-geometry and pixel-prediction layer of
// the rav1e encoder. It covers the coding geometry (block, transform and
// partition size tables), neighbor availability inside a superblock, the
// intra edge buffer, intra and inter prediction, and the motion and
// reference primitives those operations consume.
//
// # Quick Start
//
//	import "github.com/xuguangxin/rav1e"
//
//	// A 64x64 luma plane with a reconstructed border.
//	plane := rav1e.NewPlane[uint8](64, 64, 0, 0)
//	region := plane.AsRegion()
//	tile := rav1e.TileRect{Width: 64, Height: 64}
//
//	// Build the edge buffer and predict one 16x16 block.
//	var edge rav1e.IntraEdge[uint8]
//	rav1e.GetIntraEdges(&edge, &region, rav1e.PlaneOffset{X: 16, Y: 16},
//		rav1e.Tx16x16, 8, rav1e.DcPred, 0)
//	blk := region.Subregion(16, 16, 16, 16)
//	rav1e.PredictIntra(tile, &blk, rav1e.Tx16x16, 8, nil,
//		rav1e.DcPred, 0, 0, &edge)
//
// # Architecture
//
// The library is organized into:
//   - Public API: geometry tables, Plane/PlaneRegion, IntraEdge,
//     PredictIntra, PredictInter, FrameInvariants
//   - pixel: the generic sample constraint shared by all layers
//   - dsp: the per-mode pixel-fill kernels and 8-tap sub-pixel filters
//   - mux: container writers (IVF, Y4M) for encoder output
//
// # Coordinate System
//
// Pixel coordinates have the origin at the top-left, x increasing right
// and y increasing down. Block positions use "mi" units of 4 pixels.
// Motion vectors are in eighth-pixel units.
//
// # Concurrency
//
// The prediction functions are pure: they read shared immutable state
// (reference planes, FrameInvariants) and write only the destination
// region. Callers may run them from many goroutines as long as each call
// owns its destination exclusively.
package rav1e
