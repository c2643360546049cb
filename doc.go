// Package spiralgen turns arbitrary binary data into compact, self-avoiding
// right-angled spiral figures: from bit-level derivation through
// collision-aware length refinement to image output.
//
// 🚀 What is spiralgen?
//
//	A deterministic, single-threaded library that brings together:
//		• Core primitives: directions, turns, lines, figures, bounds and the
//		  shared path-walking visitor
//		• Collision oracle: occupancy-grid self-intersection probes, plain
//		  and owner-tagged
//		• Derivation: bits → turn sequence → collision-free "safe" lengths
//		• Refinement: shrink-from-end (default), grow-from-start and an
//		  experimental evolutionary policy behind one interface
//		• Codec: the big-endian binary figure file format
//		• Render: 1-bit raster (PBM/PNG/BMP) and SVG polyline backends
//
// ✨ Why choose spiralgen?
//
//   - Deterministic – same bytes in, same figure out, seeded randomness only
//   - Strict sentinels – every failure is a distinct, comparable error value
//   - Pure Go – no cgo, no hidden deps
//   - Policy-based – refinement strategies are interchangeable behind one call
//
// Under the hood, everything is organized under these subpackages:
//
//	core/    — Direction, Turn, Line, Figure, Bounds and the Walk primitive
//	collide/ — occupancy-grid collision probes
//	derive/  — byte sequence → unrefined figure
//	refine/  — length-refinement policies
//	codec/   — binary figure serialization
//	render/  — raster and vector image backends
//
// Quick ASCII example: the byte 0x6D derives the unrefined figure
//
//	░██░░
//	░████
//	░█░██
//	░█░█░
//	██░░░
//	█░░░░
//
// which refinement then folds into a tight spiral of unit-length lines.
//
//	go get github.com/spiralgen/spiralgen
package spiralgen
