// Package colorfx computes per-domain color adjustments for web pages as
// 4x5 affine color matrices.
//
// # Overview
//
// Given a [Params] record (hue rotation, contrast, brightness, saturation,
// tint, sepia), colorfx builds one 5x5 homogeneous [ColorMatrix] per effect,
// composes them into a single forward transform and derives an inverse
// transform. The forward transform is applied to the whole page; the
// inverse is applied to images, video, SVG and text so that those elements
// are not adjusted twice.
//
// # Quick Start
//
//	p := colorfx.DefaultParams()
//	p.Hue = 30
//	p.Contrast = 1.2
//
//	f := colorfx.Build(p)
//	fmt.Println(f.ForwardValues()) // 20 numbers for feColorMatrix values
//	fmt.Println(f.InverseValues())
//
// # Pipeline
//
// The combined forward transform is
//
//	boost · tint · hue · contrast · brightness · saturation
//
// with saturation applied to the color first. The order is fixed; the
// operations do not commute.
//
// # Inverse Strategies
//
// [InverseParametric] (the default) builds a second pipeline from
// parameter-level opposites. It is an approximation: visually close for
// small adjustments, diverging for large ones. [InverseExact] inverts the
// forward matrix by Gauss-Jordan elimination with partial pivoting and
// substitutes the identity for singular matrices, reporting it through
// [Filter.Singular] and a warning on the package logger.
//
// # Sepia-only Mode
//
// [ModeSepia] skips composition and interpolates the standard sepia matrix
// by [Params.Sepia]. Its parametric inverse interpolates a fixed-point
// inverse table; its exact inverse uses Gauss-Jordan.
//
// # Sub-packages
//
//   - stylesheet: SVG filter definitions and CSS for a web page
//   - registry: idempotent upsert/remove of filter definitions by id
//   - config: TOML per-domain parameter files and change watching
//   - preview: CPU rendering of filters onto raster images
//   - shader: WGSL color-matrix shader and uniform packing for GPUs
//   - typeface: font family resolution for the font override
//   - cache: LRU cache behind [Builder], which memoizes [Build]
package colorfx
