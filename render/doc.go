// Package render turns figures into images.
//
// What: RenderBitmap rasterizes a figure onto a boolean Bitmap, which the
// raster encoders serialize to PBM, PNG or BMP. EncodeSVG bypasses the
// bitmap and emits the figure's vertices as a single vector polyline.
//
// Rasterization traces the figure at twice its natural scale so that
// adjacent parallel path segments stay visually separated by one blank
// pixel. The second point of the trace is deliberately left unplotted: the
// resulting notch marks the figure's start and orientation. The y axis is
// flipped on the way into the bitmap, so +y in figure space is up in the
// image, matching how the paths are reasoned about everywhere else.
//
// Figures with zero-length lines are not renderable; callers refine first.
package render
