// Package imaging loads source images for the mosaic pipeline and provides
// the image-level helpers around it.
//
// This package decodes image files into a uniform pixel buffer, describes
// colours for reporting, draws cell-boundary previews, and encodes results
// for transport. All operations use a coordinate system where (0,0) is at
// the top-left corner, X increases rightward, and Y increases downward.
//
// # Supported Formats
//
// Decoding goes through github.com/disintegration/imaging with EXIF
// auto-orientation. PNG, JPEG, GIF, BMP, TIFF and WebP are registered.
// Every loaded image is normalised to *image.NRGBA anchored at (0,0), so
// callers can sample non-premultiplied 8-bit channels directly.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Loaded images are never
// mutated; helpers that draw always work on a copy.
//
// # Color Representation
//
// Colors are described in several formats:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGBA: 8-bit components with alpha (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - File I/O errors during image loading
//   - Undecodable or zero-sized images
//   - Malformed hex color strings
//   - Encoding errors during image output
package imaging
