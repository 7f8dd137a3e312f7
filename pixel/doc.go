// Package pixel implements the 2D planes that volumetric images are stacked from.
//
// A plane is a fixed size pixel buffer with one of three depths: 1-bit binary, 8-bit gray or 32-bit
// integer values. All planes are compatible with Go's native [image.Image] / [draw.Image] interfaces,
// and additionally expose their pixels as plain uint32 values through the [Plane] interface.
package pixel
