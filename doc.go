// Package symcode assembles the finder, transform, rectify, and codec
// stages into a single scan/generate pipeline for a visual symbol code:
// a photographed or rendered grid of distinctive glyph shapes, located
// by four circular finder marks, carrying a CRC-5-checked payload.
package symcode
