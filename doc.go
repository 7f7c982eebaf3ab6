// Package dragon computes Heighway dragon curves and encodes them as path
// descriptions for vector graphics canvases.
//
// # Curves
//
// A dragon curve of order n between two points is built by folding the segment
// between them n times. Each fold treats a segment as the hypotenuse of an
// isosceles right triangle and replaces it by the triangle's two legs, the first
// folded to one side and the second to the other. [Vertices] and [Generate]
// produce the resulting 2^n vertices in drawing order. The start point is never
// part of the sequence; the last vertex is always the end point.
//
// # Paths
//
// [Path] is a slice of drawing commands ([MoveTo], [LineTo] and [ArcTo]) that
// can be written in SVG path syntax with [Path.SVG] or [WriteSVG] and read back
// with [ParseSVG]. Three encoders turn a vertex sequence into a path:
//
//   - [SharpPath] draws straight lines between the vertices.
//   - [RoundedPath] replaces each corner with a circular arc bending in the
//     direction of the turn.
//   - [SkewedPath] stops each line short of its vertex, cutting corners.
//
// [Style] names these encodings, and [Build] and [BuildCurvePath] tie
// generation and encoding together, guarding against orders large enough to
// exhaust memory (see [Options.MaxOrder]) and recommending a stroke width that
// shrinks along with the segments.
//
// # Geometry
//
// Points, vectors, lines, rectangles and affine transforms are small value
// types. Angles are in radians, and positive angles rotate the positive x axis
// towards positive y, which is clockwise in the y-down coordinate systems common
// to graphics.
package dragon
