// Package sphere provides the geometric primitives for electrode position
// computation on a unit sphere.
//
// All operations are pure functions over [Point] values. Electrode positions
// live on the unit sphere (radius 1, centered at the origin); intermediate
// arithmetic (circle centers, plane normals) is allowed off the sphere, but
// every point returned by [FindPointAtFraction] satisfies ‖p‖ = 1 within
// 1e-9 for well-conditioned inputs.
//
// # Coordinate system
//
// Coordinates follow the RAS convention (Right, Anterior, Superior): the
// x-axis points from the subject's left ear to the right ear, the y-axis
// points to the front (nasion), and the z-axis points up through the vertex.
//
// # Core operations
//
//   - [FindPointAtFraction]: the computational kernel. Given three points on
//     the sphere defining a circle, it returns the point at an arbitrary
//     fraction of arc length between two of them.
//   - [Project]: stereographic projection of sphere points onto a plane for
//     2D display.
//
// Both are deterministic and allocation-free.
package sphere
