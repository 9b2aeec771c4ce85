// Package greatcircle computes great-circle distances and arc midpoints on
// a spherical Earth. Inputs and outputs are decimal degrees; distances are
// miles unless rescaled with a Unit. Every function is pure and safe for
// concurrent use.
package greatcircle
