package core

import "math"

// GammaCorrect applies gamma correction to color values
func (v Vec3) GammaCorrect(gamma float64) Vec3 {
	invGamma := 1.0 / gamma
	return Vec3{
		X: math.Pow(v.X, invGamma),
		Y: math.Pow(v.Y, invGamma),
		Z: math.Pow(v.Z, invGamma),
	}
}

// ToRGB8 maps a linear color to discrete 8-bit channels using the
// clamped rescale-and-truncate rule: floor(256 * clamp(c, 0, 0.999)).
// Each result is guaranteed to land in [0, 255].
func (v Vec3) ToRGB8() (r, g, b uint8) {
	c := v.Clamp(0.0, 0.999)
	return uint8(256 * c.X), uint8(256 * c.Y), uint8(256 * c.Z)
}
