package renderer

import (
	"math"

	"github.com/robalar/go-path-tracer/pkg/core"
)

// CameraConfig contains camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look-from)
	LookAt        core.Vec3 // Point the camera is aimed at
	Up            core.Vec3 // World up direction
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens aperture diameter (0 = pinhole)
	FocusDistance float64   // Distance to the focal plane (0 = auto from LookAt)
}

// MergeCameraConfig merges override values into a base config.
// Zero-valued fields in the override leave the base value in place.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	if override.Center != (core.Vec3{}) {
		merged.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		merged.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		merged.Up = override.Up
	}
	if override.Width != 0 {
		merged.Width = override.Width
	}
	if override.AspectRatio != 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	if override.Aperture != 0 {
		merged.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		merged.FocusDistance = override.FocusDistance
	}
	return merged
}

// Camera generates world-space rays from viewport coordinates, with lens
// jitter for depth of field
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3 // Camera basis vectors spanning the lens plane
	lensRadius      float64
	Width           int // Image width in pixels
	Height          int // Image height in pixels, floor(Width / AspectRatio)
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)

	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	// Orthonormal basis: w points from the target back toward the camera
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		// Auto-focus on the look-at point
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	origin := config.Center
	horizontal := u.Multiply(focusDistance * viewportWidth)
	vertical := v.Multiply(focusDistance * viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      config.Aperture / 2,
		Width:           config.Width,
		Height:          int(float64(config.Width) / config.AspectRatio),
	}
}

// GetRay generates a ray for viewport coordinates (s, t) with 0 <= s,t <= 1,
// where t = 1 is the top of the image. The ray origin is jittered on the
// lens disk while the focal point stays fixed, producing depth-of-field blur.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}
