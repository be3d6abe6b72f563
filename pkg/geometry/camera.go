package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// CameraConfig describes a camera in scene terms
type CameraConfig struct {
	Width       int        // Image width in pixels
	Height      int        // Image height in pixels
	FieldOfView float64    // Horizontal (or vertical, for tall images) field of view in radians
	From        core.Tuple // Eye position
	To          core.Tuple // Point looked at
	Up          core.Tuple // Approximate up direction
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.FieldOfView != 0 {
		result.FieldOfView = override.FieldOfView
	}
	if override.From != (core.Tuple{}) {
		result.From = override.From
	}
	if override.To != (core.Tuple{}) {
		result.To = override.To
	}
	if override.Up != (core.Tuple{}) {
		result.Up = override.Up
	}
	return result
}

// Camera maps pixels of an HSize x VSize canvas to world space rays. The
// canvas sits one unit in front of the eye, which looks down -z before the
// view transform is applied.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transform core.Matrix
	inverse   core.Matrix

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera with identity view transform
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hsize)

	return c
}

// NewCameraFromConfig creates a camera oriented by the config's view transform
func NewCameraFromConfig(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("camera size must be positive, got %dx%d", config.Width, config.Height)
	}
	if config.FieldOfView <= 0 || config.FieldOfView >= math.Pi {
		return nil, fmt.Errorf("camera field of view must be in (0, pi), got %f", config.FieldOfView)
	}

	// A zero forward or up vector normalizes to NaN, which Inverse cannot catch
	forward := config.To.Subtract(config.From)
	if forward.Magnitude() < core.Epsilon {
		return nil, fmt.Errorf("camera from and to must differ, both are %v", config.From)
	}
	if config.Up.Magnitude() < core.Epsilon {
		return nil, fmt.Errorf("camera up must not be zero")
	}
	if forward.Normalize().Cross(config.Up.Normalize()).Magnitude() < core.Epsilon {
		return nil, fmt.Errorf("camera up %v is parallel to the view direction", config.Up)
	}

	camera := NewCamera(config.Width, config.Height, config.FieldOfView)
	if err := camera.SetTransform(core.ViewTransform(config.From, config.To, config.Up)); err != nil {
		return nil, err
	}
	return camera, nil
}

// Transform returns the view transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// SetTransform replaces the view transform
func (c *Camera) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform = m
	c.inverse = inverse
	return nil
}

// PixelSize returns the world space size of one pixel on the canvas
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// Cast returns the ray from the eye through the center of pixel (x, y)
func (c *Camera) Cast(x, y int) core.Ray {
	xOffset := (float64(x) + 0.5) * c.pixelSize
	yOffset := (float64(y) + 0.5) * c.pixelSize

	// +x is to the left because the camera looks down -z
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.Point(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.Point(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
