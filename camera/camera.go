// Package camera defines the boundary to camera devices: a device reference and the
// repository capability that use cases call. Transport and protocol details live in
// Repository implementations outside this module.
package camera

import (
	"context"

	"github.com/rise-and-shine/mediadevice/val"
)

// Device identifies a discovered camera device.
type Device struct {
	// ID is the stable device identifier (e.g. the endpoint reference address).
	ID string `json:"id" yaml:"id" validate:"required"`

	// Name is a human readable device name.
	Name string `json:"name" yaml:"name"`

	// XAddr is the device service address.
	XAddr string `json:"xaddr" yaml:"xaddr" validate:"omitempty,url"`

	// StreamURI is the media stream the device serves.
	StreamURI string `json:"stream_uri" yaml:"stream_uri" validate:"omitempty,stream_uri"`

	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password" mask:"true"`
}

// Validate checks the device reference.
func (d Device) Validate() error {
	return val.ValidateSchema(d)
}

// Repository is the camera device capability used by use cases.
//
//go:generate mockgen -source=camera.go -destination=mock_repository.go -package=camera
type Repository interface {
	// SendSpsPps sends the SPS/PPS codec parameter sets of the given media session
	// to the device. It blocks until the device acknowledged the request.
	SendSpsPps(ctx context.Context, device Device, sessionID int) (bool, error)
}
