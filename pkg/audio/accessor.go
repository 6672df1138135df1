package audio

import (
	"fmt"
)

// EndpointVolume is the volume control surface of an audio rendering
// endpoint as the operating system exposes it.
type EndpointVolume interface {
	GetMute() (bool, error)
	SetMute(bool) error
	GetVolumeScalar() (float32, error)
	SetVolumeScalar(float32) error
	Release()
}

type endpointResolver interface {
	defaultRenderEndpoint() (EndpointVolume, error)
}

// Accessor provides read/write access to the volume and mute state of the
// system's default audio output.
//
// The endpoint is resolved once at construction time and never refreshed;
// if the system default output changes afterwards the Accessor keeps
// addressing the old one until it is recreated.
type Accessor struct {
	endpoint EndpointVolume
}

// NewAccessor resolves the current default rendering endpoint and activates
// its volume control. It fails if there is no device enumerator, no default
// rendering endpoint or the endpoint cannot be activated; in every of these
// cases there is no usable instance and no retry happens internally.
func NewAccessor(stack *Stack) (*Accessor, error) {
	return newAccessor(&systemEndpoints{stack})
}

func newAccessor(using endpointResolver) (*Accessor, error) {
	endpoint, err := using.defaultRenderEndpoint()
	if err != nil {
		return nil, fmt.Errorf("cannot access volume control of default audio output: %w", err)
	}
	return &Accessor{endpoint: endpoint}, nil
}

func (this *Accessor) Muted() (bool, error) {
	muted, err := this.endpoint.GetMute()
	if err != nil {
		return false, &EndpointError{Op: "get muted state", Cause: err}
	}
	return muted, nil
}

func (this *Accessor) SetMuted(muted bool) error {
	if err := this.endpoint.SetMute(muted); err != nil {
		return &EndpointError{Op: "set muted state", Cause: err}
	}
	return nil
}

// Volume returns the master volume of the endpoint as a scalar within
// [0.0, 1.0].
func (this *Accessor) Volume() (float32, error) {
	volume, err := this.endpoint.GetVolumeScalar()
	if err != nil {
		return 0, &EndpointError{Op: "get volume", Cause: err}
	}
	return volume, nil
}

// SetVolume sets the master volume of the endpoint. Values outside of
// [0.0, 1.0] are rejected with ErrVolumeOutOfRange before the operating
// system is contacted.
func (this *Accessor) SetVolume(volume float32) error {
	if volume < 0.0 || volume > 1.0 {
		return ErrVolumeOutOfRange
	}
	if err := this.endpoint.SetVolumeScalar(volume); err != nil {
		return &EndpointError{Op: "set volume", Cause: err}
	}
	return nil
}

// Close releases the endpoint handle. The Accessor is unusable afterwards.
func (this *Accessor) Close() error {
	if this.endpoint != nil {
		this.endpoint.Release()
		this.endpoint = nil
	}
	return nil
}
