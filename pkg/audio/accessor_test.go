package audio

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaubaer/host-remote/pkg/common"
)

func TestAccessor_SetVolume_roundTrip(t *testing.T) {
	for _, v := range []float32{0.0, 0.25, 0.37, 0.5, 1.0} {
		endpoint := &stubEndpoint{}
		instance := &Accessor{endpoint: endpoint}

		require.NoError(t, instance.SetVolume(v))

		actual, err := instance.Volume()
		require.NoError(t, err)
		assert.InDelta(t, v, actual, 1e-7)
	}
}

func TestAccessor_SetVolume_outOfRange(t *testing.T) {
	for _, v := range []float32{-0.1, 1.1, -1, 2} {
		endpoint := &stubEndpoint{}
		instance := &Accessor{endpoint: endpoint}

		err := instance.SetVolume(v)

		assert.ErrorIs(t, err, ErrVolumeOutOfRange)
		assert.Empty(t, endpoint.calls, "no OS call expected for volume %v", v)
	}
}

func TestAccessor_SetMuted_roundTrip(t *testing.T) {
	endpoint := &stubEndpoint{}
	instance := &Accessor{endpoint: endpoint}

	require.NoError(t, instance.SetVolume(0.37))

	require.NoError(t, instance.SetMuted(true))
	muted, err := instance.Muted()
	require.NoError(t, err)
	assert.True(t, muted)

	require.NoError(t, instance.SetMuted(false))
	muted, err = instance.Muted()
	require.NoError(t, err)
	assert.False(t, muted)

	// Mute state changes do not touch the stored volume.
	actual, err := instance.Volume()
	require.NoError(t, err)
	assert.InDelta(t, 0.37, actual, 1e-7)
}

func TestAccessor_endpointFailures(t *testing.T) {
	cause := &stubOsError{code: 0x88890008}
	endpoint := &stubEndpoint{failWith: cause}
	instance := &Accessor{endpoint: endpoint}

	_, err := instance.Volume()
	ee, ok := common.AsError[*EndpointError](err)
	require.True(t, ok)
	assert.Equal(t, "cannot get volume (0x88890008)", ee.Error())

	err = instance.SetVolume(0.5)
	_, ok = common.AsError[*EndpointError](err)
	assert.True(t, ok)

	_, err = instance.Muted()
	_, ok = common.AsError[*EndpointError](err)
	assert.True(t, ok)

	err = instance.SetMuted(true)
	ee, ok = common.AsError[*EndpointError](err)
	require.True(t, ok)
	assert.ErrorIs(t, ee, cause)
}

func TestNewAccessor_constructionFailure(t *testing.T) {
	instance, err := newAccessor(&failingResolver{errors.New("no default device")})

	require.Nil(t, instance)
	assert.ErrorContains(t, err, "cannot access volume control of default audio output")
	assert.ErrorContains(t, err, "no default device")
}

func TestAccessor_Close_releasesEndpoint(t *testing.T) {
	endpoint := &stubEndpoint{}
	instance := &Accessor{endpoint: endpoint}

	require.NoError(t, instance.Close())

	assert.True(t, endpoint.released)
}

type stubEndpoint struct {
	muted    bool
	volume   float32
	calls    []string
	failWith error
	released bool
}

func (this *stubEndpoint) GetMute() (bool, error) {
	this.calls = append(this.calls, "GetMute")
	return this.muted, this.failWith
}

func (this *stubEndpoint) SetMute(muted bool) error {
	this.calls = append(this.calls, "SetMute")
	if this.failWith != nil {
		return this.failWith
	}
	this.muted = muted
	return nil
}

func (this *stubEndpoint) GetVolumeScalar() (float32, error) {
	this.calls = append(this.calls, "GetVolumeScalar")
	return this.volume, this.failWith
}

func (this *stubEndpoint) SetVolumeScalar(volume float32) error {
	this.calls = append(this.calls, "SetVolumeScalar")
	if this.failWith != nil {
		return this.failWith
	}
	this.volume = volume
	return nil
}

func (this *stubEndpoint) Release() {
	this.released = true
}

type stubOsError struct {
	code uintptr
}

func (this *stubOsError) Error() string {
	return fmt.Sprintf("os failure %X", this.code)
}

func (this *stubOsError) Code() uintptr {
	return this.code
}

type failingResolver struct {
	err error
}

func (this *failingResolver) defaultRenderEndpoint() (EndpointVolume, error) {
	return nil, this.err
}
