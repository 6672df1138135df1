package audio

import (
	"fmt"

	"github.com/moutend/go-wca/pkg/wca"
)

type systemEndpoints struct {
	stack *Stack
}

func (this *systemEndpoints) defaultRenderEndpoint() (EndpointVolume, error) {
	if err := this.stack.ensureInitialized(); err != nil {
		return nil, err
	}

	var de *wca.IMMDeviceEnumerator
	if err := wca.CoCreateInstance(wca.CLSID_MMDeviceEnumerator, 0, wca.CLSCTX_ALL, wca.IID_IMMDeviceEnumerator, &de); err != nil {
		return nil, fmt.Errorf("cannot create IMMDeviceEnumerator instance: %w", err)
	}
	defer de.Release()

	var device *wca.IMMDevice
	if err := de.GetDefaultAudioEndpoint(wca.ERender, wca.EConsole, &device); err != nil {
		return nil, fmt.Errorf("cannot get default rendering IMMDevice: %w", err)
	}
	defer device.Release()

	var aev *wca.IAudioEndpointVolume
	if err := device.Activate(wca.IID_IAudioEndpointVolume, wca.CLSCTX_ALL, nil, &aev); err != nil {
		return nil, fmt.Errorf("cannot activate IAudioEndpointVolume on default rendering IMMDevice: %w", err)
	}

	return &endpointVolume{aev}, nil
}

type endpointVolume struct {
	v *wca.IAudioEndpointVolume
}

func (this *endpointVolume) GetMute() (muted bool, _ error) {
	if err := this.v.GetMute(&muted); err != nil {
		return false, err
	}
	return muted, nil
}

func (this *endpointVolume) SetMute(muted bool) error {
	return this.v.SetMute(muted, nil)
}

func (this *endpointVolume) GetVolumeScalar() (volume float32, _ error) {
	if err := this.v.GetMasterVolumeLevelScalar(&volume); err != nil {
		return 0, err
	}
	return volume, nil
}

func (this *endpointVolume) SetVolumeScalar(volume float32) error {
	return this.v.SetMasterVolumeLevelScalar(volume, nil)
}

func (this *endpointVolume) Release() {
	this.v.Release()
}
