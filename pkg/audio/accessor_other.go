//go:build !windows

package audio

import "fmt"

type systemEndpoints struct {
	stack *Stack
}

func (this *systemEndpoints) defaultRenderEndpoint() (EndpointVolume, error) {
	return nil, fmt.Errorf("the audio output of this platform is not supported")
}
