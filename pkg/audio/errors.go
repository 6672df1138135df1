package audio

import (
	"errors"
	"fmt"

	"github.com/blaubaer/host-remote/pkg/common"
)

// ErrVolumeOutOfRange is reported before any call towards the operating
// system is made.
var ErrVolumeOutOfRange = errors.New("volume needs to be between 0.0 and 1.0 inclusive")

// EndpointError indicates that a call on the already activated endpoint
// failed inside the operating system's audio subsystem.
type EndpointError struct {
	Op    string
	Cause error
}

func (this *EndpointError) Error() string {
	if code, ok := common.ErrorCodeOf(this.Cause); ok {
		return fmt.Sprintf("cannot %s (%v)", this.Op, code)
	}
	return fmt.Sprintf("cannot %s: %v", this.Op, this.Cause)
}

func (this *EndpointError) Unwrap() error {
	return this.Cause
}
