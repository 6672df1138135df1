package macro

import (
	"errors"
	"fmt"

	"github.com/blaubaer/host-remote/pkg/common"
)

// ErrTargetNotRunning indicates that no window with the configured title
// exists at call time.
var ErrTargetNotRunning = errors.New("could not find running Translator instance to send message to")

// DeliveryError indicates that the message send reported a failure with a
// genuine error code.
type DeliveryError struct {
	Code common.Hresult
}

func (this *DeliveryError) Error() string {
	return fmt.Sprintf("failed to execute Translator macro (%v)", this.Code)
}
