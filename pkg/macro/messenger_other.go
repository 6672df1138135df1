//go:build !windows

package macro

import (
	"fmt"
	"time"

	"github.com/blaubaer/host-remote/pkg/common"
)

var defaultMessenger windowMessenger = &unsupportedMessenger{}

type unsupportedMessenger struct{}

func (this *unsupportedMessenger) findWindow(string) (uintptr, bool, error) {
	return 0, false, fmt.Errorf("the windowing system of this platform is not supported")
}

func (this *unsupportedMessenger) sendCopyData(uintptr, uintptr, []byte, time.Duration) (bool, common.Hresult, error) {
	return false, 0, fmt.Errorf("the windowing system of this platform is not supported")
}
