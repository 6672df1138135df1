package common

import (
	"errors"
	"fmt"
)

const facilityWin32 = 0x80070000

// Hresult carries an operating system error code the way the platform
// reports it. The zero value is the success sentinel.
type Hresult uintptr

// HresultFromWin32 maps a Win32 last-error code to its Hresult form.
// Zero stays zero.
func HresultFromWin32(code uintptr) Hresult {
	if code == 0 {
		return 0
	}
	return Hresult(facilityWin32 | (code & 0xffff))
}

func (this Hresult) Failed() bool {
	return uint32(this)&0x80000000 != 0
}

func (this Hresult) String() string {
	return fmt.Sprintf("0x%X", uintptr(this))
}

// ErrorCodeOf extracts an OS error code from err, if it carries one.
func ErrorCodeOf(err error) (Hresult, bool) {
	var coded interface{ Code() uintptr }
	if errors.As(err, &coded) {
		return Hresult(coded.Code()), true
	}
	return 0, false
}
