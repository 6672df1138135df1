package macro

import (
	"fmt"
	"runtime"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/blaubaer/host-remote/pkg/common"
)

const (
	wmCopyData      = 0x004a
	smtoAbortIfHung = 0x0002
)

var (
	dllUser32              = syscall.NewLazyDLL("user32.dll")
	procFindWindow         = dllUser32.NewProc("FindWindowW")
	procSendMessageTimeout = dllUser32.NewProc("SendMessageTimeoutW")

	dllKernel32      = syscall.NewLazyDLL("kernel32.dll")
	procSetLastError = dllKernel32.NewProc("SetLastError")

	defaultMessenger windowMessenger = &systemMessenger{}
)

type copyDataStruct struct {
	dwData uintptr
	cbData uint32
	lpData unsafe.Pointer
}

type systemMessenger struct{}

func (this *systemMessenger) findWindow(title string) (uintptr, bool, error) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, false, fmt.Errorf("cannot allocate window title: %w", err)
	}

	window, _, _ := procFindWindow.Call(0, uintptr(unsafe.Pointer(titlePtr)))
	return window, window != 0, nil
}

func (this *systemMessenger) sendCopyData(window uintptr, id uintptr, payload []byte, timeout time.Duration) (bool, common.Hresult, error) {
	cds := copyDataStruct{
		dwData: id,
		cbData: uint32(len(payload)),
	}
	if len(payload) > 0 {
		cds.lpData = unsafe.Pointer(&payload[0])
	}

	// The last-error has to be cleared and read back on the OS thread the
	// send runs on.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	_, _, _ = procSetLastError.Call(0)

	var result uintptr
	r1, _, callErr := procSendMessageTimeout.Call(
		window,
		wmCopyData,
		0,
		uintptr(unsafe.Pointer(&cds)),
		smtoAbortIfHung,
		uintptr(timeout.Milliseconds()),
		uintptr(unsafe.Pointer(&result)),
	)
	runtime.KeepAlive(payload)

	var code common.Hresult
	if errno, ok := callErr.(syscall.Errno); ok {
		code = common.HresultFromWin32(uintptr(errno))
	}

	return r1 != 0, code, nil
}
