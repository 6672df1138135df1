package audio

import (
	"fmt"
	"sync"

	"github.com/go-ole/go-ole"
)

// Stack owns the process-wide initialization of the platform audio
// subsystem. Initialize has to be called before the first Accessor is
// created and Dispose tears the subsystem down exactly once.
type Stack struct {
	initialized bool
	mutex       sync.RWMutex
}

func (this *Stack) Initialize() error {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	if this.initialized {
		return nil
	}

	if err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); err != nil {
		return fmt.Errorf("failed to initialize ole: %v", err)
	}

	this.initialized = true
	return nil
}

func (this *Stack) Dispose() error {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	if !this.initialized {
		return nil
	}

	ole.CoUninitialize()
	this.initialized = false

	return nil
}

func (this *Stack) ensureInitialized() error {
	this.mutex.RLock()
	defer this.mutex.RUnlock()

	if !this.initialized {
		return fmt.Errorf("not initialized")
	}
	return nil
}
