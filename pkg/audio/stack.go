//go:build !windows

package audio

// Stack owns the process-wide initialization of the platform audio
// subsystem. On this platform there is nothing to initialize.
type Stack struct{}

func (this *Stack) Initialize() error {
	return nil
}

func (this *Stack) Dispose() error {
	return nil
}

func (this *Stack) ensureInitialized() error {
	return nil
}
