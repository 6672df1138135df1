package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/blaubaer/host-remote/pkg/common"
	"github.com/blaubaer/host-remote/pkg/macro"
)

func NewConfiguration() Configuration {
	return Configuration{
		false,

		MacroConfiguration{
			macro.DefaultWindowTitle,
			macro.DefaultSendTimeout,
			"Translator",
		},
	}
}

type Configuration struct {
	PreventAutoSave bool `yaml:"preventAutoSave"`

	Macro MacroConfiguration `yaml:"macro,omitempty"`
}

type MacroConfiguration struct {
	// TargetWindowTitle is the exact title of the top-level window macro
	// requests are delivered to.
	TargetWindowTitle string `yaml:"targetWindowTitle,omitempty"`

	SendTimeout time.Duration `yaml:"sendTimeout,omitempty"`

	// ProcessHint is a process name fragment used to tell an absent window
	// apart from an absent application when reporting the status.
	ProcessHint string `yaml:"processHint,omitempty"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("preventAutoSave", "If provided configuration will NOT automatically be saved upon changes.").
		Envar("HR_PREVENT_AUTO_SAVE").
		BoolVar(&this.PreventAutoSave)
	using.Flag("macro.target", "Exact title of the top-level window macro requests are delivered to.").
		Envar("HR_MACRO_TARGET").
		StringVar(&this.Macro.TargetWindowTitle)
	using.Flag("macro.timeout", "How long a macro delivery may block before it is given up.").
		Envar("HR_MACRO_TIMEOUT").
		DurationVar(&this.Macro.SendTimeout)
	using.Flag("macro.processHint", "Process name fragment used to diagnose an absent macro target.").
		Envar("HR_MACRO_PROCESS_HINT").
		StringVar(&this.Macro.ProcessHint)
}

func (this *Configuration) loadFrom(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	return dec.Decode(this)
}

func (this *Configuration) loadFromFile(fn string, ignoreNotFound bool) error {
	f, err := os.Open(fn)
	if os.IsNotExist(err) && ignoreNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot open configuration file %q: %w", fn, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := this.loadFrom(f); err != nil {
		return fmt.Errorf("cannot load configuration file %q: %w", fn, err)
	}

	return nil
}

func (this *Configuration) loadDefault(ignoreNotFound bool) error {
	return this.loadFromFile(defaultConfigurationFile(), ignoreNotFound)
}

func (this *Configuration) saveTo(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return enc.Encode(this)
}

func (this *Configuration) saveToFile(fn string) error {
	_ = os.MkdirAll(filepath.Dir(fn), 0700)

	f, err := os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("cannot open configuration file %q: %w", fn, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := this.saveTo(f); err != nil {
		return fmt.Errorf("cannot write file %q: %w", fn, err)
	}

	return nil
}
