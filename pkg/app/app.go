package app

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	log "github.com/echocat/slf4g"

	"github.com/blaubaer/host-remote/pkg/audio"
	"github.com/blaubaer/host-remote/pkg/common"
	"github.com/blaubaer/host-remote/pkg/macro"
)

func NewApp() *App {
	return &App{
		config: NewConfiguration(),
	}
}

// App binds the volume accessor and the macro trigger together behind one
// configured surface.
type App struct {
	AudioStack        audio.Stack
	ConfigurationFile string

	configFromFlags Configuration
	config          Configuration

	accessor *audio.Accessor
	trigger  macro.Trigger
}

func (this *App) SetupConfiguration(using common.FlagHolder) {
	this.configFromFlags.SetupConfiguration(using)

	using.Flag("configuration", "Defines the file from which the configuration should be loaded and/or stored to.").
		Short('c').
		StringVar(&this.ConfigurationFile)
}

func (this *App) Initialize() (rErr error) {
	success := false
	defer func() {
		if !success {
			if err := this.Dispose(); err != nil && rErr == nil {
				rErr = err
			}
		}
	}()

	if err := this.loadConf(); err != nil {
		return err
	}
	if err := mergo.Merge(&this.config, this.configFromFlags, mergo.WithOverride); err != nil {
		return err
	}

	if err := this.AudioStack.Initialize(); err != nil {
		return err
	}

	accessor, err := audio.NewAccessor(&this.AudioStack)
	if err != nil {
		return err
	}
	this.accessor = accessor

	this.trigger = macro.Trigger{
		WindowTitle: this.config.Macro.TargetWindowTitle,
		Timeout:     this.config.Macro.SendTimeout,
	}

	if err := this.saveConf(); err != nil {
		return err
	}

	success = true
	return nil
}

func (this *App) Dispose() (rErr error) {
	defer func() {
		if err := this.AudioStack.Dispose(); err != nil && rErr == nil {
			rErr = err
		}
	}()

	if a := this.accessor; a != nil {
		this.accessor = nil
		return a.Close()
	}

	return nil
}

func (this *App) Volume() (float32, error) {
	a, err := this.getAccessor()
	if err != nil {
		return 0, err
	}
	return a.Volume()
}

func (this *App) SetVolume(volume float32) error {
	a, err := this.getAccessor()
	if err != nil {
		return err
	}
	if err := a.SetVolume(volume); err != nil {
		return err
	}
	log.With("volume", volume).
		Debug("Volume changed.")
	return nil
}

func (this *App) Muted() (bool, error) {
	a, err := this.getAccessor()
	if err != nil {
		return false, err
	}
	return a.Muted()
}

func (this *App) SetMuted(muted bool) error {
	a, err := this.getAccessor()
	if err != nil {
		return err
	}
	if err := a.SetMuted(muted); err != nil {
		return err
	}
	log.With("muted", muted).
		Debug("Muted state changed.")
	return nil
}

func (this *App) ExecMacro(name string) error {
	if err := this.trigger.Exec(name); err != nil {
		return err
	}
	log.With("macro", name).
		Debug("Macro request delivered.")
	return nil
}

func (this *App) getAccessor() (*audio.Accessor, error) {
	if a := this.accessor; a != nil {
		return a, nil
	}
	return nil, fmt.Errorf("not initialized")
}

func (this *App) loadConf() error {
	if fn := this.ConfigurationFile; fn != "" {
		return this.config.loadFromFile(fn, false)
	}
	return this.config.loadDefault(true)
}

func (this *App) saveConf() error {
	if this.config.PreventAutoSave {
		log.Debug("Automatically save of configuration disabled.")
		return nil
	}

	fn := this.ConfigurationFile
	if fn == "" {
		fn = defaultConfigurationFile()
	}

	_, err := os.Stat(fn)
	if os.IsNotExist(err) {
		log.With("file", fn).Info("Configuration absent.")
		// Ok, we should save...
	} else if err != nil {
		return err
	} else {
		// Does exist, skip...
		return nil
	}

	if err := this.config.saveToFile(fn); err != nil {
		return err
	}

	log.With("file", fn).Info("Configuration saved.")

	return nil
}
