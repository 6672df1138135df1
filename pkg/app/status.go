package app

import (
	"fmt"
	"strings"

	log "github.com/echocat/slf4g"
	"github.com/shirou/gopsutil/process"
)

type Status struct {
	Volume float32 `yaml:"volume"`
	Muted  bool    `yaml:"muted"`

	MacroTargetPresent bool `yaml:"macroTargetPresent"`

	// MacroTargetCandidates holds running processes matching the configured
	// process hint. Only filled while the target window is absent; it tells
	// an application without its receiver window apart from one that is not
	// running at all.
	MacroTargetCandidates []ProcessRef `yaml:"macroTargetCandidates,omitempty"`
}

type ProcessRef struct {
	Pid  int32  `yaml:"pid"`
	Name string `yaml:"name"`
}

func (this ProcessRef) String() string {
	return fmt.Sprintf("[%d] %s", this.Pid, this.Name)
}

func (this *App) Status() (Status, error) {
	var result Status

	volume, err := this.Volume()
	if err != nil {
		return Status{}, err
	}
	result.Volume = volume

	muted, err := this.Muted()
	if err != nil {
		return Status{}, err
	}
	result.Muted = muted

	present, err := this.trigger.TargetPresent()
	if err != nil {
		return Status{}, err
	}
	result.MacroTargetPresent = present

	if !present {
		result.MacroTargetCandidates = this.findTargetCandidates()
	}

	return result, nil
}

func (this *App) findTargetCandidates() []ProcessRef {
	hint := strings.ToLower(this.config.Macro.ProcessHint)
	if hint == "" {
		return nil
	}

	candidates, err := process.Processes()
	if err != nil {
		log.WithError(err).
			Warn("Cannot inspect running processes.")
		return nil
	}

	var result []ProcessRef
	for _, candidate := range candidates {
		name, err := candidate.Name()
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(name), hint) {
			result = append(result, ProcessRef{candidate.Pid, name})
		}
	}

	return result
}
