// Package shell provides a small interactive surface around the app for
// driving it from a terminal session.
package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	log "github.com/echocat/slf4g"
	"gopkg.in/yaml.v3"

	"github.com/blaubaer/host-remote/pkg/app"
)

// Run reads commands from the terminal and executes them against the given
// app until the user leaves or the input ends.
func Run(a *app.App) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt: "host-remote> ",
	})
	if err != nil {
		return fmt.Errorf("cannot read from terminal: %w", err)
	}
	defer func() {
		_ = l.Close()
	}()

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("cannot read from terminal: %w", err)
		}

		if execute(a, strings.TrimSpace(line)) {
			return nil
		}
	}
}

func execute(a *app.App, line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	fail := func(err error) {
		log.WithError(err).Error()
	}

	switch fields[0] {
	case "volume":
		if len(fields) < 2 {
			volume, err := a.Volume()
			if err != nil {
				fail(err)
				return false
			}
			fmt.Printf("%v\n", volume)
			return false
		}
		volume, err := strconv.ParseFloat(fields[1], 32)
		if err != nil {
			fail(fmt.Errorf("illegal volume %q: %w", fields[1], err))
			return false
		}
		if err := a.SetVolume(float32(volume)); err != nil {
			fail(err)
		}
	case "mute":
		if err := a.SetMuted(true); err != nil {
			fail(err)
		}
	case "unmute":
		if err := a.SetMuted(false); err != nil {
			fail(err)
		}
	case "muted":
		muted, err := a.Muted()
		if err != nil {
			fail(err)
			return false
		}
		fmt.Printf("%v\n", muted)
	case "macro":
		name := strings.TrimSpace(strings.TrimPrefix(line, "macro"))
		if err := a.ExecMacro(name); err != nil {
			fail(err)
		}
	case "status":
		status, err := a.Status()
		if err != nil {
			fail(err)
			return false
		}
		b, err := yaml.Marshal(status)
		if err != nil {
			fail(err)
			return false
		}
		fmt.Print(string(b))
	case "help":
		fmt.Print(`volume [value]  Print or set the volume of the default audio output (0.0-1.0).
mute            Mute the default audio output.
unmute          Unmute the default audio output.
muted           Print the current mute state.
macro <name>    Ask the running Translator instance to execute the named macro.
status          Print the current state of this host.
exit            Leave.
`)
	case "exit", "quit":
		return true
	default:
		fail(fmt.Errorf("unknown command %q; try help", fields[0]))
	}

	return false
}
