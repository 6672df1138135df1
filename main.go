package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/echocat/slf4g/native"
	_ "github.com/echocat/slf4g/native"
	"github.com/echocat/slf4g/native/facade/value"
	"github.com/echocat/slf4g/native/formatter"
	"gopkg.in/yaml.v3"

	"github.com/blaubaer/host-remote/pkg/app"
	"github.com/blaubaer/host-remote/pkg/shell"
)

func main() {
	lv := value.NewProvider(native.DefaultProvider)
	lv.Consumer.Formatter.Codec = value.MappingFormatterCodec{
		"text": formatter.NewText(),
		"json": formatter.NewJson(),
	}

	a := app.NewApp()

	cmd := kingpin.New(os.Args[0], "Remote control for this host: the volume and mute state of the default audio output and the macros of a running Translator instance.")

	volumeCmd := cmd.Command("volume", "Reads or changes the volume of the default audio output.")
	volumeCmd.Command("get", "Prints the current volume as a scalar within [0.0, 1.0].").
		Default().
		Action(run(a, func() error {
			volume, err := a.Volume()
			if err != nil {
				return err
			}
			fmt.Printf("%v\n", volume)
			return nil
		}))
	volumeSetCmd := volumeCmd.Command("set", "Changes the volume to the given scalar within [0.0, 1.0].")
	volumeToSet := volumeSetCmd.Arg("value", "The volume to set.").
		Required().
		Float64()
	volumeSetCmd.Action(run(a, func() error {
		return a.SetVolume(float32(*volumeToSet))
	}))

	muteCmd := cmd.Command("mute", "Reads or changes the mute state of the default audio output.")
	muteCmd.Command("get", "Prints the current mute state.").
		Default().
		Action(run(a, func() error {
			muted, err := a.Muted()
			if err != nil {
				return err
			}
			fmt.Printf("%v\n", muted)
			return nil
		}))
	muteSetCmd := muteCmd.Command("set", "Changes the mute state.")
	muteToSet := muteSetCmd.Arg("state", "Either true or false.").
		Required().
		Bool()
	muteSetCmd.Action(run(a, func() error {
		return a.SetMuted(*muteToSet)
	}))

	macroCmd := cmd.Command("macro", "Asks the running Translator instance to execute the named macro.")
	macroName := macroCmd.Arg("name", "The name of the macro to execute.").
		Required().
		String()
	macroCmd.Action(run(a, func() error {
		return a.ExecMacro(*macroName)
	}))

	cmd.Command("status", "Prints the current state of this host.").
		Action(run(a, func() error {
			status, err := a.Status()
			if err != nil {
				return err
			}
			b, err := yaml.Marshal(status)
			if err != nil {
				return err
			}
			fmt.Print(string(b))
			return nil
		}))

	cmd.Command("shell", "Starts an interactive session.").
		Action(run(a, func() error {
			return shell.Run(a)
		}))

	cmd.Command("tray", "Runs as a tray icon showing and controlling the mute state.").
		Action(func(*kingpin.ParseContext) error {
			return runTray(a)
		})

	a.SetupConfiguration(cmd)

	cmd.Flag("log.level", "").
		SetValue(lv.Level)
	cmd.Flag("log.format", "").
		Default("text").
		SetValue(lv.Consumer.Formatter)
	cmd.Flag("log.color", "").
		Default("always").
		SetValue(lv.Consumer.Formatter.ColorMode)

	kingpin.MustParse(cmd.Parse(os.Args[1:]))
}

func run(a *app.App, action func() error) func(*kingpin.ParseContext) error {
	return func(*kingpin.ParseContext) error {
		if err := a.Initialize(); err != nil {
			return err
		}
		defer func() { _ = a.Dispose() }()

		return action()
	}
}
