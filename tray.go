package main

import (
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/echocat/slf4g"
	"github.com/getlantern/systray"

	"github.com/blaubaer/host-remote/pkg/app"
)

var (
	//go:embed assets/volume.ico
	volumeIcon []byte
	//go:embed assets/volume-muted.ico
	volumeMutedIcon []byte
)

func runTray(a *app.App) error {
	if err := a.Initialize(); err != nil {
		return err
	}

	systray.Run(func() {
		systray.SetTitle("Host remote")
		refreshTray(a)

		toggleMi := systray.AddMenuItem("Toggle mute", "Mutes or unmutes the default audio output.")
		quitMi := systray.AddMenuItem("Exit", "Exit the host remote.")

		go func() {
			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt, syscall.SIGTERM)
			for {
				select {
				case <-toggleMi.ClickedCh:
					muted, err := a.Muted()
					if err != nil {
						log.WithError(err).
							Error("Cannot read muted state.")
						continue
					}
					if err := a.SetMuted(!muted); err != nil {
						log.WithError(err).
							Error("Cannot change muted state.")
						continue
					}
					refreshTray(a)
				case <-c:
					log.Info("Terminated. Going down...")
					systray.Quit()
					return
				case <-quitMi.ClickedCh:
					log.Info("Exit clicked. Going down...")
					systray.Quit()
					return
				}
			}
		}()
	}, func() {
		_ = a.Dispose()
	})

	return nil
}

func refreshTray(a *app.App) {
	muted, err := a.Muted()
	if err != nil {
		log.WithError(err).
			Error("Cannot read muted state.")
		return
	}
	if muted {
		systray.SetIcon(volumeMutedIcon)
	} else {
		systray.SetIcon(volumeIcon)
	}

	volume, err := a.Volume()
	if err != nil {
		log.WithError(err).
			Error("Cannot read volume.")
		return
	}
	systray.SetTooltip(fmt.Sprintf("Volume: %.0f%%", volume*100))
}
