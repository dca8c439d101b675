package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/digit-span/internal/config"
	"github.com/ytget/digit-span/internal/game"
	"github.com/ytget/digit-span/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.digit-span"
	AppName = "Digit Span"
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	cfg, err := config.LoadConfigFromEnv()
	if err != nil {
		log.Printf("Using default launch config: %v", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	if icon, err := ui.LoadAppIcon(); err == nil {
		myApp.SetIcon(icon)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	opts := []game.Option{game.WithDebug(cfg.Debug)}
	if cfg.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Seed))
	}
	controller := game.NewController(opts...)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, controller, settings)

	// Show and run
	myWindow.ShowAndRun()
}
