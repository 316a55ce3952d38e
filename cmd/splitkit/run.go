package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/splitkit/splitkit/internal/app"
	"github.com/splitkit/splitkit/internal/config"
	"github.com/splitkit/splitkit/internal/layout"
	"github.com/splitkit/splitkit/internal/session"
	"github.com/splitkit/splitkit/internal/theme"
)

// filterMouseMotion drops mouse motion events outside an active drag so
// idle pointer movement does not churn the update loop.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	m, ok := model.(*app.Model)
	if !ok {
		return msg
	}
	if m.Dragging() {
		return msg
	}
	return nil
}

func runTUI() error {
	if debugMode {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	log.SetOutput(os.Stderr)

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}
	if themeName != "" {
		userConfig.Appearance.Theme = themeName
	}

	if err := theme.Initialize(userConfig.Appearance.Theme); err != nil {
		log.Warn("failed to initialize theme", "err", err)
	}

	registry := config.NewKeybindRegistry(userConfig)

	store, err := session.NewStore()
	if err != nil {
		log.Warn("session persistence unavailable", "err", err)
		store = nil
	}

	var restore *layout.Snapshot
	if store != nil && userConfig.Layout.RestoreSession && !noRestore {
		restore, err = store.Load()
		if err != nil {
			log.Warn("failed to load session", "err", err)
		}
	}

	model := app.NewModel(app.ModelOptions{
		Config:   userConfig,
		Registry: registry,
		Store:    store,
		Restore:  restore,
	})

	p := tea.NewProgram(
		model,
		tea.WithoutSignalHandler(),
		tea.WithFilter(filterMouseMotion),
	)

	// Live-reload the configuration while the program runs.
	configPath, err := config.GetConfigPath()
	if err == nil {
		watcher, werr := config.Watch(configPath, func(cfg *config.UserConfig) {
			p.Send(app.ConfigReloadedMsg{Config: cfg})
		})
		if werr != nil {
			log.Warn("config live reload unavailable", "err", werr)
		} else {
			defer watcher.Close()
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	finalModel, err := p.Run()

	// Single save point, covering keyboard quits and signal-driven exits.
	if final, ok := finalModel.(*app.Model); ok && userConfig.Layout.RestoreSession {
		final.SaveSession()
	}

	if err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}
