package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	log "charm.land/log/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/activeterm"
	wishtea "charm.land/wish/v2/bubbletea"
	wishlog "charm.land/wish/v2/logging"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/ssh"

	"github.com/dodorz/tuikit/internal/app"
	"github.com/dodorz/tuikit/internal/config"
	"github.com/dodorz/tuikit/internal/input"
	"github.com/dodorz/tuikit/internal/listview"
)

const sshShutdownTimeout = 5 * time.Second

// demoItems is the sample data set shown when tuikit runs standalone.
func demoItems() []listview.Item {
	return []listview.Item{
		{ID: "inbox", Title: "Inbox", Badge: "12"},
		{ID: "today", Title: "Today", Badge: "3"},
		{ID: "upcoming", Title: "Upcoming", Badge: "7"},
		{ID: "anytime", Title: "Anytime"},
		{ID: "someday", Title: "Someday"},
		{ID: "groceries", Title: "Groceries", Badge: "5"},
		{ID: "errands", Title: "Errands", Badge: "2"},
		{ID: "reading", Title: "Reading list", Badge: "18"},
		{ID: "projects", Title: "Projects", Badge: "4"},
		{ID: "archive", Title: "Archive"},
		{ID: "trips", Title: "Trip planning"},
		{ID: "house", Title: "House chores", Badge: "6"},
		{ID: "music", Title: "Music to check out", Badge: "9"},
		{ID: "gifts", Title: "Gift ideas"},
		{ID: "recipes", Title: "Recipes to try", Badge: "11"},
	}
}

// filterMouseMotion filters out redundant mouse motion events to reduce CPU
// usage. Motion only matters while a drag is in flight.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}

	a, ok := model.(*app.App)
	if !ok {
		return msg
	}

	if a.Reorder.Dragging() {
		return msg
	}

	return nil
}

func applyFlagOverrides(userConfig *config.UserConfig) {
	config.ApplyOverrides(config.Overrides{
		ThemeName:      themeName,
		PreviewOpacity: previewOpacity,
		NoReorder:      noReorder,
		HideMediaBar:   hideMediaBar,
		ListHeight:     listHeight,
	}, userConfig)
}

func runLocal() error {
	userConfig, err := config.LoadConfig()
	if err != nil {
		log.Warn("Failed to load config, using defaults", "error", err)
		userConfig = config.DefaultConfig()
	}

	applyFlagOverrides(userConfig)

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				log.Warn("Failed to close CPU profile file", "error", closeErr)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	app.SetInputHandler(input.HandleInput)

	if debugMode {
		configPath, _ := config.GetConfigPath()
		log.Info("Configuration", "path", configPath)
	}

	p := tea.NewProgram(
		app.New(demoItems()),
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(filterMouseMotion),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}

func runSSHServer(sshHost, sshPort, sshKeyPath string) error {
	applyFlagOverrides(nil)
	app.SetInputHandler(input.HandleInput)

	if sshKeyPath == "" {
		sshKeyPath = filepath.Join(xdg.DataHome, "tuikit", "id_ed25519")
	}

	srv, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(sshHost, sshPort)),
		wish.WithHostKeyPath(sshKeyPath),
		wish.WithMiddleware(
			wishtea.Middleware(sessionHandler),
			activeterm.Middleware(),
			wishlog.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Info("Shutting down SSH server...")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting tuikit SSH server", "host", sshHost, "port", sshPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("SSH server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), sshShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("SSH server shutdown error: %w", err)
	}
	return nil
}

// sessionHandler builds a fresh model per SSH session. Every client gets
// its own list and playback state.
func sessionHandler(_ ssh.Session) (tea.Model, []tea.ProgramOption) {
	return app.New(demoItems()), []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(filterMouseMotion),
	}
}
