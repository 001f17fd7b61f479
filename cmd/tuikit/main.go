// Package main implements tuikit, a drag-to-reorder list demo.
// tuikit showcases a press/drag/settle reorder gesture for terminal list
// views, with themed rendering, a media status bar, and environment
// inspection overlays. It runs locally or as an SSH server.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/fang"
	tint "github.com/lrstanley/bubbletint/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dodorz/tuikit/internal/config"
	"github.com/dodorz/tuikit/internal/envinfo"
	"github.com/dodorz/tuikit/internal/theme"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode      bool
	cpuProfile     string
	themeName      string
	listThemes     bool
	previewOpacity float64
	noReorder      bool
	hideMediaBar   bool
	listHeight     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tuikit",
		Short: "Drag-to-reorder list demo",
		Long: `tuikit - drag-to-reorder list demo

A terminal list view with a press/drag/settle reorder gesture, hysteresis
based row swapping, auto-scroll near the viewport edges, and a floating
row preview that follows the pointer.`,
		Example: `  # Run tuikit
  tuikit

  # Run with a specific theme
  tuikit --theme dracula

  # List all available themes
  tuikit --list-themes

  # Interactively select a theme with fzf
  tuikit --theme $(tuikit --list-themes | fzf)

  # Run as SSH server
  tuikit ssh --port 2222

  # Edit configuration
  tuikit config edit`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			if listThemes {
				if err := theme.Initialize("default"); err != nil {
					return fmt.Errorf("failed to initialize themes: %w", err)
				}
				for _, t := range tint.TintIDs() {
					fmt.Println(t)
				}
				return nil
			}
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpuprofile", "", "Write CPU profile to file")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty to use standard terminal colors without theming")
	rootCmd.PersistentFlags().BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.PersistentFlags().Float64Var(&previewOpacity, "preview-opacity", 0, "Opacity of the floating row preview, in (0, 1] (default: from config or 0.85)")
	rootCmd.PersistentFlags().BoolVar(&noReorder, "no-reorder", false, "Disable the drag-to-reorder gesture")
	rootCmd.PersistentFlags().BoolVar(&hideMediaBar, "hide-media-bar", false, "Hide the media playback bar")
	rootCmd.PersistentFlags().IntVar(&listHeight, "list-height", 0, "Maximum list viewport height in rows (default: from config or 12, min: 3, max: 200)")

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Run tuikit as SSH server",
		Long: `Run tuikit as an SSH server

Allows remote connections to tuikit via SSH. The server will generate
a host key automatically if not specified.`,
		Example: `  # Start SSH server on default port
  tuikit ssh

  # Start on custom port
  tuikit ssh --port 2222

  # Specify custom host key
  tuikit ssh --key-path /path/to/host_key`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tuikit configuration",
		Long:  `Manage tuikit configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the tuikit configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the tuikit configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the tuikit configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Print process and terminal environment report",
		Long: `Print a report of the current process and terminal environment.

Shows process statistics (CPU, memory, threads, file descriptors), the
detected terminal color profile, and terminal-related environment
variables.`,
		Example: `  tuikit env`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printEnvReport()
		},
	}

	rootCmd.AddCommand(sshCmd, configCmd, envCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

func editConfigFile() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to determine config path: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Write the defaults first so the editor has something to open.
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("failed to create default config: %w", err)
		}
	}

	editor := findEditor()
	if editor == "" {
		return fmt.Errorf("no editor found (set $EDITOR or $VISUAL)")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}
	return nil
}

func findEditor() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if editor := os.Getenv(env); editor != "" {
			return editor
		}
	}
	for _, editor := range []string{"vim", "vi", "nano", "emacs"} {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}
	return ""
}

func resetConfigToDefaults() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to determine config path: %w", err)
	}

	fmt.Printf("Reset %s to defaults? [y/N] ", path)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if answer = strings.ToLower(strings.TrimSpace(answer)); answer != "y" && answer != "yes" {
		fmt.Println("Aborted.")
		return nil
	}

	if err := config.ResetConfig(); err != nil {
		return fmt.Errorf("failed to reset config: %w", err)
	}
	fmt.Println("Configuration reset to defaults.")
	return nil
}

func printEnvReport() error {
	fmt.Printf("tuikit %s\n\n", version)

	if stats, err := envinfo.ProcessStats(); err == nil {
		fmt.Printf("PID:      %d\n", stats.PID)
		fmt.Printf("CPU:      %.1f%%\n", stats.CPUPercent)
		fmt.Printf("Memory:   %s\n", envinfo.FormatBytes(stats.MemoryRSS))
		fmt.Printf("Threads:  %d\n", stats.NumThreads)
		if stats.NumFDs > 0 {
			fmt.Printf("FDs:      %d\n", stats.NumFDs)
		}
	} else {
		fmt.Printf("Process stats unavailable: %v\n", err)
	}

	fmt.Printf("Profile:  %s\n", envinfo.TerminalProfile())
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			fmt.Printf("Terminal: %dx%d\n", w, h)
		}
	} else {
		fmt.Println("Terminal: not a TTY")
	}

	vars := envinfo.WithPrefix("TERM")
	vars = append(vars, envinfo.WithPrefix("COLOR")...)
	if len(vars) > 0 {
		fmt.Println()
		for _, v := range vars {
			fmt.Printf("%s=%s\n", v.Key, v.Value)
		}
	}
	return nil
}
