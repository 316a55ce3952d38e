// Package main implements splitkit, a tiling pane manager for the
// terminal built on a binary split-tree layout engine.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/splitkit/splitkit/internal/config"
	"github.com/splitkit/splitkit/internal/session"
	"github.com/splitkit/splitkit/internal/theme"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags
var (
	debugMode bool
	noRestore bool
	themeName string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "splitkit",
		Short: "Tiling pane manager",
		Long: `splitkit - a tiling pane manager for the terminal

Panes are arranged by a binary split tree: split, close, swap, and move
panes with the keyboard, resize by dragging borders with the mouse, and
drag a pane's tab bar onto another pane to rearrange the layout.`,
		Example: `  # Run splitkit
  splitkit

  # Run without restoring the previous session
  splitkit --no-restore

  # Edit configuration
  splitkit config edit

  # List all keybindings
  splitkit keybinds list`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&noRestore, "no-restore", false, "Start fresh instead of restoring the saved session")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "Override the configured color theme")

	// Config command group
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage splitkit configuration",
		Long:  `Manage the splitkit configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the splitkit configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the splitkit configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	// Session command group
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the saved pane arrangement",
	}

	sessionPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print session file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.NewStore()
			if err != nil {
				return err
			}
			fmt.Println(store.Path())
			return nil
		},
	}

	sessionClearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved pane arrangement",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.NewStore()
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
			fmt.Println("Session cleared")
			return nil
		},
	}

	sessionCmd.AddCommand(sessionPathCmd, sessionClearCmd)

	// Keybinds command group
	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings in a formatted table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd)

	rootCmd.AddCommand(configCmd, sessionCmd, keybindsCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s", version, commit, date)),
	); err != nil {
		os.Exit(1)
	}
}

// printConfigPath prints the config file path
func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// editConfigFile opens the config file in $EDITOR
func editConfigFile() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Config file doesn't exist, creating default at: %s\n", configPath)
		if _, err := config.LoadUserConfig(); err != nil {
			return fmt.Errorf("could not create config file: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "vi", "nano", "emacs"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Please set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// resetConfigToDefaults resets the configuration file to default settings
func resetConfigToDefaults() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Warning: This will overwrite your existing configuration at:\n")
		fmt.Printf("  %s\n\n", configPath)
		fmt.Printf("Are you sure you want to reset to defaults? (yes/no): ")

		var response string
		fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled")
			return nil
		}
	}

	if err := config.WriteDefaultConfig(configPath); err != nil {
		return err
	}
	fmt.Printf("Configuration reset to defaults: %s\n", configPath)
	return nil
}

// listKeybindings prints all configured keybindings as tables.
func listKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using default keybindings...")
		userConfig = config.DefaultConfig()
	}

	registry := config.NewKeybindRegistry(userConfig)
	printKeybindingsTable(registry)
	return nil
}

// printKeybindingsTable prints keybindings in a pretty table format
func printKeybindingsTable(registry *config.KeybindRegistry) {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.CLITableHeader()).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().
		Padding(0, 1)

	sections := []struct {
		Title   string
		Actions []string
	}{
		{
			Title: "Panes",
			Actions: []string{
				"split_horizontal", "split_vertical", "close_pane",
				"next_pane", "prev_pane", "swap_pane",
			},
		},
		{
			Title: "Movement",
			Actions: []string{
				"move_left", "move_right", "move_up", "move_down",
			},
		},
		{
			Title: "Layout",
			Actions: []string{
				"equalize", "toggle_snap",
			},
		},
		{
			Title: "System",
			Actions: []string{
				"toggle_help", "quit",
			},
		},
	}

	fmt.Println()
	fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableBorder()).Render("splitkit Keybindings"))
	fmt.Println()

	for _, section := range sections {
		rows := [][]string{}

		for _, action := range section.Actions {
			keys := registry.GetKeys(action)
			if len(keys) == 0 {
				continue
			}

			desc := config.ActionDescriptions[action]
			if desc == "" {
				desc = action
			}

			rows = append(rows, []string{strings.Join(keys, ", "), desc})
		}

		if len(rows) == 0 {
			continue
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(theme.CLITableDim())).
			Headers("Keys", "Action").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == -1 {
					return headerStyle
				}
				return cellStyle
			})

		fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableKey()).Render(section.Title))
		fmt.Println(t.Render())
		fmt.Println()
	}

	note := lipgloss.NewStyle().
		Foreground(theme.CLITableDim()).
		Italic(true).
		Render("Resizing and pane drag-and-drop are mouse gestures; see splitkit --help.")
	fmt.Println(note)
	fmt.Println()
}
