package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Show the key bindings",
	Long:  `Shows the keys bound to each action in the active configuration.`,
	Run:   runControls,
}

func runControls(_ *cobra.Command, _ []string) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	header := lipgloss.NewStyle().Bold(true)
	fmt.Println(header.Render("Controls") + fmt.Sprintf(" (%s config)", src))
	fmt.Println()

	// Calculate column width
	maxLen := len("Action")
	for _, a := range core.Actions {
		if len(a.String()) > maxLen {
			maxLen = len(a.String())
		}
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Action", "Keys")
	fmt.Printf("  %-*s  %s\n", maxLen, "------", "----")
	for _, a := range core.Actions {
		fmt.Printf("  %-*s  %s\n", maxLen, a, strings.Join(cfg.Keys.ForAction(a), ", "))
	}
}
