package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/touch-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade and their keyboard shortcuts.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Keys")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----")
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, shortcuts(g.ID))
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}

// shortcuts describes the keys a game turns into touches.
func shortcuts(id string) string {
	game, err := registry.Create(id)
	if err != nil {
		return ""
	}
	kt, ok := game.(registry.KeyTouch)
	if !ok {
		return "mouse only"
	}
	if _, ok := kt.TouchForKey("up"); ok {
		return "arrows/wasd"
	}
	if _, ok := kt.TouchForKey("1"); ok {
		return "1-9"
	}
	return "mouse only"
}
