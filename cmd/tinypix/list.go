package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tinypix/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenes",
	Long:  `Shows a list of all scenes registered in tinypix.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	scenes := registry.List()

	if len(scenes) == 0 {
		fmt.Println("No scenes available.")
		return
	}

	fmt.Println(titleStyle.Render("Available scenes:"))
	fmt.Println()

	rows := make([][]string, 0, len(scenes))
	for _, s := range scenes {
		rows = append(rows, []string{s.ID, s.Title})
	}
	fmt.Print(table([]string{"ID", "Title"}, rows))

	fmt.Println()
	fmt.Println(hintStyle.Render("Run 'tinypix run <id>' to start a scene."))
}
