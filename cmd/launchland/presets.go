package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/launchland/internal/registry"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List tuning presets",
	Long:  `List all registered tuning presets with their IDs and descriptions.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, args []string) {
	list := registry.List()

	if len(list) == 0 {
		fmt.Println("No presets registered.")
		return
	}

	fmt.Println("Tuning presets:")
	fmt.Println()
	for _, p := range list {
		marker := "  "
		if p.ID == registry.DefaultPreset {
			marker = "* "
		}
		fmt.Printf("%s%-10s  %-14s  %s\n", marker, p.ID, p.Title, p.Description)
	}
	fmt.Println()
	fmt.Println("Use with: launchland play --preset <id>")
}
