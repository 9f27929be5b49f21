package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--validate" {
		if err := runValidation(); err != nil {
			fmt.Fprintln(os.Stderr, "validation failed:", err)
			os.Exit(1)
		}
		fmt.Println("ok")
		return
	}

	settings, err := loadSettings()
	if err != nil {
		// Bad settings fall back to defaults; report and carry on.
		fmt.Fprintln(os.Stderr, "settings:", err)
	}

	p := tea.NewProgram(newModel(settings, time.Now), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
