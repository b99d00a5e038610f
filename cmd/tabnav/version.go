package main

import (
	"fmt"

	"github.com/kbenton/tabnav/internal/update"
)

// Version is set via -ldflags at build time. Falls back to "dev".
var Version = "dev"

func runVersion(repo string) {
	fmt.Printf("tabnav version %s\n", Version)

	if Version == "dev" {
		fmt.Println("Development build — update check skipped.")
		return
	}

	rel, err := update.CheckForUpdate(Version, repo)
	if err != nil {
		fmt.Printf("Update check failed: %v\n", err)
		return
	}

	if rel != nil {
		fmt.Printf("Update available: v%s. Run \"tabnav update\" to install.\n", rel.Version)
	} else {
		fmt.Println("You are up to date.")
	}
}

func runUpdate(repo string) {
	rel, err := update.Apply(Version, repo)
	if err != nil {
		fmt.Printf("Update failed: %v\n", err)
		return
	}
	fmt.Printf("Updated to v%s\n", rel.Version)
}
