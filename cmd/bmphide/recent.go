package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmphide/bmphide/internal/recents"
	"github.com/spf13/cobra"
)

// recentFile is the on-disk location of the recent-files ring buffer. It
// lives alongside other per-user state rather than in the working
// directory, so it persists across invocations from different directories.
func recentFile() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, ".bmphide_recent")
}

func recordRecent(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return recents.Add(recentFile(), abs, recents.DefaultLimit)
}

func newRecentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "List recently encoded or decoded files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := recents.Load(recentFile())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("no recent files")
				return nil
			}
			for _, e := range entries {
				fmt.Println(e)
			}
			return nil
		},
	}
}
