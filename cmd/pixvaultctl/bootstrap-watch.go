package main

import (
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/pixvault/pixvault/pkg/config"
)

// bootstrapWatchCmd represents the bootstrap watch command
var bootstrapWatchCmd = &cobra.Command{
	Use:   "watch [location]",
	Short: "Watch a bootstrap directory and revalidate it on change",
	Long: `Watch a bootstrap directory and revalidate it whenever a file changes.

Each change triggers a dry-run load: the data is rendered, decoded, and
inserted inside a transaction that is always rolled back. Useful while
writing seed data, before pointing a real bootstrap at it.

Example:
  pixvaultctl bootstrap watch ./bootstrap_data`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, location, err := resolveBootstrapConfig(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to resolve bootstrap configuration: %v\n", err)
			os.Exit(1)
		}

		if err := watchBootstrap(cfg, location); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch bootstrap data: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	bootstrapCmd.AddCommand(bootstrapWatchCmd)
}

// watchTree registers root and every directory below it, since discovery is
// recursive but fsnotify watches are not.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

func watchBootstrap(cfg *config.PixVaultConfig, location string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watchTree(watcher, location); err != nil {
		return fmt.Errorf("failed to watch %s: %w", location, err)
	}

	fmt.Printf("Watching %s for changes...\n", location)

	// Validate once up front so existing problems surface immediately.
	validate := func() {
		if err := runBootstrap(cfg, location, true); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
			return
		}
		fmt.Printf("Valid at %s\n", time.Now().Format(time.RFC3339))
	}
	validate()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watchTree(watcher, event.Name)
				}
			}
			fmt.Printf("Change detected: %s\n", event.Name)
			validate()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
		case <-sigs:
			fmt.Println("Stopping watch")
			return nil
		}
	}
}
