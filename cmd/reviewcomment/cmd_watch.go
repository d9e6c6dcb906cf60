package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dkovacs/reviewcomment/internal/suppress"
)

var watchCheckerName string

var watchCmd = &cobra.Command{
	Use:   "watch <file> <line>",
	Short: "Re-check a bug line whenever the source file changes",
	Long: `Watch evaluates the suppression verdict like check, then keeps running and
re-evaluates it each time the source file is written. Useful while editing
review status comments.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]

		line, err := strconv.Atoi(args[1])
		if err != nil || line < 1 {
			return fmt.Errorf("invalid line number %q", args[1])
		}

		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		checker := watchCheckerName
		if checker == "" {
			checker = cfg.DefaultChecker
		}

		if checker == "" {
			return fmt.Errorf("no checker given: use --checker or set default_checker in the config")
		}

		store := suppress.NewMemory()
		store.SetFile(cfg.SuppressFile)

		return runWatch(file, line, checker, store, logger, nil)
	},
}

// runWatch re-runs the check on every write to file, debounced. A value on
// stop ends the loop; a nil stop channel watches forever.
func runWatch(file string, line int, checker string, store suppress.Handler, logger *zap.SugaredLogger, stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch init failed: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors typically replace the file on save,
	// which would drop a watch on the file itself.
	dir := filepath.Dir(file)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s failed: %w", dir, err)
	}

	target, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", file, err)
	}

	emit := func() {
		verdict, err := runCheck(file, line, checker, store, logger)
		if err != nil {
			logger.Errorf("check failed: %v", err)

			return
		}

		output, err := json.Marshal(verdict)
		if err != nil {
			logger.Errorf("marshal verdict: %v", err)

			return
		}

		fmt.Println(string(output))
	}

	emit()

	var timer *time.Timer

	debounce := 300 * time.Millisecond

	for {
		select {
		case <-stop:
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			name, err := filepath.Abs(ev.Name)
			if err != nil || name != target {
				continue
			}

			if timer != nil {
				timer.Stop()
			}

			timer = time.AfterFunc(debounce, emit)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.Errorf("watch error: %v", err)
		}
	}
}

func init() {
	watchCmd.Flags().StringVar(&watchCheckerName, "checker", "", "checker name to filter by")
	rootCmd.AddCommand(watchCmd)
}
