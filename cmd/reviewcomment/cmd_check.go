package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dkovacs/reviewcomment"
	"github.com/dkovacs/reviewcomment/internal/linecache"
	"github.com/dkovacs/reviewcomment/internal/suppress"
)

var checkerName string

var checkCmd = &cobra.Command{
	Use:   "check <file> <line>",
	Short: "Report whether a checker is suppressed at a bug line",
	Long: `Check filters the directives above the given line by checker name and
reports the suppression verdict. Directives naming the checker explicitly win
over an [all] wildcard.`,
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

		checker := checkerName
		if checker == "" {
			checker = cfg.DefaultChecker
		}

		if checker == "" {
			return fmt.Errorf("no checker given: use --checker or set default_checker in the config")
		}

		store := suppress.NewMemory()
		store.SetFile(cfg.SuppressFile)

		verdict, err := runCheck(file, line, checker, store, logger)
		if err != nil {
			return err
		}

		output, err := json.MarshalIndent(verdict, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}

		fmt.Println(string(output))

		return nil
	},
}

// checkVerdict is the JSON output of the check command.
type checkVerdict struct {
	File       string                    `json:"file"`
	Line       int                       `json:"line"`
	Checker    string                    `json:"checker"`
	Suppressed bool                      `json:"suppressed"`
	Directives []reviewcomment.Directive `json:"directives"`
}

// runCheck scans one line, filters by checker, and records suppressing
// directives in the store.
func runCheck(file string, line int, checker string, store suppress.Handler, logger *zap.SugaredLogger) (checkVerdict, error) {
	handler := reviewcomment.NewHandler(file, linecache.New(), logger)

	directives, err := handler.FilterByChecker(line, checker)
	if err != nil {
		return checkVerdict{}, fmt.Errorf("failed to check %s:%d: %w", file, line, err)
	}

	verdict := checkVerdict{
		File:       file,
		Line:       line,
		Checker:    checker,
		Directives: directives,
	}

	bugID := fmt.Sprintf("%s:%d:%s", filepath.Base(file), line, checker)

	for _, d := range directives {
		if !reviewcomment.IsSuppressing(d.Status) {
			continue
		}

		if err := store.Store(bugID, file, d.Message, d.Status); err != nil {
			return checkVerdict{}, fmt.Errorf("failed to store suppression: %w", err)
		}
	}

	verdict.Suppressed = store.IsSuppressed(suppress.Bug{ID: bugID, File: file})

	return verdict, nil
}

func init() {
	checkCmd.Flags().StringVar(&checkerName, "checker", "", "checker name to filter by")
	rootCmd.AddCommand(checkCmd)
}
