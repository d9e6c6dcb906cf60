package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dkovacs/reviewcomment"
	"github.com/dkovacs/reviewcomment/internal/linecache"
)

var scanCmd = &cobra.Command{
	Use:   "scan <file> <line>",
	Short: "Print the directives that apply to a bug line",
	Long: `Scan the comment lines directly above the given 1-indexed line and print
every parsed review status directive as JSON, nearest comment block first.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]

		line, err := strconv.Atoi(args[1])
		if err != nil || line < 1 {
			return fmt.Errorf("invalid line number %q", args[1])
		}

		_, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		handler := reviewcomment.NewHandler(file, linecache.New(), logger)

		directives, err := handler.ScanLine(line)
		if err != nil {
			return fmt.Errorf("failed to scan %s:%d: %w", file, line, err)
		}

		output, err := json.MarshalIndent(directives, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}

		fmt.Println(string(output))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
