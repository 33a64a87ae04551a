package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/internal/splitter"
)

var splitCmd = &cobra.Command{
	Use:   "split [FILE]",
	Short: "Split already generated text into resume and cover letter",
	Long:  "Reads generated text from FILE (or stdin) and prints the two sections. No provider is called.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSplit,
}

var splitOutDir string

func init() {
	splitCmd.Flags().StringVarP(&splitOutDir, "out", "o", "", "Directory to write resume.txt and cover_letter.txt")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	var (
		raw []byte
		err error
	)
	if len(args) == 1 && args[0] != "-" {
		raw, err = os.ReadFile(args[0])
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	result := splitter.Split(string(raw))
	if splitOutDir != "" {
		return writeSections(cmd.OutOrStdout(), splitOutDir, result)
	}
	printSections(cmd.OutOrStdout(), result)
	return nil
}
