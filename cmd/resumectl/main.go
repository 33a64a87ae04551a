// Package main provides the resumectl command-line client for generating a
// resume and cover letter without running the HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/internal/shared/config"
)

var rootCmd = &cobra.Command{
	Use:   "resumectl",
	Short: "Generate an ATS-optimized resume and cover letter",
	Long: "resumectl sends your skills, experience and a job description to a text-generation " +
		"provider and splits the answer into a resume and a cover letter.",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	return config.Load()
}
