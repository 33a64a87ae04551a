package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"resume-builder/internal/bootstrap"
	"resume-builder/internal/extract"
	"resume-builder/internal/generation"
	"resume-builder/internal/splitter"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a resume and cover letter",
	Long: "Each input can be given inline (--skills) or as a file (--skills-file). " +
		"Files may be plain text, PDF or DOCX.",
	RunE: runGenerate,
}

type generateFlags struct {
	skills, skillsFile         string
	experience, experienceFile string
	job, jobFile               string
	apiKey                     string
	provider                   string
	model                      string
	outDir                     string
	timeout                    time.Duration
}

var genFlags generateFlags

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genFlags.skills, "skills", "", "Skills text")
	f.StringVar(&genFlags.skillsFile, "skills-file", "", "Path to a skills file")
	f.StringVar(&genFlags.experience, "experience", "", "Experience text")
	f.StringVar(&genFlags.experienceFile, "experience-file", "", "Path to an experience file (txt, pdf, docx)")
	f.StringVar(&genFlags.job, "job", "", "Job description text")
	f.StringVar(&genFlags.jobFile, "job-file", "", "Path to a job description file")
	f.StringVar(&genFlags.apiKey, "api-key", "", "Provider API key (defaults to OPENAI_API_KEY / GEMINI_API_KEY)")
	f.StringVar(&genFlags.provider, "provider", "", "LLM provider: openai or gemini (defaults to LLM_PROVIDER)")
	f.StringVar(&genFlags.model, "model", "", "Model name (defaults to LLM_MODEL or the provider default)")
	f.StringVarP(&genFlags.outDir, "out", "o", "", "Directory to write resume.txt and cover_letter.txt")
	f.DurationVar(&genFlags.timeout, "timeout", 3*time.Minute, "Overall timeout")

	generateCmd.MarkFlagsMutuallyExclusive("skills", "skills-file")
	generateCmd.MarkFlagsMutuallyExclusive("experience", "experience-file")
	generateCmd.MarkFlagsMutuallyExclusive("job", "job-file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if genFlags.provider != "" {
		cfg.LLMProvider = strings.ToLower(strings.TrimSpace(genFlags.provider))
	}
	if genFlags.model != "" {
		cfg.LLMModel = genFlags.model
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), genFlags.timeout)
	defer cancel()

	req, err := buildRequest(ctx, genFlags)
	if err != nil {
		return err
	}

	client, err := bootstrap.BuildLLM(cfg)
	if err != nil {
		return err
	}
	svc := generation.NewService(client, bootstrap.ServiceOptions(cfg))

	result, err := svc.Generate(ctx, req)
	if err != nil {
		_, _, message := generation.Classify(err)
		return fmt.Errorf("generating content: %s", message)
	}

	if genFlags.outDir != "" {
		return writeSections(cmd.OutOrStdout(), genFlags.outDir, result)
	}
	printSections(cmd.OutOrStdout(), result)
	return nil
}

func buildRequest(ctx context.Context, flags generateFlags) (generation.Request, error) {
	skills, err := resolveInput(ctx, flags.skills, flags.skillsFile)
	if err != nil {
		return generation.Request{}, err
	}
	experience, err := resolveInput(ctx, flags.experience, flags.experienceFile)
	if err != nil {
		return generation.Request{}, err
	}
	job, err := resolveInput(ctx, flags.job, flags.jobFile)
	if err != nil {
		return generation.Request{}, err
	}
	return generation.Request{
		Skills:         skills,
		Experience:     experience,
		JobDescription: job,
		APIKey:         flags.apiKey,
	}, nil
}

func resolveInput(ctx context.Context, inline, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return inline, nil
	}
	return extract.TextFromFile(ctx, path)
}

func printSections(w io.Writer, result splitter.Result) {
	fmt.Fprintln(w, "=== Resume ===")
	fmt.Fprintln(w, result.Resume)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Cover Letter ===")
	fmt.Fprintln(w, result.CoverLetter)
}

func writeSections(w io.Writer, dir string, result splitter.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	files := []struct {
		name    string
		content string
	}{
		{name: "resume.txt", content: result.Resume},
		{name: "cover_letter.txt", content: result.CoverLetter},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.content+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
		fmt.Fprintf(w, "wrote %s\n", path)
	}
	return nil
}
