// Package splitter partitions generated text into a resume and a cover letter.
package splitter

import "strings"

const (
	// Delimiter is the separator the prompt asks the model to emit between sections.
	Delimiter = "---"
	// ResumeLabel and CoverLetterLabel are section headings some models emit instead.
	ResumeLabel      = "RESUME"
	CoverLetterLabel = "COVER LETTER"

	resumeShareNum = 6
	resumeShareDen = 10
)

// Tier names the rule that produced a split.
type Tier string

const (
	TierEmpty        Tier = "empty"
	TierDelimiter    Tier = "delimiter"
	TierLabels       Tier = "labels"
	TierProportional Tier = "proportional"
)

// Result holds both trimmed sections.
type Result struct {
	Resume      string `json:"resume"`
	CoverLetter string `json:"cover_letter"`
	Tier        Tier   `json:"-"`
}

// Split applies the delimiter, labeled-section and proportional rules in that order.
// It never fails; empty input yields two empty sections.
func Split(text string) Result {
	if text == "" {
		return Result{Tier: TierEmpty}
	}

	if before, after, ok := strings.Cut(text, Delimiter); ok {
		return newResult(before, after, TierDelimiter)
	}

	if strings.Contains(text, ResumeLabel) && strings.Contains(text, CoverLetterLabel) {
		before, after, _ := strings.Cut(text, CoverLetterLabel)
		before = strings.Replace(before, ResumeLabel, "", 1)
		return newResult(before, after, TierLabels)
	}

	runes := []rune(text)
	cut := len(runes) * resumeShareNum / resumeShareDen
	return newResult(string(runes[:cut]), string(runes[cut:]), TierProportional)
}

func newResult(resume, coverLetter string, tier Tier) Result {
	return Result{
		Resume:      strings.TrimSpace(resume),
		CoverLetter: strings.TrimSpace(coverLetter),
		Tier:        tier,
	}
}
