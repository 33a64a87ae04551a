package generation

import (
	_ "embed"
	"strings"

	"resume-builder/internal/llm"
)

// SystemPrompt frames the model as an ATS-aware writer.
const SystemPrompt = "You are a professional resume and cover letter writer with expertise in creating ATS-optimized content."

//go:embed prompts/generate_v1.txt
var promptV1 string

// BuildMessages renders the chat messages for one request.
func BuildMessages(req Request) []llm.Message {
	replacer := strings.NewReplacer(
		"{{SKILLS}}", req.Skills,
		"{{EXPERIENCE}}", req.Experience,
		"{{JOB_DESCRIPTION}}", req.JobDescription,
	)
	return []llm.Message{
		{Role: llm.RoleSystem, Content: SystemPrompt},
		{Role: llm.RoleUser, Content: replacer.Replace(promptV1)},
	}
}
