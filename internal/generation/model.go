package generation

import "strings"

// Request is the input triple plus an optional caller-supplied credential.
type Request struct {
	Skills         string `json:"skills" form:"skills" validate:"required"`
	Experience     string `json:"experience" form:"experience" validate:"required"`
	JobDescription string `json:"job_description" form:"job_description" validate:"required"`
	APIKey         string `json:"api_key,omitempty" form:"api_key"`
}

// Normalize trims surrounding whitespace from every field.
func (r Request) Normalize() Request {
	return Request{
		Skills:         strings.TrimSpace(r.Skills),
		Experience:     strings.TrimSpace(r.Experience),
		JobDescription: strings.TrimSpace(r.JobDescription),
		APIKey:         strings.TrimSpace(r.APIKey),
	}
}

// Response is the JSON body returned on success.
type Response struct {
	Resume      string `json:"resume"`
	CoverLetter string `json:"cover_letter"`
}
