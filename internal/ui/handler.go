// Package ui serves the browser form for generating a resume and cover letter.
package ui

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/generation"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/telemetry"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

var downloads = map[string]string{
	"resume":       "resume.txt",
	"cover-letter": "cover_letter.txt",
}

// Handler renders the form and delegates generation to the shared service.
type Handler struct {
	Svc generation.Generator
	// ShowAPIKey exposes an API key field when the server has no credential.
	ShowAPIKey bool
}

// NewHandler constructs a Handler.
func NewHandler(svc generation.Generator, showAPIKey bool) *Handler {
	return &Handler{Svc: svc, ShowAPIKey: showAPIKey}
}

// RegisterRoutes mounts the page and download routes.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.index)
	r.POST("/", h.generate)
	r.POST("/download/:kind", h.download)
}

type pageData struct {
	ShowAPIKey     bool
	APIKey         string
	Skills         string
	Experience     string
	JobDescription string
	Error          string
	Generated      bool
	Resume         string
	CoverLetter    string
}

func (h *Handler) index(c *gin.Context) {
	h.render(c, http.StatusOK, pageData{ShowAPIKey: h.ShowAPIKey})
}

func (h *Handler) generate(c *gin.Context) {
	var req generation.Request
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, http.StatusBadRequest, pageData{ShowAPIKey: h.ShowAPIKey, Error: "Could not read the submitted form."})
		return
	}

	data := pageData{
		ShowAPIKey:     h.ShowAPIKey,
		APIKey:         req.APIKey,
		Skills:         req.Skills,
		Experience:     req.Experience,
		JobDescription: req.JobDescription,
	}

	result, err := h.Svc.Generate(c.Request.Context(), req)
	if err != nil {
		status, code, message := generation.Classify(err)
		telemetry.Error("ui.generate_failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"code":       code,
			"status":     status,
			"message":    message,
		})
		data.Error = userMessage(err, message)
		h.render(c, status, data)
		return
	}
	c.Set(middleware.SplitTierKey, string(result.Tier))

	data.Generated = true
	data.Resume = result.Resume
	data.CoverLetter = result.CoverLetter
	h.render(c, http.StatusOK, data)
}

func (h *Handler) download(c *gin.Context) {
	fileName, ok := downloads[c.Param("kind")]
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "Unknown download")
		return
	}
	content := c.PostForm("content")
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
}

func (h *Handler) render(c *gin.Context, status int, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		respond.Error(c, http.StatusInternalServerError, "template", "Unexpected server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func userMessage(err error, message string) string {
	switch {
	case errors.Is(err, generation.ErrMissingField):
		return "Please fill in all fields."
	case errors.Is(err, generation.ErrMissingCredential):
		return "API key required"
	default:
		return "Error generating content: " + message
	}
}
