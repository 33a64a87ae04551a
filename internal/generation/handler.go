package generation

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/splitter"
)

// Generator is the subset of Service the transports depend on.
type Generator interface {
	Generate(ctx context.Context, req Request) (splitter.Result, error)
}

// Handler wires HTTP handlers to the generation service.
type Handler struct {
	Svc      Generator
	Provider string
}

// NewHandler constructs a Handler.
func NewHandler(svc Generator, provider string) *Handler {
	return &Handler{Svc: svc, Provider: provider}
}

// RegisterRoutes attaches the generate endpoint to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
	rg.OPTIONS("/generate", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

func (h *Handler) generate(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, CodeBadRequest, "Invalid JSON body")
		return
	}
	if h.Provider != "" {
		c.Set(middleware.ProviderKey, h.Provider)
	}

	result, err := h.Svc.Generate(c.Request.Context(), req)
	if err != nil {
		status, code, message := Classify(err)
		respond.Error(c, status, code, message)
		return
	}
	c.Set(middleware.SplitTierKey, string(result.Tier))

	respond.OK(c, Response{
		Resume:      result.Resume,
		CoverLetter: result.CoverLetter,
	})
}

// MethodNotAllowed answers requests to known paths with an unsupported method.
func MethodNotAllowed(c *gin.Context) {
	respond.Error(c, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed")
}
