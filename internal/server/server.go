// Package server exposes the HTTP API: transcript ingestion, campaign
// prompt generation, and email reverse engineering. Handlers are thin;
// all domain behavior lives in the internal packages they call.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/velora-labs/promptforge/internal/campaign"
	"github.com/velora-labs/promptforge/internal/completion"
	"github.com/velora-labs/promptforge/internal/config"
	"github.com/velora-labs/promptforge/internal/extract"
	"github.com/velora-labs/promptforge/internal/profile"
	"github.com/velora-labs/promptforge/internal/reverse"
	"github.com/velora-labs/promptforge/internal/store"
)

// PromptBuilder generates a prompt package for one campaign.
// *campaign.Builder implements this; tests inject fakes.
type PromptBuilder interface {
	Build(ctx context.Context, campaignID string, p profile.ClientProfile) (campaign.PromptPackage, error)
}

// ExtractFunc extracts a client profile from a transcript packet.
type ExtractFunc func(ctx context.Context, pkt extract.Packet) (profile.ClientProfile, error)

// ReverseFunc reverse-engineers an email template.
type ReverseFunc func(ctx context.Context, emailBody string, opts reverse.Options) (reverse.Result, error)

// Deps are the injectable collaborators for a Server.
type Deps struct {
	Store   store.Store
	Builder PromptBuilder
	Extract ExtractFunc
	Reverse ReverseFunc
	Logger  *zap.Logger
}

// Server is the HTTP API.
type Server struct {
	deps   Deps
	engine *gin.Engine
}

// New wires the default collaborators from the configuration and the
// completion service. Use NewWithDeps in tests.
func New(cfg config.Config, c completion.Completer, logger *zap.Logger) *Server {
	return NewWithDeps(Deps{
		Store:   store.NewMemory(),
		Builder: campaign.NewBuilder(c, campaign.WithParallelism(cfg.Parallelism)),
		Extract: func(ctx context.Context, pkt extract.Packet) (profile.ClientProfile, error) {
			return extract.ClientProfile(ctx, c, pkt)
		},
		Reverse: func(ctx context.Context, emailBody string, opts reverse.Options) (reverse.Result, error) {
			return reverse.EngineerVariables(ctx, c, emailBody, opts)
		},
		Logger: logger,
	})
}

// NewWithDeps builds a Server from explicit collaborators.
func NewWithDeps(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	s := &Server{deps: deps, engine: gin.New()}
	s.engine.Use(gin.Recovery())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/health", s.health)
	s.engine.POST("/ingest", s.ingest)
	s.engine.GET("/campaigns", s.listCampaigns)
	s.engine.POST("/campaigns/:campaignId/generate", s.generateCampaign)
	s.engine.GET("/campaigns/:campaignId/prompts", s.getPrompts)
	s.engine.POST("/reverse-engineering/analyze", s.analyzeEmail)
}

// Handler returns the underlying http.Handler (for tests and custom
// servers).
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves the API on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.deps.Logger.Info("listening", zap.String("addr", addr))
	return s.engine.Run(addr)
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type ingestRequest struct {
	Transcript string `json:"transcript" binding:"required,min=10"`
	ClientName string `json:"client_name"`
	Website    string `json:"website" binding:"omitempty,url"`
	Notes      string `json:"notes"`
}

func (s *Server) ingest(c *gin.Context) {
	var req ingestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	pkt := extract.Packet{
		ID:         uuid.NewString(),
		Transcript: req.Transcript,
		ClientName: req.ClientName,
		Website:    req.Website,
		Notes:      req.Notes,
	}

	p, err := s.deps.Extract(c.Request.Context(), pkt)
	if err != nil {
		s.fail(c, "ingest", err)
		return
	}

	stored := s.deps.Store.SaveProfile(p)
	c.JSON(http.StatusOK, gin.H{
		"profile_id":     stored.ID,
		"client_profile": stored,
	})
}

func (s *Server) listCampaigns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"campaigns": campaign.Campaigns()})
}

type generateRequest struct {
	ProfileID     string                 `json:"profile_id" binding:"omitempty,uuid"`
	ClientProfile *profile.ClientProfile `json:"client_profile"`
}

func (s *Server) generateCampaign(c *gin.Context) {
	campaignID := c.Param("campaignId")
	if !campaign.Known(campaignID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "campaign_not_found", "campaignId": campaignID})
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	var p profile.ClientProfile
	switch {
	case req.ClientProfile != nil:
		p = *req.ClientProfile
	case req.ProfileID != "":
		stored, ok := s.deps.Store.Profile(req.ProfileID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "profile_not_found",
				"message": "Provide a valid profile_id or inline client_profile",
			})
			return
		}
		p = stored
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "profile_not_found",
			"message": "Provide a valid profile_id or inline client_profile",
		})
		return
	}

	pkg, err := s.deps.Builder.Build(c.Request.Context(), campaignID, p)
	if err != nil {
		s.fail(c, "generate", err)
		return
	}

	if req.ProfileID != "" {
		s.deps.Store.SavePackage(req.ProfileID, campaignID, pkg)
	}

	c.JSON(http.StatusOK, gin.H{
		"campaign":       campaignID,
		"prompt_package": pkg,
	})
}

func (s *Server) getPrompts(c *gin.Context) {
	campaignID := c.Param("campaignId")
	if !campaign.Known(campaignID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "campaign_not_found", "campaignId": campaignID})
		return
	}

	profileID := c.Query("profile_id")
	if profileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile_id_required"})
		return
	}

	pkg, ok := s.deps.Store.Package(profileID, campaignID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "prompt_package_not_found", "profile_id": profileID})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaign":       campaignID,
		"prompt_package": pkg,
	})
}

type analyzeRequest struct {
	EmailBody string `json:"email_body" binding:"required,min=10"`
	Language  string `json:"language"`
	Mode      string `json:"mode" binding:"omitempty,oneof=variables analysis"`
}

func (s *Server) analyzeEmail(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	result, err := s.deps.Reverse(c.Request.Context(), req.EmailBody, reverse.Options{
		Language: req.Language,
		Mode:     reverse.Mode(req.Mode),
	})
	if err != nil {
		s.fail(c, "reverse-engineering", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// fail maps domain errors to HTTP responses. Every request gets exactly
// one terminal error; there are no partial results.
func (s *Server) fail(c *gin.Context, op string, err error) {
	s.deps.Logger.Error(op+" failed", zap.Error(err))

	switch {
	case errors.Is(err, completion.ErrNoAPIKey):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service_unavailable", "message": err.Error()})
	case errors.Is(err, reverse.ErrNoPlaceholders):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no_placeholders_found", "message": err.Error()})
	case errors.Is(err, reverse.ErrEmptyEmail), errors.Is(err, extract.ErrEmptyTranscript):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
	case errors.Is(err, campaign.ErrUnknownCampaign):
		c.JSON(http.StatusNotFound, gin.H{"error": "campaign_not_found", "message": err.Error()})
	case errors.Is(err, extract.ErrInvalidProfile),
		errors.Is(err, reverse.ErrInvalidVariables),
		errors.Is(err, completion.ErrMalformedResponse):
		c.JSON(http.StatusBadGateway, gin.H{"error": "invalid_model_response", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error", "message": err.Error()})
	}
}
