// Package gin provides the HTTP API for review analysis.
package gin

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/reviewlens/revlens"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":5000"

// ShutdownTimeout bounds how long Close waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Server serves the review analysis API.
type Server struct {
	server *http.Server
	router *gin.Engine

	Addr string

	// Summarizer analyzes review sets. Required.
	Summarizer revlens.Summarizer

	// ExtractionService records analyzed review sets. Optional; when nil
	// the server runs stateless and history routes return 503.
	ExtractionService revlens.ExtractionService

	Logger *slog.Logger
}

// NewServer creates a Server with routes registered.
func NewServer() *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		router: gin.New(),
		Addr:   DefaultAddr,
		Logger: slog.New(slog.DiscardHandler),
	}
	s.server = &http.Server{Handler: s.router}

	s.router.Use(gin.Recovery())
	s.router.Use(s.logRequests())
	s.router.Use(cors.Default())

	s.router.GET("/healthz", s.handleHealth)
	s.router.POST("/analyze", s.handleAnalyze)
	s.router.GET("/extractions", s.handleListExtractions)
	s.router.GET("/extractions/:id", s.handleGetExtraction)
	s.router.DELETE("/extractions/:id", s.handleDeleteExtraction)

	return s
}

// Open begins listening on the configured address and serves in the
// background.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.Addr = ln.Addr().String()

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("http server stopped", "error", err)
		}
	}()

	s.Logger.Info("http server listening", "addr", s.Addr)
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Handler exposes the router for in-process testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.Logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// analyzeRequest is the /analyze request body.
type analyzeRequest struct {
	URL     string   `json:"url"`
	Title   string   `json:"title"`
	Reviews []string `json:"reviews"`
}

// handleAnalyze summarizes a posted review set. When an extraction service
// is configured, the extraction and its summary are also recorded.
func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	reviews := req.Reviews
	if len(reviews) > revlens.MaxReviews {
		reviews = reviews[:revlens.MaxReviews]
	}
	if len(reviews) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No reviews provided"})
		return
	}

	extraction := &revlens.Extraction{
		URL:     req.URL,
		Title:   req.Title,
		Reviews: reviews,
	}
	if extraction.URL == "" {
		extraction.URL = "api://analyze"
	}

	summary, err := s.Summarizer.Summarize(c.Request.Context(), extraction)
	if err != nil {
		s.error(c, err)
		return
	}

	if s.ExtractionService != nil {
		if err := s.ExtractionService.CreateExtraction(c.Request.Context(), extraction); err != nil {
			s.Logger.Error("failed to record extraction", "error", err)
		} else if err := s.ExtractionService.AttachSummary(c.Request.Context(), extraction.ID, summary); err != nil {
			s.Logger.Error("failed to record summary", "error", err)
		}
	}

	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleListExtractions(c *gin.Context) {
	if s.ExtractionService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History is not enabled."})
		return
	}

	var filter revlens.ExtractionFilter
	if url := c.Query("url"); url != "" {
		filter.URL = &url
	}

	extractions, err := s.ExtractionService.FindExtractions(c.Request.Context(), filter)
	if err != nil {
		s.error(c, err)
		return
	}
	if extractions == nil {
		extractions = []*revlens.Extraction{}
	}
	c.JSON(http.StatusOK, gin.H{"extractions": extractions})
}

func (s *Server) handleGetExtraction(c *gin.Context) {
	if s.ExtractionService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History is not enabled."})
		return
	}

	extraction, err := s.ExtractionService.FindExtractionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.error(c, err)
		return
	}

	resp := gin.H{"extraction": extraction}
	if summary, err := s.ExtractionService.FindSummaryByExtraction(c.Request.Context(), extraction.ID); err == nil {
		resp["summary"] = summary
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleDeleteExtraction(c *gin.Context) {
	if s.ExtractionService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History is not enabled."})
		return
	}

	if err := s.ExtractionService.DeleteExtraction(c.Request.Context(), c.Param("id")); err != nil {
		s.error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// error writes an application error as a JSON response with a status code
// derived from its error code.
func (s *Server) error(c *gin.Context, err error) {
	code := revlens.ErrorCode(err)
	if code == revlens.EINTERNAL {
		s.Logger.Error("internal error", "path", c.Request.URL.Path, "error", err)
	}
	c.JSON(statusFromCode(code), gin.H{"error": revlens.ErrorMessage(err)})
}

func statusFromCode(code string) int {
	switch code {
	case revlens.EINVALID:
		return http.StatusBadRequest
	case revlens.ENOTFOUND:
		return http.StatusNotFound
	case revlens.ECONFLICT:
		return http.StatusConflict
	case revlens.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
