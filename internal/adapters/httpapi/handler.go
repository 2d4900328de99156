package httpapi

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikey/llm-phishing-detector/internal/core"
	"github.com/mikey/llm-phishing-detector/internal/metrics"
	"github.com/mikey/llm-phishing-detector/internal/ports"
	"go.uber.org/zap"
)

// Analysis sources used as metric labels
const (
	sourceRequest = "request"
	sourceSample  = "sample"
)

// MessageResponse is returned by the greeting endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// Handler serves the detector endpoints
type Handler struct {
	analyzer ports.EmailAnalyzer
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewHandler creates a new handler
func NewHandler(analyzer ports.EmailAnalyzer, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		analyzer: analyzer,
		metrics:  m,
		logger:   logger,
	}
}

// Hello handles GET /api/hello
func (h *Handler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Hello from Python backend!"})
}

// Goodbye handles GET /api/goodbye
func (h *Handler) Goodbye(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Goodbye from Python backend!"})
}

// Health handles GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Sample handles GET / by analyzing the built-in sample email
func (h *Handler) Sample(c *gin.Context) {
	h.run(c, sourceSample, func(ctx context.Context) (*core.ClassificationResult, error) {
		return h.analyzer.SampleAnalysis(ctx)
	})
}

// Analyze handles POST /analyze. JSON requests carry the content in
// email_content; any other content type is analyzed as raw text.
func (h *Handler) Analyze(c *gin.Context) {
	content, err := h.readContent(c)
	if err == nil {
		err = core.ValidateContent(content)
	}
	if err != nil {
		h.metrics.RecordAnalysis(sourceRequest, metrics.OutcomeInvalid, 0)
		h.logger.Warn("Rejected analysis request",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err))
		HandleError(c, err)
		return
	}

	h.run(c, sourceRequest, func(ctx context.Context) (*core.ClassificationResult, error) {
		return h.analyzer.Analyze(ctx, content)
	})
}

func (h *Handler) run(c *gin.Context, source string, analyze func(context.Context) (*core.ClassificationResult, error)) {
	start := time.Now()
	result, err := analyze(c.Request.Context())
	if err != nil {
		h.metrics.RecordAnalysis(source, metrics.OutcomeFailure, time.Since(start))
		h.logger.Error("Analysis failed",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("source", source),
			zap.Error(err))
		HandleError(c, err)
		return
	}

	h.metrics.RecordAnalysis(source, metrics.OutcomeSuccess, time.Since(start))
	c.JSON(http.StatusOK, result)
}

func (h *Handler) readContent(c *gin.Context) (string, error) {
	if !isJSON(c.GetHeader("Content-Type")) {
		body, err := c.GetRawData()
		if err != nil {
			return "", bodyError(err)
		}
		return string(body), nil
	}

	var req core.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", bodyError(err)
	}
	if req.EmailContent == nil {
		return "", &core.ValidationError{Message: core.MsgContentRequired}
	}
	return *req.EmailContent, nil
}

// bodyError keeps size-limit failures intact and reports anything else as a
// missing email_content
func bodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return err
	}
	return &core.ValidationError{Message: core.MsgContentRequired}
}

// isJSON reports whether the content type is application/json or application/*+json
func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" ||
		(strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"))
}
