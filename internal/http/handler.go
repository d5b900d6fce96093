package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"journey-report-service/internal/http/middleware"
	"journey-report-service/internal/model"
	"journey-report-service/internal/report"
	"journey-report-service/internal/service"
)

type ReportGenerator interface {
	DefaultRange() model.DateRange
	Generate(ctx context.Context, rng model.DateRange) (*report.Artifact, error)
	Send(ctx context.Context, rng model.DateRange, req service.EmailRequest) (*report.Artifact, error)
}

type Handler struct {
	reports ReportGenerator
	log     zerolog.Logger
}

func NewHandler(reports ReportGenerator, log zerolog.Logger) *Handler {
	return &Handler{reports: reports, log: log}
}

func (h *Handler) Register(r *gin.Engine, sendLimit gin.HandlerFunc) {
	r.GET("/", h.root)
	r.GET("/health", health)
	r.GET("/download-report", h.downloadReport)
	r.GET("/report-summary", h.reportSummary)
	r.POST("/send-report", sendLimit, h.sendReport)
}

type sendReportRequest struct {
	SenderEmail    string `json:"sender_email" binding:"omitempty,email"`
	SenderPassword string `json:"sender_password"`
	RecipientEmail string `json:"recipient_email" binding:"required,email"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to Journey Report API"})
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) downloadReport(c *gin.Context) {
	rng, err := h.resolveRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	artifact, err := h.reports.Generate(c.Request.Context(), rng)
	if err != nil {
		h.handleError(c, err)
		return
	}

	writeArtifact(c, artifact)
}

func (h *Handler) reportSummary(c *gin.Context) {
	rng, err := h.resolveRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	artifact, err := h.reports.Generate(c.Request.Context(), rng)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(artifact.Summary))
}

func (h *Handler) sendReport(c *gin.Context) {
	var req sendReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body: "+err.Error()))
		return
	}

	rng, err := h.resolveRange(req.StartDate, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	artifact, err := h.reports.Send(c.Request.Context(), rng, service.EmailRequest{
		SenderEmail:    req.SenderEmail,
		SenderPassword: req.SenderPassword,
		RecipientEmail: req.RecipientEmail,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report sent successfully", "file": artifact.Filename})
}

// resolveRange falls back to the service default when both bounds are
// missing; a single bound is rejected.
func (h *Handler) resolveRange(start, end string) (model.DateRange, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	switch {
	case start == "" && end == "":
		return h.reports.DefaultRange(), nil
	case start == "" || end == "":
		return model.DateRange{}, errors.New("start_date and end_date must be given together")
	}

	rng, err := model.ParseDateRange(start, end)
	if err != nil {
		return model.DateRange{}, fmt.Errorf("invalid date, expected YYYY-MM-DD: %w", err)
	}
	return rng, nil
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRange), errors.Is(err, service.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNoData):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrDelivery):
		h.log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("report delivery failed")
		c.JSON(http.StatusBadGateway, errorResponse("report was built but could not be sent"))
	default:
		h.log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func writeArtifact(c *gin.Context, artifact *report.Artifact) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

func successResponse(data interface{}) gin.H {
	return gin.H{"data": data}
}

func errorResponse(message string) gin.H {
	return gin.H{"error": message}
}
