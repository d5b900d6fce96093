package http

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"journey-report-service/internal/http/middleware"
	"journey-report-service/internal/model"
	"journey-report-service/internal/service"
)

const (
	formTemplate = "form.html"
	minFormDate  = "2024-01-01"
)

//go:embed templates/*.html
var templatesFS embed.FS

func loadTemplates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}

type WebHandler struct {
	reports ReportGenerator
	log     zerolog.Logger
}

func NewWebHandler(reports ReportGenerator, log zerolog.Logger) *WebHandler {
	return &WebHandler{reports: reports, log: log}
}

func (h *WebHandler) Register(r *gin.Engine, sendLimit gin.HandlerFunc) {
	r.GET("/", h.form)
	r.GET("/health", health)
	r.POST("/report", h.download)
	r.POST("/report/email", sendLimit, h.email)
}

type formView struct {
	MinDate   string
	StartDate string
	EndDate   string
	Warning   string
	Error     string
	Success   string
}

func (h *WebHandler) form(c *gin.Context) {
	rng := h.reports.DefaultRange()
	h.render(c, http.StatusOK, formView{StartDate: rng.StartLabel(), EndDate: rng.EndLabel()})
}

func (h *WebHandler) download(c *gin.Context) {
	view := formView{StartDate: c.PostForm("start_date"), EndDate: c.PostForm("end_date")}

	rng, err := model.ParseDateRange(view.StartDate, view.EndDate)
	if err != nil {
		view.Error = "Please pick both a start and an end date."
		h.render(c, http.StatusBadRequest, view)
		return
	}

	artifact, err := h.reports.Generate(c.Request.Context(), rng)
	if err != nil {
		h.renderError(c, view, rng, err)
		return
	}

	writeArtifact(c, artifact)
}

func (h *WebHandler) email(c *gin.Context) {
	view := formView{StartDate: c.PostForm("start_date"), EndDate: c.PostForm("end_date")}

	rng, err := model.ParseDateRange(view.StartDate, view.EndDate)
	if err != nil {
		view.Error = "Please pick both a start and an end date."
		h.render(c, http.StatusBadRequest, view)
		return
	}

	artifact, err := h.reports.Send(c.Request.Context(), rng, service.EmailRequest{
		SenderEmail:    c.PostForm("sender_email"),
		SenderPassword: c.PostForm("sender_password"),
		RecipientEmail: c.PostForm("recipient_email"),
	})
	if err != nil {
		h.renderError(c, view, rng, err)
		return
	}

	view.Success = fmt.Sprintf("%s sent to %s.", artifact.Filename, c.PostForm("recipient_email"))
	h.render(c, http.StatusOK, view)
}

func (h *WebHandler) renderError(c *gin.Context, view formView, rng model.DateRange, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNoData):
		status = http.StatusOK
		view.Warning = fmt.Sprintf("No data found between %s and %s. Please select another date range.", rng.StartLabel(), rng.EndLabel())
	case errors.Is(err, service.ErrInvalidRange):
		status = http.StatusBadRequest
		view.Error = "End date must not be before the start date."
	case errors.Is(err, service.ErrInvalidRequest):
		status = http.StatusBadRequest
		view.Error = "A recipient email address is required."
	case errors.Is(err, service.ErrDelivery):
		status = http.StatusBadGateway
		view.Error = "The report was generated but could not be sent. Check the sender credentials."
		h.log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("report delivery failed")
	default:
		view.Error = "The report could not be generated. Please try again later."
		h.log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("report generation failed")
	}
	h.render(c, status, view)
}

func (h *WebHandler) render(c *gin.Context, status int, view formView) {
	view.MinDate = minFormDate
	c.HTML(status, formTemplate, view)
}
