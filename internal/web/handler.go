// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package web serves the browser form: it accepts a keyword batch,
// dispatches it, renders the results, and offers the last batch as a
// download. The last batch is held in memory only and is replaced by the
// next submission.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/fanout-extractor/internal/dataforseo"
	"github.com/pdiddy/fanout-extractor/internal/export"
	"github.com/pdiddy/fanout-extractor/internal/report"
	"github.com/pdiddy/fanout-extractor/pkg/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// SearchForm is the form and JSON body accepted by the search endpoints.
type SearchForm struct {
	Login        string `form:"login" json:"login"`
	Password     string `form:"password" json:"password"`
	Keywords     string `form:"keywords" json:"keywords"`
	LocationCode int    `form:"location_code" json:"location_code"`
	LanguageCode string `form:"language_code" json:"language_code"`
}

type pageData struct {
	Form                 SearchForm
	HasServerCredentials bool
	Error                string
	Warnings             []string
	Views                []report.View
	Formats              []export.Format
}

// Handler holds the dispatcher, defaults, and the last usable batch.
type Handler struct {
	dispatcher dataforseo.Dispatcher
	defaults   types.SearchConfig
	creds      types.Credentials
	logger     logrus.FieldLogger

	mu   sync.RWMutex
	last []types.TaskResult
}

// NewHandler returns a Handler. creds are used when a submission leaves
// both login and password blank.
func NewHandler(d dataforseo.Dispatcher, defaults types.SearchConfig, creds types.Credentials, logger logrus.FieldLogger) *Handler {
	return &Handler{dispatcher: d, defaults: defaults, creds: creds, logger: logger}
}

// Router builds the gin engine with all routes registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(template.Must(template.New("").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.html")))

	r.GET("/", h.Index)
	r.POST("/search", h.Search)
	r.POST("/api/search", h.SearchJSON)
	r.GET("/export/:format", h.Export)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	return r
}

// Index renders the empty form with the configured defaults.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.page(SearchForm{
		LocationCode: h.defaults.LocationCode,
		LanguageCode: h.defaults.LanguageCode,
	}))
}

// Search handles the HTML form submission.
func (h *Handler) Search(c *gin.Context) {
	var form SearchForm
	if err := c.ShouldBind(&form); err != nil {
		page := h.page(form)
		page.Error = "Invalid request format"
		c.HTML(http.StatusBadRequest, "index.html", page)
		return
	}

	sub, status, err := h.submit(c, form)
	page := h.page(form)
	if err != nil {
		page.Error = err.Error()
		c.HTML(status, "index.html", page)
		return
	}
	page.Warnings = sub.Warnings()
	page.Views = report.Views(sub.Batch.Results)
	page.Formats = export.Formats
	c.HTML(http.StatusOK, "index.html", page)
}

// SearchJSON is the JSON counterpart of Search.
func (h *Handler) SearchJSON(c *gin.Context) {
	var form SearchForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	sub, status, err := h.submit(c, form)
	if err != nil {
		resp := gin.H{"success": false, "error": err.Error()}
		var be *dataforseo.BatchError
		if errors.As(err, &be) {
			resp["errors"] = be.Messages
		}
		c.JSON(status, resp)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"results":  sub.Batch.Results,
		"warnings": sub.Warnings(),
	})
}

// Export downloads the last usable batch in the requested format.
func (h *Handler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Param("format"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	h.mu.RLock()
	results := h.last
	h.mu.RUnlock()
	if len(results) == 0 {
		c.String(http.StatusNotFound, "no results to export")
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, results); err != nil {
		h.logger.WithField("error", err.Error()).Error("export failed")
		c.String(http.StatusInternalServerError, "export failed")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+format.FileName()+`"`)
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// submit fills blanks from the server defaults, runs the batch, and
// records a usable result as the new last batch. Any earlier batch is
// dropped first, so a failed submission leaves nothing to export. The
// returned status is meaningful only when err is non-nil.
func (h *Handler) submit(c *gin.Context, form SearchForm) (dataforseo.Submission, int, error) {
	h.mu.Lock()
	h.last = nil
	h.mu.Unlock()

	in := dataforseo.Input{
		Credentials:  types.Credentials{Login: form.Login, Password: form.Password},
		Keywords:     form.Keywords,
		LocationCode: form.LocationCode,
		LanguageCode: form.LanguageCode,
	}
	if in.Credentials.Login == "" && in.Credentials.Password == "" {
		in.Credentials = h.creds
	}
	if in.LocationCode == 0 {
		in.LocationCode = h.defaults.LocationCode
	}
	if in.LanguageCode == "" {
		in.LanguageCode = h.defaults.LanguageCode
	}

	// In-flight lookups run to completion even if the client goes away.
	ctx := context.WithoutCancel(c.Request.Context())
	sub, err := dataforseo.Submit(ctx, h.dispatcher, in)
	if err != nil {
		var ve *dataforseo.ValidationError
		if errors.As(err, &ve) {
			h.logger.WithField("field", ve.Field).Info("submission rejected")
			return sub, http.StatusBadRequest, err
		}
		h.logger.WithField("keywords", len(sub.Params.Keywords)).Warn("batch returned no results")
		return sub, http.StatusBadGateway, err
	}

	h.mu.Lock()
	h.last = sub.Batch.Results
	h.mu.Unlock()

	if w := sub.Warnings(); len(w) > 0 {
		h.logger.WithField("failed", len(w)).Warn("partial batch failure")
	}
	return sub, 0, nil
}

func (h *Handler) page(form SearchForm) pageData {
	form.Password = ""
	return pageData{Form: form, HasServerCredentials: h.creds.IsComplete()}
}
