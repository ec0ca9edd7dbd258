// Package formapi serves the form CRUD and export endpoints.
package formapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"formloom/internal/config"
	"formloom/internal/form"
	"formloom/internal/httputil"
	"formloom/internal/storage"

	"github.com/gin-gonic/gin"
)

// Renderer turns a filled form into PDF bytes; *pdf.Renderer satisfies it.
type Renderer interface {
	Render(ctx context.Context, spec form.Spec, values map[string]any) ([]byte, error)
}

// Health handles GET /health.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
	}
}

// Save handles POST /api/form/save/. The body is the spec document
// itself or wrapped as {"spec": ...}; the id is the slug of its name.
func Save(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxFormBytes)
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			if httputil.IsBodyTooLarge(err) {
				httputil.Fail(c, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			httputil.Fail(c, http.StatusBadRequest, "failed to read request body")
			return
		}

		doc := unwrapSpec(body)
		var parsed any
		if err := json.Unmarshal(doc, &parsed); err != nil {
			httputil.Fail(c, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if violations := form.ValidateSpec(parsed); len(violations) > 0 {
			httputil.Fail(c, http.StatusBadRequest, strings.Join(violations, " "))
			return
		}

		name, _ := parsed.(map[string]any)["name"].(string)
		if form.SlugID(name) == "" {
			httputil.Fail(c, http.StatusBadRequest, "`name` must contain at least one letter, digit, hyphen, or underscore.")
			return
		}
		if _, err := store.Save(c.Request.Context(), name, doc); err != nil {
			log.Printf("save form: %v", err)
			httputil.Fail(c, http.StatusInternalServerError, "failed to save form")
			return
		}
		httputil.OKEmpty(c)
	}
}

// unwrapSpec returns the spec document whether the body is the spec
// itself or an envelope with a "spec" key.
func unwrapSpec(body []byte) []byte {
	var envelope struct {
		Spec json.RawMessage `json:"spec"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if trimmed := strings.TrimSpace(string(envelope.Spec)); strings.HasPrefix(trimmed, "{") {
			return envelope.Spec
		}
	}
	return body
}

// Load handles GET /api/form/load/:id. Missing forms are data: null.
func Load(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := store.Load(c.Request.Context(), c.Param("id"))
		if err != nil {
			log.Printf("load form: %v", err)
			httputil.Fail(c, http.StatusInternalServerError, "failed to load form")
			return
		}
		httputil.OK(c, json.RawMessage(doc))
	}
}

// Exists handles GET /api/form/exists/:id.
func Exists(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := store.Exists(c.Request.Context(), c.Param("id"))
		if err != nil {
			log.Printf("form exists: %v", err)
			httputil.Fail(c, http.StatusInternalServerError, "failed to check form")
			return
		}
		httputil.OK(c, ok)
	}
}

// List handles GET /api/form/list.
func List(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		infos, err := store.List(c.Request.Context())
		if err != nil {
			log.Printf("list forms: %v", err)
			httputil.Fail(c, http.StatusInternalServerError, "failed to list forms")
			return
		}
		httputil.OK(c, infos)
	}
}

// Delete handles DELETE /api/form/delete/:id. Deleting a form that was
// never saved is success.
func Delete(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Delete(c.Request.Context(), c.Param("id")); err != nil {
			log.Printf("delete form: %v", err)
			httputil.Fail(c, http.StatusInternalServerError, "failed to delete form")
			return
		}
		httputil.OKEmpty(c)
	}
}

// ExportPDF handles POST /api/form/export-pdf.
func ExportPDF(renderer Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxExportBytes)
		var req struct {
			Spec  json.RawMessage `json:"spec"`
			Value map[string]any  `json:"value"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			if httputil.IsBodyTooLarge(err) {
				httputil.Fail(c, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			httputil.Fail(c, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if len(req.Spec) == 0 || string(req.Spec) == "null" {
			httputil.Fail(c, http.StatusBadRequest, "missing field: spec")
			return
		}
		if req.Value == nil {
			httputil.Fail(c, http.StatusBadRequest, "missing field: value")
			return
		}

		var spec form.Spec
		if err := json.Unmarshal(req.Spec, &spec); err != nil {
			httputil.Fail(c, http.StatusBadRequest, "invalid spec JSON")
			return
		}

		data, err := renderer.Render(c.Request.Context(), spec, req.Value)
		if err != nil {
			log.Printf("export pdf: %v", err)
			httputil.Fail(c, http.StatusInternalServerError, "failed to render PDF")
			return
		}

		filename := form.SlugID(spec.Name)
		if filename == "" {
			filename = "form"
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".pdf"))
		c.Data(http.StatusOK, "application/pdf", data)
	}
}
