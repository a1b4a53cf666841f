package controllers

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/thyeshengleng/collection-form/authenticator"
	"github.com/thyeshengleng/collection-form/logger"
	"github.com/thyeshengleng/collection-form/models"
	"github.com/thyeshengleng/collection-form/services"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"add":  func(a, b int) int { return a + b },
	"join": strings.Join,
	"field": func(r *models.Record, name string) string {
		if r == nil {
			return ""
		}
		v, _ := r.Get(name)
		return v
	},
	"split": models.SplitMultiValue,
}

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, templateName string, pageTemplate string, data interface{}) error {
	return renderTemplateWithStatus(w, http.StatusOK, templateName, pageTemplate, data)
}

// renderTemplateWithStatus creates a template set and renders it with the provided data and status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, templateName string, pageTemplate string, data interface{}) error {
	tmpl := template.New(templateName).Funcs(templateFuncs)

	// Parse layout, shared partials and page template
	_, err := tmpl.ParseFS(templateFS, "templates/layout.html", "templates/partials.html", pageTemplate)
	if err != nil {
		logger.Log.Error("failed to parse template", zap.String("template", pageTemplate), zap.Error(err))
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}

	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		logger.Log.Error("failed to render template", zap.String("template", pageTemplate), zap.Error(err))
		return err
	}

	return nil
}

// writeJSON encodes v as the JSON response body
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", zap.Error(err))
	}
}

// Controllers holds all controller instances
type Controllers struct {
	Auth    *AuthController
	Records *RecordController
	API     *APIController
}

// NewControllers creates and initializes all controller instances.
// provider may be nil when login is disabled.
func NewControllers(services *services.Services, provider authenticator.Provider) *Controllers {
	return &Controllers{
		Auth:    NewAuthController(provider),
		Records: NewRecordController(services),
		API:     NewAPIController(services),
	}
}
