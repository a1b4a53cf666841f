package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/thyeshengleng/collection-form/services"
)

// maxFormBody caps the size of a stored record set document
const maxFormBody = 10 << 20

// APIController serves the JSON API used by other systems and the http record backend
type APIController struct {
	services *services.Services
}

// NewAPIController creates a new API controller
func NewAPIController(services *services.Services) *APIController {
	return &APIController{
		services: services,
	}
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Root handles GET /
func (c *APIController) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "API is running"})
}

// Health handles GET /health
func (c *APIController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Debtors handles GET /api/debtor
func (c *APIController) Debtors(w http.ResponseWriter, r *http.Request) {
	debtors, err := c.services.Debtors.GetDebtors(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, debtors)
}

// FormCORS adds the cross-origin headers of /api/form
func FormCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

// FormOptions handles OPTIONS /api/form
func (c *APIController) FormOptions(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// GetForm handles GET /api/form
func (c *APIController) GetForm(w http.ResponseWriter, r *http.Request) {
	doc, err := c.services.FormStore.Get(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}

// PostForm handles POST /api/form
func (c *APIController) PostForm(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxFormBody))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Detail: err.Error()})
		return
	}

	if err := c.services.FormStore.Put(r.Context(), body); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrNotJSONArray) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, errorResponse{Detail: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "Data saved successfully")
}
