package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/thyeshengleng/collection-form/logger"
	"github.com/thyeshengleng/collection-form/models"
	"github.com/thyeshengleng/collection-form/repositories"
	"github.com/thyeshengleng/collection-form/services"
	"github.com/thyeshengleng/collection-form/userctx"
)

// RecordController handles the record table, detail view and form
type RecordController struct {
	services *services.Services
}

// NewRecordController creates a new record controller
func NewRecordController(services *services.Services) *RecordController {
	return &RecordController{
		services: services,
	}
}

// formOptions are the choices offered by the record form
type formOptions struct {
	Plugins         []string
	ReportTemplates []string
	Statuses        []string
}

// detailFields are shown in the detail view, in order
var detailFields = func() []string {
	fields := make([]string, 0, len(models.EditableFields)+2)
	fields = append(fields, models.FieldID)
	fields = append(fields, models.EditableFields...)
	return append(fields, models.FieldCreatedDate)
}()

var recordFormOptions = formOptions{
	Plugins:         models.PluginOptions,
	ReportTemplates: models.ReportTemplateOptions,
	Statuses:        models.StatusOptions,
}

// recordsPage is the data of the table/detail page
type recordsPage struct {
	Title       string
	CurrentPage string
	User        string
	Error       string
	Flash       *models.FlashMessage
	Records     models.RecordSet
	Total       int
	Counts      map[string]int
	LoadFailed  bool
	State       models.ViewState
	Selected    *models.Record
	Form        *models.RecordForm
	FieldErrors models.ValidationErrors
	Options     formOptions
	Fields      []string
}

// formPage is the data of the new record page
type formPage struct {
	Title       string
	CurrentPage string
	User        string
	Error       string
	Flash       *models.FlashMessage
	Form        *models.RecordForm
	FieldErrors models.ValidationErrors
	Options     formOptions
}

// Index handles GET /records
func (c *RecordController) Index(w http.ResponseWriter, r *http.Request) {
	state := viewState(r)
	if r.URL.Query().Has("q") {
		state = state.WithSearch(strings.TrimSpace(r.URL.Query().Get("q")))
		saveViewState(r, state)
	}

	c.renderRecords(w, r, http.StatusOK, state, nil, nil)
}

// renderRecords renders the table page. form and fieldErrs carry a rejected edit.
func (c *RecordController) renderRecords(w http.ResponseWriter, r *http.Request, status int, state models.ViewState, form *models.RecordForm, fieldErrs models.ValidationErrors) {
	data := recordsPage{
		Title:       "Collection Action List",
		CurrentPage: "records",
		User:        userctx.GetUserName(r.Context()),
		Flash:       popFlash(r),
		State:       state,
		Form:        form,
		FieldErrors: fieldErrs,
		Options:     recordFormOptions,
		Fields:      detailFields,
	}

	all, err := c.services.Records.ListRecords(r.Context(), "")
	if err != nil {
		data.LoadFailed = true
		data.Error = "Failed to load records: " + err.Error()
		renderTemplateWithStatus(w, http.StatusInternalServerError, "records", "templates/records.html", data)
		return
	}
	data.Total = len(all)
	data.Counts = all.CountByStatus()
	data.Records = all.Search(state.Search)

	if !state.IsBrowsing() {
		selected, ok := all.Find(state.RecordID)
		if !ok {
			// The record was removed by someone else
			state = state.Close()
			saveViewState(r, state)
			data.State = state
			data.Flash = models.NewFlash("warning", "The selected record no longer exists")
		} else {
			data.Selected = selected
			if state.IsEditing() && data.Form == nil {
				data.Form = models.NewRecordFormFrom(*selected)
			}
		}
	}

	renderTemplateWithStatus(w, status, "records", "templates/records.html", data)
}

// New handles GET /records/new
func (c *RecordController) New(w http.ResponseWriter, r *http.Request) {
	data := formPage{
		Title:       "New Record",
		CurrentPage: "new",
		User:        userctx.GetUserName(r.Context()),
		Flash:       popFlash(r),
		Form:        &models.RecordForm{Status: models.StatusPending},
		Options:     recordFormOptions,
	}

	renderTemplate(w, "record_form", "templates/record_form.html", data)
}

// Create handles POST /records
func (c *RecordController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := parseRecordForm(r)
	record, err := c.services.Records.CreateRecord(r.Context(), form)
	if err != nil {
		data := formPage{
			Title:       "New Record",
			CurrentPage: "new",
			User:        userctx.GetUserName(r.Context()),
			Form:        form,
			Options:     recordFormOptions,
		}

		status := http.StatusInternalServerError
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			status = http.StatusBadRequest
			data.FieldErrors = verrs
		} else {
			data.Error = "Failed to save record: " + err.Error()
		}

		renderTemplateWithStatus(w, status, "record_form_error", "templates/record_form.html", data)
		return
	}

	setFlash(r, "success", fmt.Sprintf("Record for %s saved successfully!", record.CompanyName))
	http.Redirect(w, r, "/records", http.StatusSeeOther)
}

// Action handles POST /records/action, the buttons of the table page
func (c *RecordController) Action(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	state := viewState(r)
	selected := nonEmpty(r.PostForm["selected"])

	var err error
	switch action := r.PostFormValue("action"); action {
	case "view":
		state, err = state.View(selected)
	case "edit":
		state, err = state.Edit(selected)
	case "delete":
		state, err = state.RequestDelete(selected)
	case "confirm":
		var id string
		id, state, err = state.ConfirmDelete()
		if err == nil {
			err = c.services.Records.DeleteRecord(r.Context(), id)
			if err == nil {
				setFlash(r, "success", "Record deleted successfully!")
			}
		}
	case "cancel", "close":
		state = state.Close()
	default:
		http.Error(w, "Unknown action: "+action, http.StatusBadRequest)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, models.ErrNoSelection), errors.Is(err, models.ErrMultipleSelection), errors.Is(err, models.ErrNotConfirming):
			setFlash(r, "warning", capitalize(err.Error()))
		case errors.Is(err, repositories.ErrRecordNotFound):
			setFlash(r, "error", "The selected record no longer exists")
		default:
			logger.Log.Error("record action failed", zap.Error(err))
			setFlash(r, "error", "Error deleting record: "+err.Error())
		}
	}

	saveViewState(r, state)
	http.Redirect(w, r, "/records", http.StatusSeeOther)
}

// Update handles POST /records/{id}
func (c *RecordController) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := parseRecordForm(r)
	record, err := c.services.Records.UpdateRecord(r.Context(), id, form)
	state := viewState(r)

	var verrs models.ValidationErrors
	switch {
	case err == nil:
		state = state.Close()
		saveViewState(r, state)
		setFlash(r, "success", fmt.Sprintf("Record for %s updated successfully!", record.CompanyName))
	case errors.As(err, &verrs):
		state, _ = state.Edit([]string{id})
		saveViewState(r, state)
		c.renderRecords(w, r, http.StatusBadRequest, state, form, verrs)
		return
	case errors.Is(err, repositories.ErrRecordNotFound):
		saveViewState(r, state.Close())
		setFlash(r, "error", "The selected record no longer exists")
	default:
		setFlash(r, "error", "Error updating record: "+err.Error())
	}

	http.Redirect(w, r, "/records", http.StatusSeeOther)
}

// PDF handles GET /records/{id}/pdf
func (c *RecordController) PDF(w http.ResponseWriter, r *http.Request) {
	record, err := c.services.Records.GetRecord(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, repositories.ErrRecordNotFound) {
		http.Error(w, "Record not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to load record: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := c.services.Export.JobOrderPDF(&buf, *record); err != nil {
		logger.Log.Error("failed to generate pdf", zap.String("id", record.ID), zap.Error(err))
		http.Error(w, "Failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, pdfFileName(record.CompanyName)))
	w.Write(buf.Bytes())
}

// ExportCSV handles GET /records/export.csv
func (c *RecordController) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := c.services.Records.ExportCSV(r.Context(), &buf); err != nil {
		http.Error(w, "Failed to export records: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="collection_records.csv"`)
	w.Write(buf.Bytes())
}

// parseRecordForm reads the submitted form values
func parseRecordForm(r *http.Request) *models.RecordForm {
	return &models.RecordForm{
		NewUser:                     r.PostFormValue("new_user") == "on",
		ExistingUser:                r.PostFormValue("existing_user") == "on",
		CompanyName:                 r.PostFormValue("company_name"),
		Email:                       r.PostFormValue("email"),
		Address:                     r.PostFormValue("address"),
		BusinessInfo:                r.PostFormValue("business_info"),
		TaxID:                       r.PostFormValue("tax_id"),
		EInvoiceStartDate:           r.PostFormValue("einvoice_start_date"),
		PlugIns:                     nonEmpty(r.PostForm["plugins"]),
		VPNInfo:                     r.PostFormValue("vpn_info"),
		ModuleLicense:               r.PostFormValue("module_license"),
		ReportTemplates:             nonEmpty(r.PostForm["report_templates"]),
		MigrationMasterData:         r.PostFormValue("migration_master_data"),
		MigrationOutstandingBalance: r.PostFormValue("migration_outstanding_balance"),
		Status:                      r.PostFormValue("status"),
	}
}

func nonEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// pdfFileName builds a download name like job_order_Acme_Sdn_Bhd.pdf
func pdfFileName(company string) string {
	name := strings.Trim(unsafeFileChars.ReplaceAllString(company, "_"), "_")
	if name == "" {
		name = "record"
	}
	return "job_order_" + name + ".pdf"
}
