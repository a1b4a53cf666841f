package models

import (
	"strings"
)

// RecordForm represents form data for creating/updating a record
type RecordForm struct {
	NewUser                     bool
	ExistingUser                bool
	CompanyName                 string
	Email                       string
	Address                     string
	BusinessInfo                string
	TaxID                       string
	EInvoiceStartDate           string
	PlugIns                     []string
	VPNInfo                     string
	ModuleLicense               string
	ReportTemplates             []string
	MigrationMasterData         string
	MigrationOutstandingBalance string
	Status                      string
}

// NewRecordFormFrom pre-fills a form with the current values of a record
func NewRecordFormFrom(r Record) *RecordForm {
	return &RecordForm{
		NewUser:                     r.UserType == UserTypeNew,
		ExistingUser:                r.UserType == UserTypeExisting,
		CompanyName:                 r.CompanyName,
		Email:                       r.Email,
		Address:                     r.Address,
		BusinessInfo:                r.BusinessInfo,
		TaxID:                       r.TaxID,
		EInvoiceStartDate:           r.EInvoiceStartDate,
		PlugIns:                     r.PlugIns(),
		VPNInfo:                     r.VPNInfo,
		ModuleLicense:               r.ModuleLicense,
		ReportTemplates:             r.ReportTemplates(),
		MigrationMasterData:         r.MigrationMasterData,
		MigrationOutstandingBalance: r.MigrationOutstandingBalance,
		Status:                      r.Status,
	}
}

// UserType returns the selected user type, or "" when none is selected
func (f *RecordForm) UserType() string {
	switch {
	case f.NewUser && !f.ExistingUser:
		return UserTypeNew
	case f.ExistingUser && !f.NewUser:
		return UserTypeExisting
	}
	return ""
}

// HasPlugIn is used by templates to tick checkboxes
func (f *RecordForm) HasPlugIn(name string) bool {
	return contains(f.PlugIns, name)
}

// HasReportTemplate is used by templates to tick checkboxes
func (f *RecordForm) HasReportTemplate(name string) bool {
	return contains(f.ReportTemplates, name)
}

// Validate validates the record form data
func (f *RecordForm) Validate() ValidationErrors {
	var errs ValidationErrors

	switch {
	case !f.NewUser && !f.ExistingUser:
		errs.add(FieldUserType, "Please select a user type")
	case f.NewUser && f.ExistingUser:
		errs.add(FieldUserType, "Please select only one user type")
	}

	if isBlank(f.CompanyName) {
		errs.add(FieldCompanyName, "Company name is required")
	}

	if isBlank(f.Email) {
		errs.add(FieldEmail, "Email is required")
	} else if !strings.Contains(f.Email, "@") {
		errs.add(FieldEmail, "Please enter a valid email address")
	}

	if isBlank(f.Address) {
		errs.add(FieldAddress, "Address is required")
	}
	if isBlank(f.BusinessInfo) {
		errs.add(FieldBusinessInfo, "Business info is required")
	}
	if isBlank(f.TaxID) {
		errs.add(FieldTaxID, "Tax ID is required")
	}

	if isBlank(f.EInvoiceStartDate) {
		errs.add(FieldEInvoiceStartDate, "E-Invoice start date is required")
	} else if _, err := ParseDate(strings.TrimSpace(f.EInvoiceStartDate)); err != nil {
		errs.add(FieldEInvoiceStartDate, "E-Invoice start date must be in YYYY-MM-DD format")
	}

	if len(f.PlugIns) == 0 {
		errs.add(FieldPlugInModule, "Please select at least one plugin")
	}
	for _, p := range f.PlugIns {
		if !contains(PluginOptions, p) {
			errs.add(FieldPlugInModule, "Unknown plugin: "+p)
		}
	}

	if isBlank(f.VPNInfo) {
		errs.add(FieldVPNInfo, "VPN info is required")
	}
	if isBlank(f.ModuleLicense) {
		errs.add(FieldModuleLicense, "Module & User License is required")
	}

	if len(f.ReportTemplates) == 0 {
		errs.add(FieldReportTemplate, "Please select at least one report template")
	}
	for _, t := range f.ReportTemplates {
		if !contains(ReportTemplateOptions, t) {
			errs.add(FieldReportTemplate, "Unknown report template: "+t)
		}
	}

	if isBlank(f.MigrationMasterData) {
		errs.add(FieldMigrationMasterData, "Migration master data is required")
	}
	if isBlank(f.MigrationOutstandingBalance) {
		errs.add(FieldMigrationOutstandingBalance, "Migration outstanding balance is required")
	}

	if f.Status == "" {
		errs.add(FieldStatus, "Status is required")
	} else if !IsValidStatus(f.Status) {
		errs.add(FieldStatus, "Status must be one of: "+strings.Join(StatusOptions, " | "))
	}

	return errs
}

// ToFields converts the form into the flat mapping stored on a record.
// Multi-select values are joined with ", " in the order of the option lists.
func (f *RecordForm) ToFields() Fields {
	return Fields{
		FieldUserType:                    f.UserType(),
		FieldCompanyName:                 strings.TrimSpace(f.CompanyName),
		FieldEmail:                       strings.TrimSpace(f.Email),
		FieldAddress:                     strings.TrimSpace(f.Address),
		FieldBusinessInfo:                strings.TrimSpace(f.BusinessInfo),
		FieldTaxID:                       strings.TrimSpace(f.TaxID),
		FieldEInvoiceStartDate:           strings.TrimSpace(f.EInvoiceStartDate),
		FieldPlugInModule:                JoinMultiValue(ordered(PluginOptions, f.PlugIns)),
		FieldVPNInfo:                     strings.TrimSpace(f.VPNInfo),
		FieldModuleLicense:               strings.TrimSpace(f.ModuleLicense),
		FieldReportTemplate:              JoinMultiValue(ordered(ReportTemplateOptions, f.ReportTemplates)),
		FieldMigrationMasterData:         strings.TrimSpace(f.MigrationMasterData),
		FieldMigrationOutstandingBalance: strings.TrimSpace(f.MigrationOutstandingBalance),
		FieldStatus:                      f.Status,
	}
}

// ordered returns the selected values following the option order
func ordered(options, selected []string) []string {
	result := make([]string, 0, len(selected))
	for _, o := range options {
		if contains(selected, o) {
			result = append(result, o)
		}
	}
	return result
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
