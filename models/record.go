package models

import (
	"errors"
	"fmt"
	"strings"
)

// Field names as they appear in forms, JSON payloads and CSV headers
const (
	FieldID                          = "ID"
	FieldUserType                    = "User Type"
	FieldCompanyName                 = "Company Name"
	FieldEmail                       = "Email"
	FieldAddress                     = "Address"
	FieldBusinessInfo                = "Business Info"
	FieldTaxID                       = "Tax ID"
	FieldEInvoiceStartDate           = "E-Invoice Start Date"
	FieldPlugInModule                = "Plug In Module"
	FieldVPNInfo                     = "VPN Info"
	FieldModuleLicense               = "Module & User License"
	FieldReportTemplate              = "Report Design Template"
	FieldMigrationMasterData         = "Migration Master Data"
	FieldMigrationOutstandingBalance = "Migration Outstanding Balance"
	FieldStatus                      = "Status"
	FieldCreatedDate                 = "Created Date"
)

// EditableFields lists the fields a caller may set, in display order
var EditableFields = []string{
	FieldUserType,
	FieldCompanyName,
	FieldEmail,
	FieldAddress,
	FieldBusinessInfo,
	FieldTaxID,
	FieldEInvoiceStartDate,
	FieldPlugInModule,
	FieldVPNInfo,
	FieldModuleLicense,
	FieldReportTemplate,
	FieldMigrationMasterData,
	FieldMigrationOutstandingBalance,
	FieldStatus,
}

// MultiValueSeparator joins the values of multi-select fields
const MultiValueSeparator = ", "

var (
	// ErrUnknownField is returned when a field name is not part of a record
	ErrUnknownField = errors.New("unknown field")
	// ErrImmutableField is returned when a caller tries to overwrite ID or Created Date
	ErrImmutableField = errors.New("field cannot be changed")
)

// Fields maps field names to their string values
type Fields map[string]string

// Record represents one company's job order / collection action entry
type Record struct {
	ID                          string `json:"ID,omitempty" csv:"ID"`
	UserType                    string `json:"User Type" csv:"User Type"`
	CompanyName                 string `json:"Company Name" csv:"Company Name"`
	Email                       string `json:"Email" csv:"Email"`
	Address                     string `json:"Address" csv:"Address"`
	BusinessInfo                string `json:"Business Info" csv:"Business Info"`
	TaxID                       string `json:"Tax ID" csv:"Tax ID"`
	EInvoiceStartDate           string `json:"E-Invoice Start Date" csv:"E-Invoice Start Date"`
	PlugInModule                string `json:"Plug In Module" csv:"Plug In Module"`
	VPNInfo                     string `json:"VPN Info" csv:"VPN Info"`
	ModuleLicense               string `json:"Module & User License" csv:"Module & User License"`
	ReportTemplate              string `json:"Report Design Template" csv:"Report Design Template"`
	MigrationMasterData         string `json:"Migration Master Data" csv:"Migration Master Data"`
	MigrationOutstandingBalance string `json:"Migration Outstanding Balance" csv:"Migration Outstanding Balance"`
	Status                      string `json:"Status" csv:"Status"`
	CreatedDate                 string `json:"Created Date,omitempty" csv:"Created Date"`
}

func (r *Record) field(name string) (*string, bool) {
	switch name {
	case FieldID:
		return &r.ID, true
	case FieldUserType:
		return &r.UserType, true
	case FieldCompanyName:
		return &r.CompanyName, true
	case FieldEmail:
		return &r.Email, true
	case FieldAddress:
		return &r.Address, true
	case FieldBusinessInfo:
		return &r.BusinessInfo, true
	case FieldTaxID:
		return &r.TaxID, true
	case FieldEInvoiceStartDate:
		return &r.EInvoiceStartDate, true
	case FieldPlugInModule:
		return &r.PlugInModule, true
	case FieldVPNInfo:
		return &r.VPNInfo, true
	case FieldModuleLicense:
		return &r.ModuleLicense, true
	case FieldReportTemplate:
		return &r.ReportTemplate, true
	case FieldMigrationMasterData:
		return &r.MigrationMasterData, true
	case FieldMigrationOutstandingBalance:
		return &r.MigrationOutstandingBalance, true
	case FieldStatus:
		return &r.Status, true
	case FieldCreatedDate:
		return &r.CreatedDate, true
	}
	return nil, false
}

// Get returns the value of the named field and whether the field exists
func (r Record) Get(name string) (string, bool) {
	p, ok := r.field(name)
	if !ok {
		return "", false
	}
	return *p, true
}

// Fields returns the editable fields of the record as a name/value mapping
func (r Record) Fields() Fields {
	fields := make(Fields, len(EditableFields))
	for _, name := range EditableFields {
		fields[name], _ = r.Get(name)
	}
	return fields
}

// Apply overwrites only the fields present in the mapping.
// The record is left untouched when any key is rejected.
func (r *Record) Apply(fields Fields) error {
	for name := range fields {
		if name == FieldID || name == FieldCreatedDate {
			return fmt.Errorf("%w: %s", ErrImmutableField, name)
		}
		if _, ok := r.field(name); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}
	for name, value := range fields {
		p, _ := r.field(name)
		*p = value
	}
	return nil
}

// NewRecord builds a record from a field mapping
func NewRecord(fields Fields) (Record, error) {
	var r Record
	if err := r.Apply(fields); err != nil {
		return Record{}, err
	}
	return r, nil
}

// PlugIns returns the selected plugins
func (r Record) PlugIns() []string {
	return SplitMultiValue(r.PlugInModule)
}

// ReportTemplates returns the selected report design templates
func (r Record) ReportTemplates() []string {
	return SplitMultiValue(r.ReportTemplate)
}

// JoinMultiValue joins multi-select values for storage
func JoinMultiValue(values []string) string {
	return strings.Join(values, MultiValueSeparator)
}

// SplitMultiValue splits a stored multi-select value back into its parts
func SplitMultiValue(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, MultiValueSeparator)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
