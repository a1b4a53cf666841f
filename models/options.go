package models

// User types
const (
	UserTypeNew      = "New User"
	UserTypeExisting = "Existing User"
)

// Statuses
const (
	StatusPending      = "pending"
	StatusComplete     = "complete"
	StatusStockPending = "AR/Ap, Stock pending"
)

// StatusOptions is the fixed status enumeration
var StatusOptions = []string{StatusPending, StatusComplete, StatusStockPending}

// PluginOptions are the plug in modules a customer can order
var PluginOptions = []string{
	"Deposit Plugin",
	"Fix Asset Plugin",
	"Shipment Plugin",
	"Stock Request Plugin",
	"Doc Control Plugin",
}

// ReportTemplateOptions are the report design templates a customer can order
var ReportTemplateOptions = []string{"SO", "DO", "INV", "PO", "PICKING LIST"}

// IsValidStatus reports whether status belongs to the enumeration
func IsValidStatus(status string) bool {
	return contains(StatusOptions, status)
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
