package services

import (
	"github.com/thyeshengleng/collection-form/repositories"
)

// Services holds all service instances
type Services struct {
	Records   RecordService
	Debtors   DebtorService
	FormStore FormStoreService
	Export    ExportService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Records:   NewRecordService(repos.Records),
		Debtors:   NewDebtorService(repos.Debtors),
		FormStore: NewFormStoreService(repos.KV),
		Export:    NewExportService(),
	}
}
