package services

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/thyeshengleng/collection-form/logger"
	"github.com/thyeshengleng/collection-form/models"
	"github.com/thyeshengleng/collection-form/repositories"
)

// RecordService interface defines record management business logic
type RecordService interface {
	ListRecords(ctx context.Context, search string) (models.RecordSet, error)
	GetRecord(ctx context.Context, id string) (*models.Record, error)
	CreateRecord(ctx context.Context, form *models.RecordForm) (*models.Record, error)
	UpdateRecord(ctx context.Context, id string, form *models.RecordForm) (*models.Record, error)
	DeleteRecord(ctx context.Context, id string) error
	ImportCSV(ctx context.Context, r io.Reader) (int, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}

// recordService implements RecordService interface
type recordService struct {
	recordRepo repositories.RecordRepository
}

// NewRecordService creates a new record service
func NewRecordService(recordRepo repositories.RecordRepository) RecordService {
	return &recordService{recordRepo: recordRepo}
}

// ListRecords retrieves all records matching the search term
func (s *recordService) ListRecords(ctx context.Context, search string) (models.RecordSet, error) {
	set, err := s.recordRepo.Load(ctx)
	if err != nil {
		logger.Log.Error("failed to load records", zap.Error(err))
		return nil, err
	}
	return set.Search(search), nil
}

// GetRecord retrieves a record by ID
func (s *recordService) GetRecord(ctx context.Context, id string) (*models.Record, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty ID", repositories.ErrRecordNotFound)
	}
	return s.recordRepo.Get(ctx, id)
}

// CreateRecord validates the form and stores a new record
func (s *recordService) CreateRecord(ctx context.Context, form *models.RecordForm) (*models.Record, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	record, _, err := s.recordRepo.Create(ctx, form.ToFields())
	if err != nil {
		logger.Log.Error("failed to create record", zap.Error(err))
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	logger.Log.Info("record created",
		zap.String("id", record.ID),
		zap.String("company", record.CompanyName),
	)
	return record, nil
}

// UpdateRecord validates the form and overwrites the record's fields
func (s *recordService) UpdateRecord(ctx context.Context, id string, form *models.RecordForm) (*models.Record, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	set, err := s.recordRepo.Update(ctx, id, form.ToFields())
	if err != nil {
		logger.Log.Error("failed to update record", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	record, ok := set.Find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", repositories.ErrRecordNotFound, id)
	}

	logger.Log.Info("record updated", zap.String("id", id))
	return record, nil
}

// DeleteRecord permanently deletes a record
func (s *recordService) DeleteRecord(ctx context.Context, id string) error {
	if _, err := s.recordRepo.Delete(ctx, id); err != nil {
		logger.Log.Error("failed to delete record", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete record: %w", err)
	}

	logger.Log.Info("record deleted", zap.String("id", id))
	return nil
}

// ImportCSV appends every row of a CSV export as a new record.
// Rows are validated like the form; if any row is invalid nothing is imported.
// IDs and creation dates are assigned fresh.
func (s *recordService) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	rows, err := repositories.DecodeRecordsCSV(r)
	if err != nil {
		return 0, err
	}

	forms := make([]*models.RecordForm, len(rows))
	for i, row := range rows {
		form := models.NewRecordFormFrom(row)
		if verrs := form.Validate(); verrs.HasErrors() {
			logger.Log.Warn("rejected csv import", zap.Int("row", i+1), zap.Strings("errors", verrs.GetMessages()))
			return 0, fmt.Errorf("row %d: %w", i+1, verrs)
		}
		forms[i] = form
	}

	for i, form := range forms {
		if _, _, err := s.recordRepo.Create(ctx, form.ToFields()); err != nil {
			return i, fmt.Errorf("failed to import row %d: %w", i+1, err)
		}
	}

	logger.Log.Info("records imported", zap.Int("count", len(forms)))
	return len(forms), nil
}

// ExportCSV writes all records as CSV
func (s *recordService) ExportCSV(ctx context.Context, w io.Writer) error {
	set, err := s.recordRepo.Load(ctx)
	if err != nil {
		return err
	}

	data, err := repositories.EncodeRecordsCSV(set)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
