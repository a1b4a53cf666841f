package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thyeshengleng/collection-form/models"
)

// ErrRecordNotFound is returned when no record carries the requested ID
var ErrRecordNotFound = errors.New("record not found")

// RecordRepository interface defines record store operations
type RecordRepository interface {
	Load(ctx context.Context) (models.RecordSet, error)
	Save(ctx context.Context, set models.RecordSet) error
	Get(ctx context.Context, id string) (*models.Record, error)
	Create(ctx context.Context, fields models.Fields) (*models.Record, models.RecordSet, error)
	Update(ctx context.Context, id string, fields models.Fields) (models.RecordSet, error)
	Delete(ctx context.Context, id string) (models.RecordSet, error)
}

// recordColumns lists the CollectionActionList columns in models.Record order
const recordColumns = `RecordID, UserType, CompanyName, Email, Address, BusinessInfo, TaxID,
		       EInvoiceStartDate, PlugInModule, VPNInfo, ModuleLicense, ReportTemplate,
		       MigrationMasterData, MigrationOutstandingBalance, Status, CreatedDate`

// sqlRecordRepository implements RecordRepository with row-level statements
type sqlRecordRepository struct {
	db    *sql.DB
	newID func() string
	now   func() time.Time
}

// NewSQLRecordRepository creates a record repository backed by the CollectionActionList table
func NewSQLRecordRepository(db *sql.DB) RecordRepository {
	return &sqlRecordRepository{
		db:    db,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var r models.Record
	err := row.Scan(
		&r.ID,
		&r.UserType,
		&r.CompanyName,
		&r.Email,
		&r.Address,
		&r.BusinessInfo,
		&r.TaxID,
		&r.EInvoiceStartDate,
		&r.PlugInModule,
		&r.VPNInfo,
		&r.ModuleLicense,
		&r.ReportTemplate,
		&r.MigrationMasterData,
		&r.MigrationOutstandingBalance,
		&r.Status,
		&r.CreatedDate,
	)
	return r, err
}

func recordArgs(r models.Record) []any {
	return []any{
		r.ID,
		r.UserType,
		r.CompanyName,
		r.Email,
		r.Address,
		r.BusinessInfo,
		r.TaxID,
		r.EInvoiceStartDate,
		r.PlugInModule,
		r.VPNInfo,
		r.ModuleLicense,
		r.ReportTemplate,
		r.MigrationMasterData,
		r.MigrationOutstandingBalance,
		r.Status,
		r.CreatedDate,
	}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertRecord(ctx context.Context, db execer, r models.Record) error {
	query := `
		INSERT INTO CollectionActionList (` + recordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := db.ExecContext(ctx, query, recordArgs(r)...); err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

// Load retrieves all records in insertion order
func (r *sqlRecordRepository) Load(ctx context.Context) (models.RecordSet, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM CollectionActionList
		ORDER BY ID ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	set := models.RecordSet{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		set = append(set, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	return set, nil
}

// Save replaces the whole table with the given set inside one transaction
func (r *sqlRecordRepository) Save(ctx context.Context, set models.RecordSet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM CollectionActionList`); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}

	for _, record := range set {
		if record.ID == "" {
			record.ID = r.newID()
		}
		if record.CreatedDate == "" {
			record.CreatedDate = models.FormatDateTime(r.now())
		}
		if err := insertRecord(ctx, tx, record); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit records: %w", err)
	}
	return nil
}

// Get retrieves a record by ID
func (r *sqlRecordRepository) Get(ctx context.Context, id string) (*models.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM CollectionActionList
		WHERE RecordID = ?
	`

	record, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return &record, nil
}

// Create inserts a new record and returns it with the refreshed set
func (r *sqlRecordRepository) Create(ctx context.Context, fields models.Fields) (*models.Record, models.RecordSet, error) {
	record, err := models.NewRecord(fields)
	if err != nil {
		return nil, nil, err
	}
	record.ID = r.newID()
	record.CreatedDate = models.FormatDateTime(r.now())

	if err := insertRecord(ctx, r.db, record); err != nil {
		return nil, nil, err
	}

	set, err := r.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return &record, set, nil
}

// Update overwrites the given fields of one record
func (r *sqlRecordRepository) Update(ctx context.Context, id string, fields models.Fields) (models.RecordSet, error) {
	record, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := record.Apply(fields); err != nil {
		return nil, err
	}

	query := `
		UPDATE CollectionActionList
		SET UserType = ?, CompanyName = ?, Email = ?, Address = ?, BusinessInfo = ?,
		    TaxID = ?, EInvoiceStartDate = ?, PlugInModule = ?, VPNInfo = ?,
		    ModuleLicense = ?, ReportTemplate = ?, MigrationMasterData = ?,
		    MigrationOutstandingBalance = ?, Status = ?
		WHERE RecordID = ?
	`

	args := recordArgs(*record)
	// Skip RecordID at the front and CreatedDate at the back
	args = append(args[1:len(args)-1], id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}

	return r.Load(ctx)
}

// Delete removes one record
func (r *sqlRecordRepository) Delete(ctx context.Context, id string) (models.RecordSet, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM CollectionActionList WHERE RecordID = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}

	return r.Load(ctx)
}
