package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Records RecordRepository
	Debtors DebtorRepository
	KV      KVRepository
	Audit   AuditRepository
}

// NewRepositories creates the database-backed repositories. When records is
// nil the CollectionActionList table stores the records.
func NewRepositories(db *sql.DB, records RecordRepository) *Repositories {
	if records == nil {
		records = NewSQLRecordRepository(db)
	}
	return &Repositories{
		Records: records,
		Debtors: NewDebtorRepository(db),
		KV:      NewKVRepository(db),
		Audit:   NewAuditRepository(db),
	}
}
