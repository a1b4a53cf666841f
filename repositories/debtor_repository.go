package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thyeshengleng/collection-form/models"
)

// DebtorRepository reads the accounting Debtor table
type DebtorRepository interface {
	GetTop(ctx context.Context, limit int) ([]models.Debtor, error)
}

type debtorRepository struct {
	db *sql.DB
}

// NewDebtorRepository creates a new debtor repository
func NewDebtorRepository(db *sql.DB) DebtorRepository {
	return &debtorRepository{db: db}
}

// GetTop retrieves the first limit debtors ordered by company name
func (r *debtorRepository) GetTop(ctx context.Context, limit int) ([]models.Debtor, error) {
	query := `
		SELECT AccNo, CompanyName, RegisterNo, Address1, Address2, Address3, Address4,
		       PostCode, Phone1, Phone2, EmailAddress, WebURL, NatureOfBusiness, IsActive
		FROM Debtor
		ORDER BY CompanyName ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query debtors: %w", err)
	}
	defer rows.Close()

	debtors := []models.Debtor{}
	for rows.Next() {
		var d models.Debtor
		var registerNo, address1, address2, address3, address4 sql.NullString
		var postCode, phone1, phone2, email, webURL, nature sql.NullString

		err := rows.Scan(
			&d.AccNo,
			&d.CompanyName,
			&registerNo,
			&address1,
			&address2,
			&address3,
			&address4,
			&postCode,
			&phone1,
			&phone2,
			&email,
			&webURL,
			&nature,
			&d.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debtor: %w", err)
		}

		// NULL columns come back as empty strings
		d.RegisterNo = registerNo.String
		d.Address1 = address1.String
		d.Address2 = address2.String
		d.Address3 = address3.String
		d.Address4 = address4.String
		d.PostCode = postCode.String
		d.Phone1 = phone1.String
		d.Phone2 = phone2.String
		d.EmailAddress = email.String
		d.WebURL = webURL.String
		d.NatureOfBusiness = nature.String

		debtors = append(debtors, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating debtors: %w", err)
	}

	return debtors, nil
}
