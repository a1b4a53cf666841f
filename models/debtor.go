package models

// Debtor is one row of the accounting system's Debtor table
type Debtor struct {
	AccNo            string `json:"AccNo"`
	CompanyName      string `json:"CompanyName"`
	RegisterNo       string `json:"RegisterNo"`
	Address1         string `json:"Address1"`
	Address2         string `json:"Address2"`
	Address3         string `json:"Address3"`
	Address4         string `json:"Address4"`
	PostCode         string `json:"PostCode"`
	Phone1           string `json:"Phone1"`
	Phone2           string `json:"Phone2"`
	EmailAddress     string `json:"EmailAddress"`
	WebURL           string `json:"WebURL"`
	NatureOfBusiness string `json:"NatureOfBusiness"`
	IsActive         string `json:"IsActive"`
}
