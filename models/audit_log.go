package models

import "time"

// AuditLogEntry records one mutating request against the record store
type AuditLogEntry struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	UserEmail  string    `json:"user_email"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	FormData   string    `json:"form_data"`
	UserAgent  string    `json:"user_agent"`
	IPAddress  string    `json:"ip_address"`
	StatusCode int       `json:"status_code"`
}
