package models

import "strings"

// RecordSet is the ordered collection of all records, in insertion order
type RecordSet []Record

// IndexOf returns the position of the record with the given ID, or -1
func (s RecordSet) IndexOf(id string) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the record with the given ID
func (s RecordSet) Find(id string) (*Record, bool) {
	idx := s.IndexOf(id)
	if idx < 0 {
		return nil, false
	}
	r := s[idx]
	return &r, true
}

// Clone returns a copy that shares no backing array with s
func (s RecordSet) Clone() RecordSet {
	if s == nil {
		return RecordSet{}
	}
	out := make(RecordSet, len(s))
	copy(out, s)
	return out
}

// Search keeps the records whose company name or email contains term,
// ignoring case. An empty term returns the set unchanged.
func (s RecordSet) Search(term string) RecordSet {
	if term == "" {
		return s
	}
	needle := strings.ToLower(term)
	result := make(RecordSet, 0, len(s))
	for _, r := range s {
		if strings.Contains(strings.ToLower(r.CompanyName), needle) ||
			strings.Contains(strings.ToLower(r.Email), needle) {
			result = append(result, r)
		}
	}
	return result
}

// CountByStatus returns how many records are in each status
func (s RecordSet) CountByStatus() map[string]int {
	counts := make(map[string]int, len(StatusOptions))
	for _, r := range s {
		counts[r.Status]++
	}
	return counts
}
