package models

import (
	"errors"
	"fmt"
)

// ViewMode is the mode of the record table/detail view
type ViewMode int

const (
	Browsing ViewMode = iota
	Viewing
	Editing
	ConfirmingDelete
)

func (m ViewMode) String() string {
	switch m {
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	case ConfirmingDelete:
		return "confirming_delete"
	}
	return "browsing"
}

// verb names the user action that opens the mode
func (m ViewMode) verb() string {
	switch m {
	case Viewing:
		return "view"
	case Editing:
		return "edit"
	case ConfirmingDelete:
		return "delete"
	}
	return "browse"
}

var (
	// ErrNoSelection is returned when an action needs a selected record
	ErrNoSelection = errors.New("please select a record first")
	// ErrMultipleSelection is returned when more than one record is selected.
	// The returned error names the action, e.g. "please select only one record to view".
	ErrMultipleSelection = errors.New("please select only one record")
	// ErrNotConfirming is returned when confirm is pressed without a pending delete
	ErrNotConfirming = errors.New("no delete is waiting for confirmation")
)

// ViewState is the per-user state of the record viewer. Only one mode can be
// active at a time; RecordID is the record the mode applies to.
type ViewState struct {
	Mode     ViewMode
	RecordID string
	Search   string
}

// IsBrowsing reports whether no record is being viewed, edited or deleted
func (s ViewState) IsBrowsing() bool { return s.Mode == Browsing }

// IsViewing reports whether a record detail is shown
func (s ViewState) IsViewing() bool { return s.Mode == Viewing }

// IsEditing reports whether the edit form is shown
func (s ViewState) IsEditing() bool { return s.Mode == Editing }

// IsConfirmingDelete reports whether a delete waits for confirmation
func (s ViewState) IsConfirmingDelete() bool { return s.Mode == ConfirmingDelete }

// WithSearch returns the state with a new search term
func (s ViewState) WithSearch(term string) ViewState {
	s.Search = term
	return s
}

// View opens the detail view of the single selected record
func (s ViewState) View(selected []string) (ViewState, error) {
	return s.open(Viewing, selected)
}

// Edit opens the edit form of the single selected record
func (s ViewState) Edit(selected []string) (ViewState, error) {
	return s.open(Editing, selected)
}

// RequestDelete is the first step of the two-step delete gesture
func (s ViewState) RequestDelete(selected []string) (ViewState, error) {
	return s.open(ConfirmingDelete, selected)
}

// ConfirmDelete is the second step of the delete gesture. It returns the ID
// to delete and the state to continue with.
func (s ViewState) ConfirmDelete() (string, ViewState, error) {
	if s.Mode != ConfirmingDelete || s.RecordID == "" {
		return "", s, ErrNotConfirming
	}
	return s.RecordID, s.Close(), nil
}

// Close returns to browsing, keeping the search term
func (s ViewState) Close() ViewState {
	return ViewState{Mode: Browsing, Search: s.Search}
}

func (s ViewState) open(mode ViewMode, selected []string) (ViewState, error) {
	switch len(selected) {
	case 0:
		return s, ErrNoSelection
	case 1:
		return ViewState{Mode: mode, RecordID: selected[0], Search: s.Search}, nil
	}
	return s, fmt.Errorf("%w to %s", ErrMultipleSelection, mode.verb())
}
