package controllers

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/thyeshengleng/collection-form/models"
)

const (
	sessionViewState = "view_state"
	sessionFlash     = "flash"
	sessionState     = "state"
)

// viewState returns the viewer state of the current user
func viewState(r *http.Request) models.ViewState {
	sess := session.GetSession(r)
	if sess == nil {
		return models.ViewState{}
	}
	state, _ := sess.Get(sessionViewState).(models.ViewState)
	return state
}

func saveViewState(r *http.Request, state models.ViewState) {
	if sess := session.GetSession(r); sess != nil {
		sess.Set(sessionViewState, state)
	}
}

// setFlash stores a message shown on the next page render
func setFlash(r *http.Request, kind, message string) {
	if sess := session.GetSession(r); sess != nil {
		sess.Set(sessionFlash, models.NewFlash(kind, message))
	}
}

// popFlash returns and clears the pending message
func popFlash(r *http.Request) *models.FlashMessage {
	sess := session.GetSession(r)
	if sess == nil {
		return nil
	}
	flash, _ := sess.Get(sessionFlash).(*models.FlashMessage)
	if flash != nil {
		sess.Delete(sessionFlash)
	}
	return flash
}
