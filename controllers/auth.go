package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"gitea.com/go-chi/session"
	"go.uber.org/zap"

	"github.com/thyeshengleng/collection-form/authenticator"
	"github.com/thyeshengleng/collection-form/logger"
	"github.com/thyeshengleng/collection-form/middleware"
)

// AuthController handles the OpenID Connect login flow
type AuthController struct {
	provider authenticator.Provider
}

// NewAuthController creates a new auth controller
func NewAuthController(provider authenticator.Provider) *AuthController {
	return &AuthController{provider: provider}
}

// Enabled reports whether a login provider is configured
func (ac *AuthController) Enabled() bool {
	return ac.provider != nil
}

// Login initiates the authentication process
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if !ac.Enabled() {
		http.Redirect(w, r, "/records", http.StatusSeeOther)
		return
	}

	// Generate random state
	state, err := generateRandomState()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Save the state in the session to validate in callback
	sess := session.GetSession(r)
	sess.Set(sessionState, state)

	http.Redirect(w, r, ac.provider.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles the redirect back from the identity provider
func (ac *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	if !ac.Enabled() {
		http.Error(w, "Login is not configured", http.StatusNotFound)
		return
	}

	sess := session.GetSession(r)

	// Verify state
	storedState, _ := sess.Get(sessionState).(string)
	if storedState == "" {
		http.Error(w, "State not found in session", http.StatusBadRequest)
		return
	}
	if r.URL.Query().Get("state") != storedState {
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return
	}

	// Exchange the code for a token
	token, err := ac.provider.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		logger.Log.Warn("code exchange failed", zap.Error(err))
		http.Error(w, "Failed to exchange authorization code for a token: "+err.Error(), http.StatusUnauthorized)
		return
	}

	claims, err := ac.provider.GetClaims(r.Context(), token)
	if err != nil {
		logger.Log.Warn("id token rejected", zap.Error(err))
		http.Error(w, "Failed to verify ID Token: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sess.Set(middleware.SessionUserEmail, claims.Email())
	sess.Set(middleware.SessionUserName, claims.DisplayName())
	sess.Delete(sessionState)

	logger.Log.Info("user signed in", zap.String("email", claims.Email()))

	target := "/records"
	if redirect, ok := sess.Get(middleware.SessionRedirectAfterLogin).(string); ok && redirect != "" {
		target = redirect
		sess.Delete(middleware.SessionRedirectAfterLogin)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Logout clears the session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Delete(middleware.SessionUserEmail)
	sess.Delete(middleware.SessionUserName)
	sess.Delete(sessionViewState)

	target := "/records"
	if ac.Enabled() {
		target = "/login"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
