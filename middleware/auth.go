package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/thyeshengleng/collection-form/userctx"
)

// Session keys shared with the auth controller
const (
	SessionUserEmail          = "user_email"
	SessionUserName           = "user_name"
	SessionRedirectAfterLogin = "redirect_after_login"
)

// RequireAuth ensures the user is authenticated
// If not authenticated, redirects to /login and stores the intended destination
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		email, _ := sess.Get(SessionUserEmail).(string)

		if email == "" {
			// Only pages can be resumed after login
			if r.Method == http.MethodGet {
				sess.Set(SessionRedirectAfterLogin, r.URL.RequestURI())
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		name, _ := sess.Get(SessionUserName).(string)
		ctx := userctx.SetUserEmail(r.Context(), email)
		ctx = userctx.SetUserName(ctx, name)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
