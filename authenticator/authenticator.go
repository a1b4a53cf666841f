package authenticator

import (
	"context"
	"fmt"
)

// Config holds OpenID Connect provider configuration
type Config struct {
	IssuerURL    string
	ClientID     string
	ClientSecret string
	CallbackURL  string
	Scopes       []string
}

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}

func (c Claims) str(key string) string {
	v, _ := c[key].(string)
	return v
}

// Subject returns the stable user identifier
func (c Claims) Subject() string {
	return c.str("sub")
}

// Email returns the email claim, falling back to the subject
func (c Claims) Email() string {
	if email := c.str("email"); email != "" {
		return email
	}
	return c.Subject()
}

// DisplayName picks nickname, then name, then email
func (c Claims) DisplayName() string {
	for _, key := range []string{"nickname", "name"} {
		if v := c.str(key); v != "" {
			return v
		}
	}
	return c.Email()
}

// Validate checks that the claims identify a user
func (c Claims) Validate() error {
	if c.Subject() == "" {
		return fmt.Errorf("id token has no subject")
	}
	return nil
}
