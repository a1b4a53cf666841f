package authenticator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaims(t *testing.T) {
	claims := Claims{"sub": "auth|1", "email": "ops@example.com", "name": "Ops Team"}
	assert.Equal(t, "auth|1", claims.Subject())
	assert.Equal(t, "ops@example.com", claims.Email())
	assert.Equal(t, "Ops Team", claims.DisplayName())
	assert.NoError(t, claims.Validate())

	bare := Claims{"sub": "auth|2"}
	assert.Equal(t, "auth|2", bare.Email())
	assert.Equal(t, "auth|2", bare.DisplayName())

	assert.Error(t, Claims{}.Validate())
}

func TestNewOpenIDProviderRequiresConfig(t *testing.T) {
	ctx := context.Background()
	full := Config{
		IssuerURL:    "https://id.example.com",
		ClientID:     "client",
		ClientSecret: "secret",
		CallbackURL:  "http://localhost:8501/callback",
	}

	for name, mutate := range map[string]func(*Config){
		"issuer":   func(c *Config) { c.IssuerURL = "" },
		"client":   func(c *Config) { c.ClientID = "" },
		"secret":   func(c *Config) { c.ClientSecret = "" },
		"callback": func(c *Config) { c.CallbackURL = "" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := full
			mutate(&cfg)
			_, err := NewOpenIDProvider(ctx, cfg)
			assert.Error(t, err)
		})
	}
}
