package userctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Anonymous, GetUserEmail(ctx))
	assert.Equal(t, "", GetUserName(ctx))

	ctx = SetUserEmail(ctx, "ops@example.com")
	ctx = SetUserName(ctx, "Ops")
	assert.Equal(t, "ops@example.com", GetUserEmail(ctx))
	assert.Equal(t, "Ops", GetUserName(ctx))
}
