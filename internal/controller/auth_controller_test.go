package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentUserId(t *testing.T) {
	app := fiber.New()
	want := uuid.New()

	app.Get("/valid", func(ctx *fiber.Ctx) error {
		ctx.Locals("user_id", want.String())
		got, err := currentUserId(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		return ctx.SendStatus(fiber.StatusOK)
	})
	app.Get("/missing", func(ctx *fiber.Ctx) error {
		_, err := currentUserId(ctx)
		return err
	})
	app.Get("/garbled", func(ctx *fiber.Ctx) error {
		ctx.Locals("user_id", "not-a-uuid")
		_, err := currentUserId(ctx)
		return err
	})

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "valid claim", path: "/valid", wantStatus: fiber.StatusOK},
		{name: "missing claim is unauthorized", path: "/missing", wantStatus: fiber.StatusUnauthorized},
		{name: "garbled claim is unauthorized", path: "/garbled", wantStatus: fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
