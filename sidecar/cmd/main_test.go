package main

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"undangan.link/pkg/mediastore"
)

func postDeleteMusic(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/delete-music", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestDeleteMusicErrorBody(t *testing.T) {
	app := newApp(mediastore.NewCloudinaryClient("demo", "key", "secret"))

	t.Run("payload tidak valid memakai kunci error", func(t *testing.T) {
		status, body := postDeleteMusic(t, app, `{pecah`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "payload tidak valid", body["error"])
		assert.NotContains(t, body, "success")
	})

	t.Run("public_id kosong memakai kunci error", func(t *testing.T) {
		status, body := postDeleteMusic(t, app, `{"public_id":"   "}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "public_id wajib diisi", body["error"])
		assert.NotContains(t, body, "success")
	})
}
