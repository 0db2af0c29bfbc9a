package mediastore

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSidecarDeleteAsset(t *testing.T) {
	t.Run("request terkirim dengan payload benar", func(t *testing.T) {
		var got DeleteRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/delete-music", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"success":true,"result":"ok"}`))
		}))
		defer srv.Close()

		c := NewSidecarClient(srv.URL)
		require.NoError(t, c.DeleteAsset("folder/lagu", "video"))
		assert.Equal(t, "folder/lagu", got.PublicID)
		assert.Equal(t, "video", got.ResourceType)
	})

	t.Run("status selain 200 jadi error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"penghapusan aset gagal"}`))
		}))
		defer srv.Close()

		c := NewSidecarClient(srv.URL)
		err := c.DeleteAsset("folder/lagu", "auto")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("public_id kosong ditolak tanpa request", func(t *testing.T) {
		c := NewSidecarClient("http://127.0.0.1:1")
		assert.Error(t, c.DeleteAsset("", "auto"))
	})
}
