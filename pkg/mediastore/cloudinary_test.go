package mediastore

import (
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicIDFromURL(t *testing.T) {
	assert.Equal(t, "music_folder/myfile",
		PublicIDFromURL("https://res.cloudinary.com/xxx/video/upload/v1234567890/music_folder/myfile.mp3"))
	assert.Equal(t, "thumb/abc",
		PublicIDFromURL("https://res.cloudinary.com/xxx/image/upload/thumb/abc.webp"))
	assert.Equal(t, "", PublicIDFromURL("https://contoh.com/bukan-cloudinary.mp3"))
	assert.Equal(t, "", PublicIDFromURL(""))
}

func TestCloudinaryDestroy(t *testing.T) {
	fixedNow := time.Unix(1700000000, 0)

	t.Run("request bertanda tangan benar", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "folder/lagu", r.PostForm.Get("public_id"))
			assert.Equal(t, "1700000000", r.PostForm.Get("timestamp"))
			assert.Equal(t, "key123", r.PostForm.Get("api_key"))

			sum := sha1.Sum([]byte("public_id=folder/lagu&timestamp=1700000000rahasia"))
			assert.Equal(t, hex.EncodeToString(sum[:]), r.PostForm.Get("signature"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result":"ok"}`))
		}))
		defer srv.Close()

		c := NewCloudinaryClient("demo", "key123", "rahasia")
		c.baseURL = srv.URL
		c.now = func() time.Time { return fixedNow }

		res, err := c.Destroy("folder/lagu", "video")
		require.NoError(t, err)
		assert.Equal(t, "ok", res.Result)
		assert.Equal(t, "/demo/video/destroy", gotPath)
	})

	t.Run("auto mencoba tipe berikutnya setelah not found", func(t *testing.T) {
		var paths []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			if r.URL.Path == "/demo/image/destroy" {
				_, _ = w.Write([]byte(`{"result":"ok"}`))
				return
			}
			_, _ = w.Write([]byte(`{"result":"not found"}`))
		}))
		defer srv.Close()

		c := NewCloudinaryClient("demo", "key123", "rahasia")
		c.baseURL = srv.URL
		c.now = func() time.Time { return fixedNow }

		res, err := c.Destroy("thumb/abc", "auto")
		require.NoError(t, err)
		assert.Equal(t, "ok", res.Result)
		assert.Equal(t, []string{"/demo/video/destroy", "/demo/image/destroy"}, paths)
	})

	t.Run("public_id kosong ditolak", func(t *testing.T) {
		c := NewCloudinaryClient("demo", "key123", "rahasia")
		_, err := c.Destroy("", "video")
		assert.Error(t, err)
	})
}
