package invitation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMusicURL(t *testing.T) {
	musics := []Music{
		{ID: "m1", Title: "Opick - Rapuh", URL: "https://cdn.example/m1.mp3"},
		{ID: "m2", Title: "Ar-Rahman", URL: "https://cdn.example/m2.mp3"},
	}

	assert.Equal(t, "https://cdn.example/m2.mp3", ResolveMusicURL("m2", musics))
	assert.Equal(t, "", ResolveMusicURL("", musics))
	// Rujukan dangling: musik sudah dihapus setelah dipilih.
	assert.Equal(t, "", ResolveMusicURL("m-terhapus", musics))
}

func TestGenerate(t *testing.T) {
	tpl := Template{
		HTML: `<h1>{{groomNickname}} & {{brideNickname}}</h1>{{weddingGifts}}`,
		CSS:  `h1{color:#333}`,
		JS:   `console.log('undangan');`,
	}

	t.Run("skenario ujung ke ujung dengan kado bank", func(t *testing.T) {
		in := Input{
			Fields: map[string]string{"groomNickname": "Budi", "brideNickname": "Sari"},
			Gifts:  []Gift{{Type: GiftTypeBank, Name: "BCA", Account: "123", Holder: "Budi"}},
		}
		doc := Generate(tpl, in, nil)

		assert.Contains(t, doc, "<h1>Budi & Sari</h1>")
		assert.Contains(t, doc, "Bank: BCA")
		assert.Contains(t, doc, "a.n. Budi")
		assert.Contains(t, doc, `data-account="123"`)
		assert.Contains(t, doc, "btn-copy-account")
		// selectedMusic kosong: tidak ada fragmen audio.
		assert.NotContains(t, doc, "wedding-music")
		assert.NotContains(t, doc, "music-toggle-btn")
		// Dokumen utuh: doctype, CSS dan JS template verbatim, skrip salin.
		assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
		assert.Contains(t, doc, "<style>h1{color:#333}</style>")
		assert.Contains(t, doc, "console.log('undangan');")
		assert.Contains(t, doc, "navigator.clipboard.writeText")
		assert.Contains(t, doc, FontStylesheetURL)
	})

	t.Run("tanpa kado valid: section dan token hilang", func(t *testing.T) {
		giftTpl := Template{HTML: `<section id="wedding-gift-section">{{weddingGifts}}</section><p>inti</p>`}
		doc := Generate(giftTpl, Input{Gifts: []Gift{{Type: GiftTypeBank}}}, nil)
		assert.NotContains(t, doc, "wedding-gift-section")
		assert.NotContains(t, doc, "{{weddingGifts}}")
		assert.Contains(t, doc, "<p>inti</p>")
	})

	t.Run("musik terpilih menyisipkan audio sebelum penutup body", func(t *testing.T) {
		musics := []Music{{ID: "m1", URL: "https://cdn.example/song.mp3"}}
		doc := Generate(tpl, Input{
			Fields:        map[string]string{"groomNickname": "Budi", "brideNickname": "Sari"},
			SelectedMusic: "m1",
		}, musics)

		require.Contains(t, doc, `<audio id="wedding-music" src="https://cdn.example/song.mp3"`)
		assert.Contains(t, doc, "music-toggle-btn")
		assert.Contains(t, doc, "visibilitychange")
		// Fragmen audio disisipkan sebelum </body>, setelah skrip salin.
		audioIdx := strings.Index(doc, "wedding-music")
		copyIdx := strings.Index(doc, "btn-copy-account")
		bodyCloseIdx := strings.LastIndex(doc, "</body>")
		assert.Greater(t, audioIdx, copyIdx)
		assert.Less(t, audioIdx, bodyCloseIdx)
	})

	t.Run("token musicUrl legacy ikut terganti", func(t *testing.T) {
		legacyTpl := Template{HTML: `<audio src="{{musicUrl}}"></audio>`}
		musics := []Music{{ID: "m1", URL: "https://cdn.example/song.mp3"}}
		doc := Generate(legacyTpl, Input{SelectedMusic: "m1"}, musics)
		assert.Contains(t, doc, `<audio src="https://cdn.example/song.mp3"></audio>`)
	})

	t.Run("rujukan musik dangling tetap sukses tanpa audio", func(t *testing.T) {
		doc := Generate(tpl, Input{
			Fields:        map[string]string{"groomNickname": "Budi", "brideNickname": "Sari"},
			SelectedMusic: "sudah-dihapus",
		}, []Music{{ID: "m1", URL: "https://cdn.example/song.mp3"}})
		assert.NotContains(t, doc, "<audio")
		assert.Contains(t, doc, "<h1>Budi & Sari</h1>")
	})

	t.Run("deterministik untuk input sama", func(t *testing.T) {
		in := Input{
			Fields: map[string]string{"groomNickname": "Budi", "brideNickname": "Sari"},
			Gifts: []Gift{
				{Type: GiftTypeBank, Name: "BCA", Account: "123", Holder: "Budi"},
				{Type: GiftTypeEwallet, Name: "OVO", Account: "0812", Holder: "Sari"},
			},
		}
		assert.Equal(t, Generate(tpl, in, nil), Generate(tpl, in, nil))
	})
}
