package invitation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGifts(t *testing.T) {
	t.Run("array JSON langsung", func(t *testing.T) {
		gifts := ParseGifts([]byte(`[{"type":"bank","name":"BCA","account":"123","holder":"Budi"}]`))
		require.Len(t, gifts, 1)
		assert.Equal(t, "BCA", gifts[0].Name)
	})

	t.Run("string JSON pembungkus array (data lama)", func(t *testing.T) {
		gifts := ParseGifts([]byte(`"[{\"type\":\"ewallet\",\"name\":\"OVO\",\"account\":\"0812\",\"holder\":\"Sari\"}]"`))
		require.Len(t, gifts, 1)
		assert.Equal(t, "OVO", gifts[0].Name)
	})

	t.Run("gagal parse berarti kosong, bukan error", func(t *testing.T) {
		assert.Empty(t, ParseGifts([]byte(`{bukan json`)))
		assert.Empty(t, ParseGifts([]byte(`"juga {bukan json"`)))
		assert.Empty(t, ParseGifts([]byte(``)))
		assert.Empty(t, ParseGifts([]byte(`null`)))
	})
}

func TestValidGifts(t *testing.T) {
	gifts := []Gift{
		{Type: GiftTypeBank},
		{Type: GiftTypeBank, Name: "BCA"},
		{Type: GiftTypeEwallet, Holder: "Sari"},
		{Type: GiftTypeEwallet, Account: "0812"},
	}
	valid := ValidGifts(gifts)
	require.Len(t, valid, 3)
	// Urutan dipertahankan.
	assert.Equal(t, "BCA", valid[0].Name)
	assert.Equal(t, "Sari", valid[1].Holder)
	assert.Equal(t, "0812", valid[2].Account)
}

func TestRenderGifts(t *testing.T) {
	gifts := []Gift{
		{Type: GiftTypeBank, Name: "BCA", Account: "1234567890", Holder: "Budi"},
		{Type: GiftTypeEwallet, Name: "OVO", Account: "081234", Holder: "Sari"},
	}

	t.Run("dua blok dengan satu pemisah", func(t *testing.T) {
		out := RenderGifts(gifts)
		assert.Equal(t, 2, strings.Count(out, `class="gift-item"`))
		// Pemisah hanya di antara blok, tidak setelah blok terakhir.
		assert.Equal(t, 1, strings.Count(out, "border-bottom:1px solid #e5e7eb;"))
		assert.Contains(t, out, "Bank: BCA")
		assert.Contains(t, out, "E-Wallet: OVO")
		assert.Contains(t, out, "a.n. Budi")
		assert.Contains(t, out, `data-account="1234567890"`)
	})

	t.Run("idempoten terhadap input sama", func(t *testing.T) {
		assert.Equal(t, RenderGifts(gifts), RenderGifts(gifts))
	})

	t.Run("tanpa rekening tetap tampil tanpa tombol salin", func(t *testing.T) {
		out := RenderGifts([]Gift{{Type: GiftTypeBank, Name: "BCA", Holder: "Budi"}})
		assert.Contains(t, out, "Bank: BCA")
		assert.NotContains(t, out, "btn-copy-account")
		// Rekening kosong ditampilkan sebagai strip.
		assert.Contains(t, out, `gap:4px;">-</div>`)
	})
}

func TestRemoveGiftSection(t *testing.T) {
	t.Run("section dengan id dibuang", func(t *testing.T) {
		html := `<p>a</p><section id="wedding-gift-section"><h2>Kado</h2></section><p>b</p>`
		assert.Equal(t, `<p>a</p><p>b</p>`, RemoveGiftSection(html))
	})

	t.Run("agnostik nama tag dan case-insensitive", func(t *testing.T) {
		html := `<DIV class="x" ID='wedding-gift-section'>isi</DIV><p>b</p>`
		assert.Equal(t, `<p>b</p>`, RemoveGiftSection(html))
	})

	t.Run("non-greedy sampai penutup pertama", func(t *testing.T) {
		html := `<section id="wedding-gift-section">isi</section><section>lain</section>`
		assert.Equal(t, `<section>lain</section>`, RemoveGiftSection(html))
	})

	t.Run("tanpa penutup dibiarkan utuh", func(t *testing.T) {
		html := `<section id="wedding-gift-section">tak ditutup`
		assert.Equal(t, html, RemoveGiftSection(html))
	})

	t.Run("beberapa kemunculan semuanya dibuang", func(t *testing.T) {
		html := `<div id="wedding-gift-section">a</div><p>x</p><div id="wedding-gift-section">b</div>`
		assert.Equal(t, `<p>x</p>`, RemoveGiftSection(html))
	})
}
