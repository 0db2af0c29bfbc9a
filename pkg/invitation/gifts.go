package invitation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// GiftTypeBank dan GiftTypeEwallet nilai field Type pada Gift.
const (
	GiftTypeBank    = "bank"
	GiftTypeEwallet = "ewallet"
)

// Gift satu rekening bank / e-wallet untuk amplop digital.
type Gift struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Account string `json:"account"`
	Holder  string `json:"holder"`
}

// Valid kado dianggap valid jika minimal satu dari nama, nomor rekening,
// atau nama pemilik terisi.
func (g Gift) Valid() bool {
	return g.Name != "" || g.Account != "" || g.Holder != ""
}

// ParseGifts menoleransi dua bentuk penyimpanan: array JSON langsung, atau
// string JSON yang membungkus array (warisan data lama). Gagal parse
// diperlakukan sebagai daftar kosong, tidak pernah jadi error.
func ParseGifts(raw []byte) []Gift {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
			return nil
		}
		trimmed = inner
	}
	var gifts []Gift
	if err := json.Unmarshal([]byte(trimmed), &gifts); err != nil {
		return nil
	}
	return gifts
}

// ValidGifts menyaring entri yang tidak valid; entri tak valid dibuang
// diam-diam, urutan sisanya dipertahankan.
func ValidGifts(gifts []Gift) []Gift {
	var out []Gift
	for _, g := range gifts {
		if g.Valid() {
			out = append(out, g)
		}
	}
	return out
}

const (
	giftIconEwallet = `<svg width="20" height="20" fill="none" stroke="#06b6d4" stroke-width="2" viewBox="0 0 24 24" style="vertical-align:middle;margin-right:8px;"><rect x="3" y="7" width="18" height="10" rx="2"/><path d="M16 11h2a1 1 0 0 1 0 2h-2z"/></svg>`
	giftIconBank    = `<svg width="20" height="20" fill="none" stroke="#4f46e5" stroke-width="2" viewBox="0 0 24 24" style="vertical-align:middle;margin-right:8px;"><rect x="2" y="7" width="20" height="10" rx="2"/><path d="M6 11h4a1 1 0 0 1 0 2H6z"/></svg>`

	copyButtonFormat = `<button type="button" class="btn-copy-account" data-account="%s" style="margin-left:8px;padding:2px 10px;font-size:0.95rem;border:none;background:#f1f5f9;color:#2563eb;border-radius:6px;cursor:pointer;display:inline-flex;align-items:center;gap:4px;transition:background .2s;"><svg width=16 height=16 fill=none stroke='#2563eb' stroke-width=2 viewBox='0 0 24 24'><rect x='9' y='9' width='13' height='13' rx='2'/><path d='M5 15V5a2 2 0 0 1 2-2h10'/></svg> <span>Salin</span></button>`
)

// RenderGifts merender daftar kado valid menjadi fragmen blok-blok kado.
// Setiap blok kecuali yang terakhir diberi garis pemisah bawah. Tombol salin
// hanya muncul bila nomor rekening terisi; kado tanpa rekening tetap tampil.
func RenderGifts(gifts []Gift) string {
	var b strings.Builder
	for i, g := range gifts {
		isEwallet := g.Type == GiftTypeEwallet

		icon := giftIconBank
		label := "Bank"
		if isEwallet {
			icon = giftIconEwallet
			label = "E-Wallet"
		}

		copyBtn := ""
		if g.Account != "" {
			copyBtn = fmt.Sprintf(copyButtonFormat, g.Account)
		}

		separator := ""
		if i < len(gifts)-1 {
			separator = "border-bottom:1px solid #e5e7eb;"
		}

		b.WriteString(`<div class="gift-item" style="display:flex;align-items:flex-start;padding:16px 0;` + separator + `">
            <div style="margin-right:12px;">` + icon + `</div>
            <div style="flex:1;min-width:0;">
              <div style="font-weight:600;font-size:1rem;color:#111827;">` + label + `: ` + orDash(g.Name) + `</div>
              <div style="color:#374151;font-size:0.95rem;">a.n. ` + orDash(g.Holder) + `</div>
              <div style="color:#2563eb;font-size:1.05rem;word-break:break-all;display:flex;align-items:center;gap:4px;">` + orDash(g.Account) + copyBtn + `</div>
            </div>
          </div>`)
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Tag pembuka elemen mana pun yang ber-id wedding-gift-section.
var giftSectionOpenRe = regexp.MustCompile(`(?i)<([a-zA-Z][a-zA-Z0-9]*)\b[^>]*\bid\s*=\s*["']wedding-gift-section["'][^>]*>`)

// RemoveGiftSection membuang elemen ber-id wedding-gift-section beserta
// isinya: agnostik terhadap nama tag, non-greedy (sampai tag penutup sepadan
// pertama), dan case-insensitive. Tanpa tag penutup, dokumen dibiarkan utuh.
func RemoveGiftSection(html string) string {
	for {
		loc := giftSectionOpenRe.FindStringSubmatchIndex(html)
		if loc == nil {
			return html
		}
		tag := html[loc[2]:loc[3]]
		closeRe := regexp.MustCompile(`(?i)</` + regexp.QuoteMeta(tag) + `\s*>`)
		rest := html[loc[1]:]
		closeLoc := closeRe.FindStringIndex(rest)
		if closeLoc == nil {
			return html
		}
		html = html[:loc[0]] + rest[closeLoc[1]:]
	}
}
