// Package invitation berisi mesin pembangkit dokumen undangan: substitusi
// placeholder, render blok kado pernikahan, injeksi audio dan skrip salin,
// perakitan dokumen HTML utuh, serta resolusi slug tautan undangan.
//
// Seluruh fungsi di paket ini murni dan sinkron terhadap inputnya
// (pesanan, template, snapshot musik). Konten template (HTML/CSS/JS) ditulis
// oleh desainer dan diperlakukan sebagai konten tepercaya: tidak ada
// sanitasi maupun escaping.
package invitation

import "strings"

// Template bagian template yang dibutuhkan mesin: badan HTML dengan token
// {{namaField}}, CSS, dan JS mentah.
type Template struct {
	HTML string
	CSS  string
	JS   string
}

// Music satu entri katalog musik yang bisa dirujuk pesanan.
type Music struct {
	ID    string
	Title string
	URL   string
}

// Input data pesanan yang sudah diratakan untuk satu kali generate.
// Fields tidak boleh memuat kunci terreservasi (weddingGifts, musicUrl);
// keduanya ditangani tahap khusus.
type Input struct {
	Fields        map[string]string
	Gifts         []Gift
	SelectedMusic string
}

// Generate menyusun satu dokumen HTML undangan yang berdiri sendiri dari
// template, data pesanan, dan snapshot katalog musik. Deterministik: input
// sama menghasilkan dokumen sama.
func Generate(tpl Template, in Input, musics []Music) string {
	html := ReplacePlaceholders(tpl.HTML, in.Fields)

	// Musik: rujukan yang sudah terhapus (dangling) jatuh ke tanpa audio.
	musicURL := ResolveMusicURL(in.SelectedMusic, musics)
	html = replaceToken(html, "musicUrl", musicURL)

	valid := ValidGifts(in.Gifts)
	if len(valid) > 0 {
		html = replaceToken(html, "weddingGifts", RenderGifts(valid))
	} else {
		html = RemoveGiftSection(html)
		html = replaceToken(html, "weddingGifts", "")
	}

	doc := Assemble(html, tpl.CSS, tpl.JS)
	if musicURL != "" {
		doc = spliceBeforeBodyClose(doc, AudioFragment(musicURL))
	}
	return doc
}

// ResolveMusicURL mencari URL musik berdasarkan id pilihan pesanan.
// ID kosong atau tidak ditemukan menghasilkan string kosong (tanpa audio).
func ResolveMusicURL(selectedID string, musics []Music) string {
	if selectedID == "" {
		return ""
	}
	for _, m := range musics {
		if m.ID == selectedID && m.URL != "" {
			return m.URL
		}
	}
	return ""
}

// spliceBeforeBodyClose menyisipkan fragment tepat sebelum </body> pertama.
// Urutan eksekusi skrip tetap: JS template -> skrip salin -> skrip audio.
func spliceBeforeBodyClose(doc, fragment string) string {
	return strings.Replace(doc, "</body>", fragment+"\n</body>", 1)
}
