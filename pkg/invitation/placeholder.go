package invitation

import (
	"regexp"
	"strings"
)

// Kunci yang tidak boleh lewat substitusi generik; masing-masing punya
// tahap render sendiri.
var reservedKeys = map[string]bool{
	"weddingGifts": true,
	"musicUrl":     true,
}

var reToken = regexp.MustCompile(`\{\{([^{}]*)\}\}`)

// ReplacePlaceholders mengganti setiap token {{key}} dengan nilai dari fields
// dalam satu lintasan. Nilai hasil substitusi tidak ikut dipindai ulang,
// jadi hasilnya sama persis apa pun isi nilainya. Toleran spasi di dalam
// kurung kurawal dan global (semua kemunculan). Token untuk kunci yang tidak
// ada di fields dibiarkan apa adanya; itu perilaku yang diterima, bukan error.
func ReplacePlaceholders(html string, fields map[string]string) string {
	return reToken.ReplaceAllStringFunc(html, func(token string) string {
		key := strings.TrimSpace(token[2 : len(token)-2])
		if reservedKeys[key] {
			return token
		}
		value, ok := fields[key]
		if !ok {
			return token
		}
		return value
	})
}

func replaceToken(html, key, value string) string {
	re := regexp.MustCompile(`\{\{\s*` + regexp.QuoteMeta(key) + `\s*\}\}`)
	return re.ReplaceAllLiteralString(html, value)
}
