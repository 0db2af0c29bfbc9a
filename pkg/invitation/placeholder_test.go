package invitation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplacePlaceholders(t *testing.T) {
	fields := map[string]string{
		"groomName": "Yusuf",
		"brideName": "Aisyah",
		"akadVenue": "",
	}

	t.Run("mengganti semua kemunculan", func(t *testing.T) {
		out := ReplacePlaceholders("<p>{{groomName}} dan {{groomName}}</p>", fields)
		assert.Equal(t, "<p>Yusuf dan Yusuf</p>", out)
	})

	t.Run("toleran spasi dalam kurung", func(t *testing.T) {
		out := ReplacePlaceholders("{{ groomName }} & {{  brideName}}", fields)
		assert.Equal(t, "Yusuf & Aisyah", out)
	})

	t.Run("kunci tak dikenal dibiarkan verbatim", func(t *testing.T) {
		out := ReplacePlaceholders("<p>{{unknownField}}</p>", fields)
		assert.Equal(t, "<p>{{unknownField}}</p>", out)
	})

	t.Run("nilai kosong menghasilkan string kosong", func(t *testing.T) {
		out := ReplacePlaceholders("Tempat: {{akadVenue}}.", fields)
		assert.Equal(t, "Tempat: .", out)
	})

	t.Run("kunci terreservasi dilewati", func(t *testing.T) {
		withReserved := map[string]string{
			"weddingGifts": "JANGAN",
			"musicUrl":     "JANGAN",
			"groomName":    "Yusuf",
		}
		out := ReplacePlaceholders("{{weddingGifts}} {{musicUrl}} {{groomName}}", withReserved)
		assert.Equal(t, "{{weddingGifts}} {{musicUrl}} Yusuf", out)
	})

	t.Run("kunci dengan karakter regex tidak meledak", func(t *testing.T) {
		out := ReplacePlaceholders("{{a.b}}", map[string]string{"a.b": "x"})
		assert.Equal(t, "x", out)
	})

	t.Run("nilai yang memuat token lain tidak disubstitusi berantai", func(t *testing.T) {
		cascading := map[string]string{
			"groomName": "{{brideName}}",
			"brideName": "Aisyah",
		}
		// Satu lintasan: token yang masuk lewat nilai dibiarkan, dan
		// hasilnya sama di setiap pemanggilan.
		for i := 0; i < 25; i++ {
			out := ReplacePlaceholders("{{groomName}}", cascading)
			assert.Equal(t, "{{brideName}}", out)
		}
	})
}
