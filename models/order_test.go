package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderFields(t *testing.T) {
	order := Order{
		GroomName:     "Muhammad Yusuf",
		GroomNickname: "Yusuf",
		BrideName:     "Aisyah Putri",
		BrideNickname: "Aisyah",
		AkadDate:      "2026-12-12",
		AkadTimezone:  "WIB",
		ExtraFields: map[string]interface{}{
			"quoteText":    "Dan di antara tanda-tanda kebesaran-Nya...",
			"guestCount":   float64(150),
			"showGallery":  true,
			"emptyField":   nil,
			"weddingGifts": "tidak boleh bocor",
			"musicUrl":     "tidak boleh bocor",
			"nested":       map[string]interface{}{"a": 1},
		},
	}

	fields := order.PlaceholderFields()

	assert.Equal(t, "Muhammad Yusuf", fields["groomName"])
	assert.Equal(t, "Aisyah", fields["brideNickname"])
	assert.Equal(t, "2026-12-12", fields["akadDate"])

	t.Run("extra field skalar ikut", func(t *testing.T) {
		assert.Equal(t, "Dan di antara tanda-tanda kebesaran-Nya...", fields["quoteText"])
		assert.Equal(t, "150", fields["guestCount"])
		assert.Equal(t, "true", fields["showGallery"])
		assert.Equal(t, "", fields["emptyField"])
	})

	t.Run("kunci terreservasi tidak pernah masuk", func(t *testing.T) {
		assert.NotContains(t, fields, "weddingGifts")
		assert.NotContains(t, fields, "musicUrl")
	})

	t.Run("nilai non-skalar dilewati", func(t *testing.T) {
		assert.NotContains(t, fields, "nested")
	})
}

func TestTemplateFinalPrice(t *testing.T) {
	assert.Equal(t, int64(100000), (&Template{Price: 100000}).FinalPrice())
	assert.Equal(t, int64(75000), (&Template{Price: 100000, Discount: 25}).FinalPrice())
	assert.Equal(t, int64(100000), (&Template{Price: 100000, Discount: 100}).FinalPrice())
	assert.Equal(t, int64(100000), (&Template{Price: 100000, Discount: -5}).FinalPrice())
}
