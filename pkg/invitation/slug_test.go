package invitation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "yusuf-aisyah", Slugify("Yusuf & Aisyah"))
	assert.Equal(t, "rene-zoe", Slugify("  René & Zoé!  "))
	assert.Equal(t, "a-b-c", Slugify("a---b___c"))
	assert.Equal(t, "", Slugify("&&&"))
}

func TestCoupleSlug(t *testing.T) {
	assert.Equal(t, "budi-sari", CoupleSlug("Budi", "Sari"))
}

func TestSlugFromLink(t *testing.T) {
	assert.Equal(t, "yusuf-aisyah", SlugFromLink("https://undangan.link/invitation/yusuf-aisyah"))
	assert.Equal(t, "yusuf-aisyah-2", SlugFromLink("https://undangan.link/invitation/yusuf-aisyah-2?ref=wa"))
	assert.Equal(t, "", SlugFromLink("https://undangan.link/lain/abc"))
	assert.Equal(t, "", SlugFromLink(""))
}

func TestResolveSlug(t *testing.T) {
	t.Run("tanpa tabrakan memakai slug dasar", func(t *testing.T) {
		assert.Equal(t, "budi-sari", ResolveSlug("budi-sari", map[string]bool{}))
	})

	t.Run("tabrakan berantai lanjut ke angka berikutnya", func(t *testing.T) {
		existing := map[string]bool{
			"yusuf-aisyah":   true,
			"yusuf-aisyah-2": true,
		}
		assert.Equal(t, "yusuf-aisyah-3", ResolveSlug("yusuf-aisyah", existing))
	})
}

func TestInvitationLink(t *testing.T) {
	assert.Equal(t, "https://undangan.link/invitation/budi-sari",
		InvitationLink("https://undangan.link", "budi-sari"))
	assert.Equal(t, "https://undangan.link/invitation/budi-sari",
		InvitationLink("https://undangan.link/", "budi-sari"))
}
