package invitation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	// Segmen path setelah /invitation/ pada link undangan yang tersimpan.
	reInvitationPath = regexp.MustCompile(`/invitation/([^/?#]+)`)
)

// Slugify menurunkan slug [a-z0-9-] dari teks bebas: lowercase, diakritik
// dibuang, setiap deret karakter non-alfanumerik jadi satu tanda hubung,
// tanda hubung di ujung dipangkas.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// Buang diakritik (é -> e, dst).
	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// CoupleSlug slug dasar dari nama panggilan kedua mempelai, digabung "&".
func CoupleSlug(groomNickname, brideNickname string) string {
	return Slugify(groomNickname + " & " + brideNickname)
}

// SlugFromLink mengekstrak slug dari link undangan tersimpan.
// Kosong jika link tidak memuat segmen /invitation/.
func SlugFromLink(link string) string {
	m := reInvitationPath.FindStringSubmatch(link)
	if m == nil {
		return ""
	}
	return m[1]
}

// ResolveSlug mencari slug unik terhadap himpunan slug pesanan lain:
// base, lalu base-2, base-3, dst. Pesanan yang sedang diproses tidak boleh
// ikut dalam existing.
func ResolveSlug(base string, existing map[string]bool) string {
	slug := base
	for counter := 2; existing[slug]; counter++ {
		slug = base + "-" + strconv.Itoa(counter)
	}
	return slug
}

// InvitationLink menyusun link absolut undangan dari origin dan slug.
func InvitationLink(origin, slug string) string {
	return strings.TrimRight(origin, "/") + "/invitation/" + slug
}
