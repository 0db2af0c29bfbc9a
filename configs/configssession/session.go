package configssession

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

var store *session.Store

// SetupSession membuat session store berbasis cookie (memory storage bawaan Fiber).
func SetupSession() *session.Store {
	if store != nil {
		return store
	}
	store = session.New(session.Config{
		Expiration:     12 * time.Hour,
		KeyLookup:      "cookie:undangan_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	return store
}

// GetStore mengembalikan session store yang aktif.
func GetStore() *session.Store {
	return SetupSession()
}
