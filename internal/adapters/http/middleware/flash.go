package middleware

import (
	"net/http"

	"github.com/gorilla/securecookie"
)

// Flash levels, styled by the templates.
const (
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

// Flash is a one-time user-facing notification, consumed on next render.
type Flash struct {
	Level   string
	Message string
}

const flashCookieName = "portal_flash"

// flashCodec signs the flash cookie so clients cannot forge messages.
// Set once at startup via InitFlashCodec.
var flashCodec *securecookie.SecureCookie

// InitFlashCodec configures flash cookie signing with the given key.
// PRE: key is 32 bytes
func InitFlashCodec(key []byte) {
	flashCodec = securecookie.New(key, nil)
}

// PushFlash queues a flash message for the next rendered page. Messages
// ride in a signed cookie so they survive the redirect that follows and
// work for anonymous visitors with no server-side session.
func PushFlash(w http.ResponseWriter, r *http.Request, level, message string) {
	if flashCodec == nil {
		return
	}
	flashes := peekFlashes(r)
	flashes = append(flashes, Flash{Level: level, Message: message})
	encoded, err := flashCodec.Encode(flashCookieName, flashes)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})
}

// PopFlashes returns any queued flash messages and clears the cookie.
// POST: the flash cookie is expired on the response
func PopFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	flashes := peekFlashes(r)
	if len(flashes) == 0 {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
	return flashes
}

// peekFlashes decodes the flash cookie without clearing it. A cookie that
// fails signature verification is treated as absent.
func peekFlashes(r *http.Request) []Flash {
	if flashCodec == nil {
		return nil
	}
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	var flashes []Flash
	if err := flashCodec.Decode(flashCookieName, cookie.Value, &flashes); err != nil {
		return nil
	}
	return flashes
}
