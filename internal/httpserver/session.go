package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "cart_session"
	tokenCtxKey   = "visitorToken"
)

// sessionIssuer mints visitor tokens. Satisfied by session.NewToken wrapped
// in tokenFunc.
type sessionIssuer interface {
	NewToken() string
}

type TokenFunc func() string

func (f TokenFunc) NewToken() string { return f() }

// sessionMiddleware reads the visitor token cookie, issuing a fresh token
// (and Set-Cookie) when none is present. Handlers read the token from the
// gin context.
func sessionMiddleware(issuer sessionIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			token = issuer.NewToken()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     sessionCookie,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Set(tokenCtxKey, token)
		c.Next()
	}
}

func visitorToken(c *gin.Context) string {
	return c.GetString(tokenCtxKey)
}
