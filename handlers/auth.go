package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const authCookieName = "auth_token"

// Login sets a hardened demo session cookie. This is a stub, not a real
// auth system: there are no users, the token just proves the cookie path
// works end to end.
func (a *API) Login(c *gin.Context) {
	expiry := time.Now().Add(24 * time.Hour)
	claims := &jwt.RegisteredClaims{
		Subject:   "demo-user",
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiry),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.JWTSecret)
	if err != nil {
		log.Printf("❌ Failed to sign demo token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(authCookieName, token, int(time.Until(expiry).Seconds()), "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged in as demo user"})
}
