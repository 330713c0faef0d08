package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Registrar is the slice of the registry the login flow needs.
type Registrar interface {
	RegisterPlayer(name string) int64
}

type LoginRequest struct {
	Name string `json:"name" binding:"required"`
}

type Handler struct {
	players Registrar
	secret  []byte
	ttl     time.Duration
}

func NewHandler(players Registrar, secret []byte) *Handler {
	return &Handler{players: players, secret: secret, ttl: 24 * time.Hour}
}

// Login registers the player and returns a token carrying the new id.
// POST /auth/login  body: {name}
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	playerID := h.players.RegisterPlayer(req.Name)

	claims := jwt.MapClaims{
		"sub":  playerID,
		"name": req.Name,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(h.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "jwt generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jwt":      signed,
		"playerId": playerID,
	})
}

// Middleware validates the bearer token and stores the player id on the
// context for handlers downstream.
func Middleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		if raw == "" {
			// websocket clients cannot set headers; accept ?token=
			raw = c.Query("token")
		}
		raw = strings.TrimPrefix(raw, "Bearer ")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}
		sub, ok := claims["sub"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid subject"})
			return
		}

		c.Set("playerID", int64(sub))
		c.Next()
	}
}
