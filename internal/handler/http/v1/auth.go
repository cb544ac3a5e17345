package v1

import (
	"net/http"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Deibormi/Neighborhood-Security-Network/internal/config"
)

const callerContextKey = "callerAddress"

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if key == apiKey {
				isValid = true
				break
			}
		}

		if !isValid {
			log.Warnf("Invalid API key provided: %s", apiKey)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// CallerIdentityMiddleware извлекает адрес вызывающего из заголовка
// X-Caller-Address. Идентичности - hex-адреса, приводятся к каноничной
// форме, чтобы сравнения не зависели от регистра.
func CallerIdentityMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Caller-Address")
		if raw != "" {
			if !ethcommon.IsHexAddress(raw) {
				log.Warnf("Malformed caller address: %s", raw)
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "malformed caller address"})
				return
			}
			c.Set(callerContextKey, ethcommon.HexToAddress(raw).Hex())
		}
		c.Next()
	}
}

// callerAddress возвращает адрес вызывающего из контекста запроса
func callerAddress(c *gin.Context) (string, bool) {
	addr, ok := c.Get(callerContextKey)
	if !ok {
		return "", false
	}
	return addr.(string), true
}

// NormalizeAddress приводит hex-адрес к каноничной форме.
// Пустую или некорректную строку возвращает как есть.
func NormalizeAddress(raw string) string {
	if !ethcommon.IsHexAddress(raw) {
		return raw
	}
	return ethcommon.HexToAddress(raw).Hex()
}
