package v1

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/spot_tracker/internal/config"
	"github.com/sirupsen/logrus"
)

// PasscodeGateMiddleware - middleware, которое пропускает удаление спотов
// только с правильным пасскодом. Защищает от случайного клика, не более.
func PasscodeGateMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		passcode := c.GetHeader("X-Passcode")
		if passcode == "" {
			// Проверяем также query-параметр
			passcode = c.Query("passcode")
		}

		if passcode == "" {
			log.Warn("Passcode missing from delete request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "passcode required"})
			return
		}

		if subtle.ConstantTimeCompare([]byte(passcode), []byte(cfg.DeletePasscode)) != 1 {
			log.WithField("path", c.FullPath()).Warn("Incorrect passcode provided")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "incorrect passcode"})
			return
		}

		c.Next()
	}
}
