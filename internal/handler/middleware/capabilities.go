package middleware

import (
	"octo-mock/internal/pkg/capability"

	"github.com/gin-gonic/gin"
)

const capabilitiesKey = "capabilities"

// Capabilities parses the Octo-Capabilities header into the caller's
// capability set. The set only gates response serialization; the core
// computation never sees it.
func Capabilities() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(capabilitiesKey, capability.Parse(c.GetHeader("Octo-Capabilities")))
		c.Next()
	}
}

func GetCapabilities(c *gin.Context) capability.Set {
	if v, exists := c.Get(capabilitiesKey); exists {
		if set, ok := v.(capability.Set); ok {
			return set
		}
	}
	return capability.Set{}
}
