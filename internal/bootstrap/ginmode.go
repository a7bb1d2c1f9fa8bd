package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode silences gin's debug output outside local development.
func SetGinMode(environment string) {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}
}
