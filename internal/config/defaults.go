package config

import "time"

const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 8000
	DefaultEnvironment = "development"
	DefaultAPIPrefix   = "/api/v1"
	DefaultLogLevel    = "info"

	DefaultEstimateBaseURL = "https://estimation-immo.ams-investissements.fr"
	DefaultEstimateTimeout = 30 * time.Second

	DefaultAgentTimeout = 300 // seconds

	DefaultCORSMaxAge = 300
)

var DefaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8080",
}
