package estimate

import (
	"encoding/base64"
	"os"

	"github.com/rs/zerolog/log"
)

// Credentials is an optional Basic auth pair for the upstream API.
type Credentials struct {
	Username string
	Password string
}

// CredentialsProvider yields credentials at call time, so a changed
// environment is reflected on the next call without restarting the server.
type CredentialsProvider func() Credentials

// CredentialsFromEnv reads API_USERNAME and API_PASSWORD. A partially set
// pair disables auth rather than failing the call; that mirrors the upstream
// contract but can mask a misconfiguration, so it is logged at debug level.
func CredentialsFromEnv() Credentials {
	c := Credentials{
		Username: os.Getenv("API_USERNAME"),
		Password: os.Getenv("API_PASSWORD"),
	}
	if (c.Username == "") != (c.Password == "") {
		log.Debug().Msg("only one of API_USERNAME/API_PASSWORD is set, proceeding unauthenticated")
	}
	return c
}

// Headers returns the Basic Authorization header for the pair, or an empty
// map when either value is missing. It never sets Content-Type; the client
// merges that independently so the two keys cannot collide.
func (c Credentials) Headers() map[string]string {
	if c.Username == "" || c.Password == "" {
		return map[string]string{}
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(c.Username + ":" + c.Password))
	return map[string]string{
		"Authorization": "Basic " + encoded,
	}
}
