package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// BasePath is the prefix of every API route.
	BasePath string `mapstructure:"base_path" default:"/api"`
}

// IsProtected reports whether requests must carry the API key.
func (c Config) IsProtected() bool {
	return c.ApiKey != ""
}

// Prefix returns BasePath normalized to a leading slash and no trailing one.
// An empty or root path yields "".
func (c Config) Prefix() string {
	p := strings.Trim(strings.TrimSpace(c.BasePath), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
