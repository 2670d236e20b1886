package config

import (
	"os"
	"strings"
)

const defaultAPIURL = "http://localhost:8080"

// APIURL returns the base URL for the twitter-crud API, without a trailing slash.
// It can be overridden with the TWITTER_API_URL environment variable.
func APIURL() string {
	if v := os.Getenv("TWITTER_API_URL"); v != "" {
		return strings.TrimRight(v, "/")
	}
	return defaultAPIURL
}
