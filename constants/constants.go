package constants

import (
	"os"
	"strconv"
	"strings"
)

const DefaultPort = 8080

// longest request body /search will read
const MaxQueryLength = 1024

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port <= 0 {
		return DefaultPort
	}
	return port
}

// GetAllowedOrigins reads CORS_ALLOWED_ORIGINS, a comma separated list.
func GetAllowedOrigins() []string {
	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}
	var res []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			res = append(res, origin)
		}
	}
	return res
}

func GetLogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}
