package envutil

import (
	"os"
	"strconv"
	"strings"

	"github.com/aulakit/aula-backend/internal/platform/logger"
)

func String(name, def string, log *logger.Logger) string {
	val, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(val) == "" {
		if log != nil {
			log.Debug("Environment variable not set, using default", "env_var", name, "default", def)
		}
		return def
	}
	return val
}

func Int(name string, def int, log *logger.Logger) int {
	val, ok := os.LookupEnv(name)
	if !ok {
		if log != nil {
			log.Debug("Environment variable not set, using default", "env_var", name, "default", def)
		}
		return def
	}
	i, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		if log != nil {
			log.Warn("Environment variable is not an integer, using default", "env_var", name, "value", val, "default", def)
		}
		return def
	}
	return i
}

func Bool(name string, def bool, log *logger.Logger) bool {
	val, ok := os.LookupEnv(name)
	if !ok {
		if log != nil {
			log.Debug("Environment variable not set, using default", "env_var", name, "default", def)
		}
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(val))
	if err != nil {
		if log != nil {
			log.Warn("Environment variable is not a boolean, using default", "env_var", name, "value", val, "default", def)
		}
		return def
	}
	return b
}
