package utils

import (
	"os"
	"strconv"

	"github.com/danthegoodman1/janitor/gologger"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/segmentio/ksuid"
)

var logger = gologger.NewLogger()

const nanoidAlphabet = "abcdefghijklmonpqrstuvwxyzABCDEFGHIJKLMONPQRSTUVWXYZ0123456789"

func GetEnvOrDefault(env, defaultVal string) string {
	e := os.Getenv(env)
	if e == "" {
		return defaultVal
	} else {
		return e
	}
}

func GetEnvOrDefaultInt(env string, defaultVal int64) int64 {
	e := os.Getenv(env)
	if e == "" {
		return defaultVal
	} else {
		intVal, err := strconv.ParseInt(e, 10, 64)
		if err != nil {
			logger.Error().Err(err).Str("value", e).Msgf("Failed to parse string to int '%s'", env)
			os.Exit(1)
		}

		return (intVal)
	}
}

func GenRandomID(prefix string) string {
	return prefix + gonanoid.MustGenerate(nanoidAlphabet, int(NANOID_LENGTH))
}

func GenKSortedID(prefix string) string {
	return prefix + ksuid.New().String()
}

// FirstDuplicate returns the first string that appears twice in s.
func FirstDuplicate(s []string) (string, bool) {
	seen := make(map[string]struct{}, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			return v, true
		}
		seen[v] = struct{}{}
	}
	return "", false
}
