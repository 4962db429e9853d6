package main

import (
	"fmt"
	"os"
	"strings"

	"degenlauncher/internal/config"
	"degenlauncher/internal/logging"
)

const logLevelEnvKey = "DEGEN_LOG_LEVEL"

func configureLoggerForCLI(flagLevel, configLevel string) (string, error) {
	envLevel := os.Getenv(logLevelEnvKey)
	rawLevel, source := selectedLogLevel(flagLevel, envLevel, configLevel)
	if _, err := logging.Setup(os.Stderr, rawLevel, "text"); err != nil {
		if source == "flag" {
			return "", fmt.Errorf("invalid --log-level %q", flagLevel)
		}
		_, _ = logging.Setup(os.Stderr, config.DefaultCLILogLevel, "text")
		switch source {
		case "env":
			return fmt.Sprintf("warning: invalid %s=%q; defaulting to %s", logLevelEnvKey, envLevel, config.DefaultCLILogLevel), nil
		case "config":
			return fmt.Sprintf("warning: invalid log level %q in config; defaulting to %s", configLevel, config.DefaultCLILogLevel), nil
		default:
			return "", nil
		}
	}
	return "", nil
}

// selectedLogLevel returns the raw level and where it came from.
// Precedence: flag, then env, then config, then DefaultCLILogLevel.
func selectedLogLevel(flagLevel, envLevel, configLevel string) (string, string) {
	if strings.TrimSpace(flagLevel) != "" {
		return flagLevel, "flag"
	}
	if strings.TrimSpace(envLevel) != "" {
		return envLevel, "env"
	}
	if strings.TrimSpace(configLevel) != "" {
		return configLevel, "config"
	}
	return config.DefaultCLILogLevel, "default"
}
