package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks the loaded configuration. Development and test
// runs get by on defaults; production requires the values that have no
// safe default.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.ReportMarkup <= 1 {
		errors = append(errors, "REPORT_MARKUP must be greater than 1")
	}

	if IsProduction() {
		if cfg.DBPassword == "" {
			errors = append(errors, "db_password is required in production")
		}
		if cfg.DBSSLMode == "disable" {
			errors = append(errors, "db_ssl_mode must not be disable in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errors, "; "))
	}
	return nil
}
