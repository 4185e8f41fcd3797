package app

import (
	"fmt"

	"github.com/unidoc/unioffice/common/license"

	"github.com/aerissecure/worddeck/internal/config"
)

// ApplyLicense installs the unioffice license key when one is configured.
// Without a key, decks still save but carry the library's unlicensed notice.
func ApplyLicense(cfg config.LicenseConfig) (bool, error) {
	if cfg.Key == "" {
		return false, nil
	}
	if err := license.SetLicenseKey(cfg.Key, cfg.Customer); err != nil {
		return false, fmt.Errorf("unioffice license: %w", err)
	}
	return true, nil
}
