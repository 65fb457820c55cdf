package shared

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Registry validation errors.
var (
	ErrNoBanks        = errors.New("at least one bank is required")
	ErrBankMissingID  = errors.New("app_id is required")
	ErrBankDuplicate  = errors.New("duplicate app_id")
	ErrInvalidMaxRevs = errors.New("max_reviews must be positive")
)

// Bank maps a bank name to its Play Store app id.
type Bank struct {
	Name       string `yaml:"name"`
	AppID      string `yaml:"app_id"`
	MaxReviews int    `yaml:"max_reviews"` // 0 means use the global default
}

// BankRegistry is the immutable bank list, read once at process start.
type BankRegistry struct {
	Banks []Bank `yaml:"banks"`
}

// LoadBanks reads and validates the YAML bank registry.
func LoadBanks(path string) (BankRegistry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return BankRegistry{}, fmt.Errorf("read banks file: %w", err)
	}
	var reg BankRegistry
	if err := yaml.Unmarshal(b, &reg); err != nil {
		return BankRegistry{}, fmt.Errorf("parse banks file: %w", err)
	}
	if err := reg.validate(); err != nil {
		return BankRegistry{}, err
	}
	return reg, nil
}

func (r BankRegistry) validate() error {
	if len(r.Banks) == 0 {
		return ErrNoBanks
	}
	seen := make(map[string]bool, len(r.Banks))
	for i, b := range r.Banks {
		if b.AppID == "" {
			return fmt.Errorf("bank %d (%q): %w", i, b.Name, ErrBankMissingID)
		}
		if seen[b.AppID] {
			return fmt.Errorf("bank %d (%q): %w", i, b.Name, ErrBankDuplicate)
		}
		seen[b.AppID] = true
		if b.MaxReviews < 0 {
			return fmt.Errorf("bank %d (%q): %w", i, b.Name, ErrInvalidMaxRevs)
		}
	}
	return nil
}

// Lookup returns the bank for an app id.
func (r BankRegistry) Lookup(appID string) (Bank, bool) {
	for _, b := range r.Banks {
		if b.AppID == appID {
			return b, true
		}
	}
	return Bank{}, false
}

// AppIDs returns every registered app id in file order.
func (r BankRegistry) AppIDs() []string {
	out := make([]string, 0, len(r.Banks))
	for _, b := range r.Banks {
		out = append(out, b.AppID)
	}
	return out
}
