// Package rules holds the classification policy tables: merchant aliases,
// usage-category membership, account mappings, apportionment ratios and the
// low-value override. The tables are data, loaded once per run and treated
// as immutable afterwards.
package rules

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Amount is a decimal that round-trips through YAML as a plain scalar,
// since yaml.v3 has no text-marshaling hook for decimal.Decimal.
type Amount struct {
	decimal.Decimal
}

// MarshalYAML renders the amount as a scalar like "0.85".
func (a Amount) MarshalYAML() (interface{}, error) {
	return a.Decimal.String(), nil
}

// UnmarshalYAML parses a scalar into a decimal.
func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("parsing decimal %q: %w", s, err)
	}
	a.Decimal = d
	return nil
}

// Rules is the top-level rules.yaml document.
type Rules struct {
	Aliases     map[string]string `yaml:"aliases,omitempty"`
	Usage       UsageRules        `yaml:"usage"`
	Accounts    AccountRules      `yaml:"accounts"`
	Ratios      map[string]Amount `yaml:"ratios,omitempty"`
	Provisional []string          `yaml:"provisional,omitempty"`
	LowValue    LowValueRule      `yaml:"low_value"`
}

// UsageRules lists merchant keys per usage category. A merchant should
// appear in at most one list; the first matching list wins.
type UsageRules struct {
	Business    []string `yaml:"business,omitempty"`
	Personal    []string `yaml:"personal,omitempty"`
	Apportioned []string `yaml:"apportioned,omitempty"`
}

// AccountRules maps merchants to bookkeeping account labels, plus the fixed
// labels used for personal rows and for unmapped merchants.
type AccountRules struct {
	Merchants      map[string]string `yaml:"merchants,omitempty"`
	PersonalRefund string            `yaml:"personal_refund"`
	PersonalCharge string            `yaml:"personal_charge"`
	Fallback       string            `yaml:"fallback"`
}

// LowValueRule forces small purchases from one mixed-use merchant to
// personal: |amount| <= Threshold reclassifies the row.
type LowValueRule struct {
	Merchant  string `yaml:"merchant,omitempty"`
	Threshold Amount `yaml:"threshold,omitempty"`
}

// Load reads a rules.yaml file from disk.
func Load(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	return &r, nil
}

// Save writes Rules to a YAML file.
func Save(path string, r *Rules) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}
	return nil
}
