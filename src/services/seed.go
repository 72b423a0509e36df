package services

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/jvalente2019/teller/src/models"
)

type SeedAccountYAML struct {
	Available float64 `yaml:"available"`
	Present   float64 `yaml:"present"`
}

type SeedConfigYAML struct {
	Accounts []SeedAccountYAML `yaml:"accounts"`
}

// LoadSeedConfig reads a YAML file listing accounts to open at startup.
func LoadSeedConfig(path string) (*SeedConfigYAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadSeedConfig: failed to read %s: %w", path, err)
	}

	var config SeedConfigYAML
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("LoadSeedConfig: failed to unmarshal %s: %w", path, err)
	}

	return &config, nil
}

// ApplySeed opens every seeded account through the vault's normal degrading
// construction path and reports how many were opened.
func ApplySeed(vault *models.Vault, config *SeedConfigYAML) int {
	for _, entry := range config.Accounts {
		account := vault.Open(entry.Available, entry.Present)
		log.Debugf("seeded %s", account)
	}

	log.Infof("seeded %d account(s), %d live", len(config.Accounts), vault.Live())

	return len(config.Accounts)
}
