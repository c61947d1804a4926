package service

import (
	"github.com/spf13/viper"

	"github.com/pdgclone/pdgclone/domain"
	"github.com/pdgclone/pdgclone/internal/config"
)

// CloneConfigurationLoader implements domain.CloneConfigurationLoader by
// reading a .pdgclone.yaml project file with viper.
type CloneConfigurationLoader struct{}

// NewCloneConfigurationLoader creates a new clone configuration loader.
func NewCloneConfigurationLoader() *CloneConfigurationLoader {
	return &CloneConfigurationLoader{}
}

// LoadCloneConfig loads clone-detection configuration from configPath, or
// discovers .pdgclone.yaml in the current directory when configPath is
// empty. Falling back to defaults when no config file exists is not an
// error — only an explicitly named, unreadable file is.
func (c *CloneConfigurationLoader) LoadCloneConfig(configPath string) (*domain.CloneRequest, error) {
	v := viper.New()
	cfg := config.DefaultCloneConfig()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".pdgclone")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			return nil, domain.NewConfigError("failed to read config file: "+configPath, err)
		}
		req := cfg.ToCloneRequest()
		req.ConfigPath = configPath
		return &req, nil
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, domain.NewConfigError("failed to parse config file", err)
	}

	req := cfg.ToCloneRequest()
	req.ConfigPath = v.ConfigFileUsed()
	return &req, nil
}
