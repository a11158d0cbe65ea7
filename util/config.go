package util

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const Name = "keytan"
const ConfigFileName = "config.yaml"

//go:embed config_default.yaml
var embeddedConfig []byte

type AppConfig struct {
	Conf struct {
		Host      string
		SshPort   int    `yaml:"sshPort"`
		HttpPort  int    `yaml:"httpPort"`
		WithLogin bool   `yaml:"withLogin"`
		WithWeb   bool   `yaml:"withWeb"`
		DbPath    string `yaml:"dbPath"`
		LogFile   string `yaml:"logFile"`
		LogLevel  string `yaml:"logLevel"`
	}
}

func ReadConf() (*AppConfig, error) {

	c := &AppConfig{}

	configPath := ResolveFilePath(ConfigFileName)

	buf, err := os.ReadFile(configPath)
	if err != nil {
		log.Info("Config file not found, using embedded defaults", "path", configPath)
		buf = embeddedConfig

		configDir, dirErr := GetConfigDir()
		if dirErr == nil {
			userConfigPath := filepath.Join(configDir, ConfigFileName)
			if writeErr := os.WriteFile(userConfigPath, embeddedConfig, 0644); writeErr != nil {
				log.Warn("Could not write default config", "path", userConfigPath, "err", writeErr)
			} else {
				log.Info("Created default config file", "path", userConfigPath)
			}
		}
	}

	err = yaml.Unmarshal(buf, c)
	if err != nil {
		return nil, fmt.Errorf("in config file: %w", err)
	}

	if v := os.Getenv("KEYTAN_HOST"); v != "" {
		c.Conf.Host = v
	}

	envInt("KEYTAN_SSHPORT", &c.Conf.SshPort)
	envInt("KEYTAN_HTTPPORT", &c.Conf.HttpPort)

	if v := os.Getenv("KEYTAN_WITH_LOGIN"); v != "" {
		c.Conf.WithLogin = v == "true"
	}

	if v := os.Getenv("KEYTAN_WITH_WEB"); v != "" {
		c.Conf.WithWeb = v == "true"
	}

	if v := os.Getenv("KEYTAN_DB_PATH"); v != "" {
		c.Conf.DbPath = v
	}

	if v := os.Getenv("KEYTAN_LOG_FILE"); v != "" {
		c.Conf.LogFile = v
	}

	if v := os.Getenv("KEYTAN_LOG_LEVEL"); v != "" {
		c.Conf.LogLevel = v
	}

	return c, nil
}

// envInt overrides *dst with the named variable. Values that are not
// numbers are logged and ignored.
func envInt(name string, dst *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn("Ignoring invalid number in environment", "var", name, "value", v)
		return
	}
	*dst = n
}
