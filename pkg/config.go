package dupescan

import (
	"fmt"
	"os"

	"github.com/go-ini/ini"
)

// Config represents the dupescan configuration
type Config struct {
	configPath string
	ini        *ini.File
}

// HashConfig represents hash algorithm configuration
type HashConfig struct {
	Default string // Default hash algorithm
}

// ScanConfig represents traversal configuration
type ScanConfig struct {
	MinSize    string // Minimum candidate size, human units (e.g. "1K")
	Symlinks   string // Directory symlink mode: none, contained, all
	IgnoreFile string // Optional ignore-pattern file path
}

// OutputConfig represents output format configuration
type OutputConfig struct {
	Format string // Default output format: human, json
}

// PerformanceConfig represents performance-related configuration
type PerformanceConfig struct {
	HashWorkers int    // Number of concurrent hash workers (0 = one per CPU)
	HashBuffer  string // Hash read buffer size (default: "8K")
}

// LoadConfig loads configuration from an ini file. An empty path yields a
// config that answers every getter with defaults. A missing file is an error;
// the tool never writes config as a side effect of scanning.
func LoadConfig(configPath string) (*Config, error) {
	cfg := &Config{configPath: configPath}

	if configPath == "" {
		cfg.ini = ini.Empty()
		return cfg, nil
	}

	iniFile, err := ini.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	cfg.ini = iniFile
	return cfg, nil
}

// WriteDefaultConfig writes a config file populated with the package defaults,
// refusing to overwrite an existing file.
func WriteDefaultConfig(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	cfg := &Config{configPath: configPath, ini: ini.Empty()}
	if err := cfg.setDefaults(); err != nil {
		return fmt.Errorf("failed to set default config: %w", err)
	}
	if err := cfg.ini.SaveTo(configPath); err != nil {
		return fmt.Errorf("failed to save config file: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values
func (c *Config) setDefaults() error {
	fileHashSection, err := c.ini.NewSection("filehash")
	if err != nil {
		return fmt.Errorf("failed to create filehash section: %w", err)
	}
	if _, err := fileHashSection.NewKey("default", "sha256"); err != nil {
		return fmt.Errorf("failed to set default hash algorithm: %w", err)
	}

	scanSection, err := c.ini.NewSection("scan")
	if err != nil {
		return fmt.Errorf("failed to create scan section: %w", err)
	}
	if _, err := scanSection.NewKey("min_size", "1K"); err != nil {
		return fmt.Errorf("failed to set default min size: %w", err)
	}
	if _, err := scanSection.NewKey("symlinks", SymlinkContained); err != nil {
		return fmt.Errorf("failed to set default symlink mode: %w", err)
	}

	outputSection, err := c.ini.NewSection("output")
	if err != nil {
		return fmt.Errorf("failed to create output section: %w", err)
	}
	if _, err := outputSection.NewKey("format", "human"); err != nil {
		return fmt.Errorf("failed to set default output format: %w", err)
	}

	performanceSection, err := c.ini.NewSection("performance")
	if err != nil {
		return fmt.Errorf("failed to create performance section: %w", err)
	}
	if _, err := performanceSection.NewKey("hash_workers", "0"); err != nil {
		return fmt.Errorf("failed to set default hash workers: %w", err)
	}
	if _, err := performanceSection.NewKey("hash_buffer", "8K"); err != nil {
		return fmt.Errorf("failed to set default hash buffer: %w", err)
	}

	return nil
}

// GetHashConfig returns the hash configuration
func (c *Config) GetHashConfig() *HashConfig {
	hashConfig := &HashConfig{
		Default: "sha256", // fallback default
	}

	if c.ini.HasSection("filehash") {
		section := c.ini.Section("filehash")
		if section.HasKey("default") {
			hashConfig.Default = section.Key("default").String()
		}
	}

	return hashConfig
}

// GetScanConfig returns the traversal configuration
func (c *Config) GetScanConfig() *ScanConfig {
	scanConfig := &ScanConfig{
		MinSize:  "1K", // fallback default
		Symlinks: SymlinkContained,
	}

	if c.ini.HasSection("scan") {
		section := c.ini.Section("scan")
		if section.HasKey("min_size") {
			scanConfig.MinSize = section.Key("min_size").String()
		}
		if section.HasKey("symlinks") {
			scanConfig.Symlinks = section.Key("symlinks").String()
		}
		if section.HasKey("ignore_file") {
			scanConfig.IgnoreFile = section.Key("ignore_file").String()
		}
	}

	return scanConfig
}

// GetOutputConfig returns the output configuration
func (c *Config) GetOutputConfig() *OutputConfig {
	outputConfig := &OutputConfig{
		Format: "human", // fallback default
	}

	if c.ini.HasSection("output") {
		section := c.ini.Section("output")
		if section.HasKey("format") {
			outputConfig.Format = section.Key("format").String()
		}
	}

	return outputConfig
}

// GetPerformanceConfig returns the performance configuration
func (c *Config) GetPerformanceConfig() *PerformanceConfig {
	performanceConfig := &PerformanceConfig{
		HashWorkers: 0,    // fallback default: one worker per CPU
		HashBuffer:  "8K", // fallback default
	}

	if c.ini.HasSection("performance") {
		section := c.ini.Section("performance")
		if section.HasKey("hash_workers") {
			if workers, err := section.Key("hash_workers").Int(); err == nil {
				performanceConfig.HashWorkers = workers
			}
		}
		if section.HasKey("hash_buffer") {
			if bufferSize := section.Key("hash_buffer").String(); bufferSize != "" {
				performanceConfig.HashBuffer = bufferSize
			}
		}
	}

	return performanceConfig
}
