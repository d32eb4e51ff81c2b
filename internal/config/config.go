package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/applemusic-client/internal/constants"
	"github.com/oshokin/applemusic-client/internal/logger"
	"github.com/oshokin/applemusic-client/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// CookiesPath is the path to a Netscape cookie file exported from a logged-in browser.
	// Empty means an anonymous session.
	CookiesPath string `mapstructure:"cookies_path"`
	// Storefront is the two-letter storefront code. A loaded cookie file overrides it.
	Storefront string `mapstructure:"storefront"`
	// Language is the language tag sent with every catalog request.
	Language string `mapstructure:"language"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// MaxLogLength caps the size of HTTP dumps written at debug level (e.g., "64KB", "1MB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// OutputFormat is the rendering of command results: json or yaml.
	OutputFormat string `mapstructure:"output_format"`
	// OutputPath is the file results are written to. Empty means stdout.
	OutputPath string `mapstructure:"output_path"`
	// HomepageURL is the web player address the bearer token is scraped from.
	HomepageURL string `mapstructure:"homepage_url"`
	// CatalogAPIURL is the catalog API root.
	CatalogAPIURL string `mapstructure:"catalog_api_url"`
	// WebPlaybackAPIURL is the playback manifest endpoint.
	WebPlaybackAPIURL string `mapstructure:"webplayback_api_url"`
	// LicenseAPIURL is the DRM license endpoint.
	LicenseAPIURL string `mapstructure:"license_api_url"`
	// LookupAPIURL is the public lookup endpoint.
	LookupAPIURL string `mapstructure:"lookup_api_url"`
	// PageAPIURL is the page API root.
	PageAPIURL string `mapstructure:"page_api_url"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedMaxLogLength is the parsed HTTP dump limit in bytes.
	ParsedMaxLogLength int64
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".applemusic-client.yaml"

	// DefaultStorefront is used when neither the config nor a cookie file names one.
	DefaultStorefront = "us"

	// DefaultLanguage is the default language tag.
	DefaultLanguage = "en-US"

	// DefaultMaxLogLength is the default maximum size (in bytes) of a logged HTTP dump.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// DefaultHomepageURL is the web player address.
	DefaultHomepageURL = "https://beta.music.apple.com"
	// DefaultCatalogAPIURL is the catalog API root.
	DefaultCatalogAPIURL = "https://amp-api.music.apple.com/v1/catalog"
	// DefaultWebPlaybackAPIURL is the playback manifest endpoint.
	DefaultWebPlaybackAPIURL = "https://play.itunes.apple.com/WebObjects/MZPlay.woa/wa/webPlayback"
	// DefaultLicenseAPIURL is the DRM license endpoint.
	DefaultLicenseAPIURL = "https://play.itunes.apple.com/WebObjects/MZPlay.woa/wa/acquireWebPlaybackLicense"
	// DefaultLookupAPIURL is the public lookup endpoint.
	DefaultLookupAPIURL = "https://itunes.apple.com/lookup"
	// DefaultPageAPIURL is the page API root.
	DefaultPageAPIURL = "https://music.apple.com"

	cookiesPathKey = "cookies_path"
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidStorefront indicates that the storefront is not a two-letter code.
	ErrInvalidStorefront = errors.New("storefront must be a two-letter code")
	// ErrInvalidOutputFormat indicates that the output format is not supported.
	ErrInvalidOutputFormat = errors.New("output format must be json or yaml")
	// ErrInvalidMaxLogLength indicates that the log length is not a positive size.
	ErrInvalidMaxLogLength = errors.New("max_log_length must be a positive size")
)

//nolint:gochecknoglobals // Immutable, pre-compiled regex pattern used as a constant.
var storefrontPattern = regexp.MustCompile(`^[A-Za-z]{2}$`)

// LoadConfig loads configuration settings from a YAML file.
// A missing default file yields an empty configuration; a missing explicit file is an error.
func LoadConfig(configFilename string) (*Config, error) {
	explicit := configFilename != ""
	if !explicit {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if explicit || !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity, applies defaults and sets derived fields.
func ValidateConfig(cfg *Config) error {
	cfg.CookiesPath = strings.TrimSpace(cfg.CookiesPath)

	cfg.Storefront = strings.TrimSpace(cfg.Storefront)
	if cfg.Storefront == "" {
		cfg.Storefront = DefaultStorefront
	}

	if !storefrontPattern.MatchString(cfg.Storefront) {
		return fmt.Errorf("%w: '%s'", ErrInvalidStorefront, cfg.Storefront)
	}

	cfg.Language = strings.TrimSpace(cfg.Language)
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}

	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = zapcore.InfoLevel.String()
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedMaxLogLength = DefaultMaxLogLength

	if maxLogLength := strings.TrimSpace(cfg.MaxLogLength); maxLogLength != "" {
		parsed, err := humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}

		if parsed == 0 {
			return ErrInvalidMaxLogLength
		}

		cfg.ParsedMaxLogLength = utils.SafeUint64ToInt64(parsed)
	}

	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	switch cfg.OutputFormat {
	case "":
		cfg.OutputFormat = constants.OutputFormatJSON
	case constants.OutputFormatJSON, constants.OutputFormatYAML:
	default:
		return fmt.Errorf("%w: '%s'", ErrInvalidOutputFormat, cfg.OutputFormat)
	}

	setDefaultURL(&cfg.HomepageURL, DefaultHomepageURL)
	setDefaultURL(&cfg.CatalogAPIURL, DefaultCatalogAPIURL)
	setDefaultURL(&cfg.WebPlaybackAPIURL, DefaultWebPlaybackAPIURL)
	setDefaultURL(&cfg.LicenseAPIURL, DefaultLicenseAPIURL)
	setDefaultURL(&cfg.LookupAPIURL, DefaultLookupAPIURL)
	setDefaultURL(&cfg.PageAPIURL, DefaultPageAPIURL)

	return nil
}

func setDefaultURL(target *string, fallback string) {
	value := strings.TrimRight(strings.TrimSpace(*target), "/")
	if value == "" {
		value = fallback
	}

	*target = value
}

// SaveCookiesPath persists cookies_path to the config file while preserving the original format and order.
func SaveCookiesPath(cookiesPath string) error {
	configFile := getConfigFilePath()

	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cookiesPath, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	setStringInNode(&node, cookiesPathKey, cookiesPath)

	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile, cookiesPath string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	content, err := yaml.Marshal(map[string]string{cookiesPathKey: cookiesPath})
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// setStringInNode sets key to value in the top-level mapping, appending the key when absent.
func setStringInNode(node *yaml.Node, key, value string) {
	// The root node is a document node, content[0] is the actual map.
	if node.Kind == 0 {
		node.Kind = yaml.DocumentNode
	}

	if len(node.Content) == 0 {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"})
	}

	mapNode := node.Content[0]
	if mapNode.Kind != yaml.MappingNode {
		return
	}

	// Key-value pairs are stored as alternating nodes.
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value != key {
			continue
		}

		valueNode := mapNode.Content[i+1]
		valueNode.Kind = yaml.ScalarNode
		valueNode.Tag = "!!str"
		valueNode.Value = value

		if valueNode.Style == 0 {
			valueNode.Style = yaml.DoubleQuotedStyle
		}

		return
	}

	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: yaml.DoubleQuotedStyle},
	)
}
