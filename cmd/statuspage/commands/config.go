package commands

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/statuspage-client/internal/constants"
	"github.com/fivetwenty-io/statuspage-client/pkg/spclient"
	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Configuration keys shared by flags, environment and the config file.
const (
	keyAPIKey  = "api_key"
	keyBaseURL = "base_url"
	keyPageID  = "page_id"
	keyOutput  = "output"
	keyVerbose = "verbose"
)

// Config represents the CLI configuration.
type Config struct {
	APIKey  string `json:"api_key,omitempty"  yaml:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	PageID  string `json:"page_id,omitempty"  yaml:"page_id,omitempty"`
	Output  string `json:"output,omitempty"   yaml:"output,omitempty"`
	Verbose bool   `json:"verbose,omitempty"  yaml:"verbose,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the statuspage config file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration after flags, environment and config file are merged",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIKey = maskSecret(config.APIKey)

			return renderOutput(cmd.OutOrStdout(), config, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("API Key", valueOrNA(config.APIKey))
				_ = table.Append("Base URL", valueOrNA(config.BaseURL))
				_ = table.Append("Page ID", valueOrNA(config.PageID))
				_ = table.Append("Output", valueOrNA(config.Output))
				_ = table.Append("Verbose", strconv.FormatBool(config.Verbose))
				_ = table.Append("Config File", valueOrNA(viper.ConfigFileUsed()))
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of api_key, base_url, page_id, output or verbose in the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath()
			if err != nil {
				return err
			}

			config, err := readConfigFile(path)
			if err != nil {
				return err
			}

			err = setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(path, config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			shown := args[1]
			if args[0] == keyAPIKey {
				shown = maskSecret(shown)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", args[0], shown)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath()
			if err != nil {
				return err
			}

			config, err := readConfigFile(path)
			if err != nil {
				return err
			}

			err = unsetConfigValue(config, args[0])
			if err != nil {
				return err
			}

			err = saveConfigStruct(path, config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

// loadConfig returns the effective configuration as resolved by viper.
func loadConfig() *Config {
	return &Config{
		APIKey:  viper.GetString(keyAPIKey),
		BaseURL: viper.GetString(keyBaseURL),
		PageID:  viper.GetString(keyPageID),
		Output:  viper.GetString(keyOutput),
		Verbose: viper.GetBool(keyVerbose),
	}
}

// configFilePath returns the file config changes are written to.
func configFilePath() (string, error) {
	if path := viper.GetString("config"); path != "" {
		return path, nil
	}

	if path := viper.ConfigFileUsed(); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".statuspage", "config.yml"), nil
}

// readConfigFile loads only what is stored on disk. A missing file yields an
// empty config.
func readConfigFile(path string) (*Config, error) {
	config := &Config{}

	// path comes from the --config flag or the user's home directory
	// #nosec G304
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func saveConfigStruct(path string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case keyAPIKey:
		config.APIKey = value
	case keyBaseURL:
		err := validateBaseURL(value)
		if err != nil {
			return err
		}

		config.BaseURL = value
	case keyPageID:
		config.PageID = value
	case keyOutput:
		err := validateOutputFormat(value)
		if err != nil {
			return err
		}

		config.Output = value
	case keyVerbose:
		verbose, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s", constants.ErrInvalidBool, value)
		}

		config.Verbose = verbose
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case keyAPIKey:
		config.APIKey = ""
	case keyBaseURL:
		config.BaseURL = ""
	case keyPageID:
		config.PageID = ""
	case keyOutput:
		config.Output = ""
	case keyVerbose:
		config.Verbose = false
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func validateBaseURL(value string) error {
	if value == "" {
		return nil
	}

	if !strings.Contains(value, "://") {
		value = "https://" + value
	}

	parsed, err := url.Parse(value)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("%w: %s", constants.ErrInvalidBaseURL, value)
	}

	return nil
}

func validateOutputFormat(value string) error {
	switch value {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, value)
	}
}

// maskSecret keeps the first few characters of a secret visible.
func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}

	if len(secret) <= constants.SecretVisibleChars {
		return constants.MaskedSecret
	}

	return secret[:constants.SecretVisibleChars] + constants.MaskedSecret
}

// CreateClient builds an API client from the effective configuration,
// prompting for the API key when none is configured and stdin is a terminal.
func CreateClient(cmd *cobra.Command) (statuspage.Client, error) {
	config := loadConfig()

	if config.APIKey == "" {
		apiKey, err := promptAPIKey(cmd.ErrOrStderr())
		if err != nil {
			return nil, err
		}

		config.APIKey = apiKey
	}

	err := validateBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	clientConfig := &statuspage.Config{
		APIKey:  config.APIKey,
		BaseURL: config.BaseURL,
		Debug:   config.Verbose,
		Logger:  NewLogger(cmd.ErrOrStderr(), config.Verbose),
	}

	if config.Verbose {
		chain := statuspage.NewInterceptorChain()
		chain.AddRequestInterceptor(statuspage.LoggingInterceptor(clientConfig.Logger))
		chain.AddResponseInterceptor(statuspage.LoggingResponseInterceptor(clientConfig.Logger))
		clientConfig.Interceptors = chain
	}

	client, err := spclient.New(clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

func promptAPIKey(prompt io.Writer) (string, error) {
	stdin := int(os.Stdin.Fd())
	if !term.IsTerminal(stdin) {
		return "", constants.ErrNoAPIKey
	}

	_, _ = fmt.Fprint(prompt, "API key: ")

	keyBytes, err := term.ReadPassword(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	_, _ = fmt.Fprintln(prompt)

	apiKey := strings.TrimSpace(string(keyBytes))
	if apiKey == "" {
		return "", constants.ErrNoAPIKey
	}

	return apiKey, nil
}

// requirePageID returns the configured page id.
func requirePageID() (string, error) {
	pageID := viper.GetString(keyPageID)
	if pageID == "" {
		return "", constants.ErrNoPageID
	}

	return pageID, nil
}
