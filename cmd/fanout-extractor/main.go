// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the fanout-extractor CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/fanout-extractor/internal/dataforseo"
	"github.com/pdiddy/fanout-extractor/internal/logging"
	"github.com/pdiddy/fanout-extractor/internal/secrets"
	"github.com/pdiddy/fanout-extractor/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultLocationCode = 2032
	defaultLanguageCode = "es-419"
	defaultTimeout      = 120 * time.Second
	defaultUserAgent    = "fanout-extractor/0.1"
	defaultAddr         = ":8080"
)

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// logger is built from the log.* config keys before any subcommand runs.
var logger *logrus.Logger

// rootCmd is the base command for the fanout-extractor CLI.
var rootCmd = &cobra.Command{
	Use:   "fanout-extractor",
	Short: "Extract ChatGPT query fan-outs and brand entities for keyword batches",
	Long: `fanout-extractor sends each keyword of a batch to the DataForSEO ChatGPT
LLM scraper (live, with web search forced on), one request per keyword, and
collects the fan-out queries, brand entities, web search results, and cited
sources of every answer.

Use "search" for a one-off batch from the command line and "serve" for the
browser form. Credentials come from --login/--password, the config file,
FANOUT_EXTRACTOR_API_LOGIN/FANOUT_EXTRACTOR_API_PASSWORD, or the files
.secrets/dataforseo-login and .secrets/dataforseo-password.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(os.Stderr, viper.GetString("log.level"), viper.GetString("log.format"))
		if err != nil {
			return err
		}
		logger = l

		s, err := secrets.Load(".secrets/", os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := s.Keys()
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./fanout-extractor.yaml or ~/.config/fanout-extractor/fanout-extractor.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().String("login", "", "DataForSEO API login (email)")
	rootCmd.PersistentFlags().String("password", "", "DataForSEO API password")
	rootCmd.PersistentFlags().String("endpoint", "", "override the LLM scraper endpoint URL")
	rootCmd.PersistentFlags().Int("location", defaultLocationCode, "location code, e.g. 2032 (Argentina), 2840 (USA), 2724 (Spain)")
	rootCmd.PersistentFlags().String("language", defaultLanguageCode, "language code, e.g. en, es, es-419, fr")
	rootCmd.PersistentFlags().Int("concurrency", dataforseo.DefaultConcurrency, "maximum in-flight requests per batch (0 = one per keyword)")
	rootCmd.PersistentFlags().Duration("timeout", defaultTimeout, "HTTP request timeout")

	bindFlag("log.level", "log-level")
	bindFlag("log.format", "log-format")
	bindFlag("api.login", "login")
	bindFlag("api.password", "password")
	bindFlag("api.endpoint", "endpoint")
	bindFlag("search.location_code", "location")
	bindFlag("search.language_code", "language")
	bindFlag("search.concurrency", "concurrency")
	bindFlag("http.timeout", "timeout")

	viper.SetDefault("http.user_agent", defaultUserAgent)
	viper.SetDefault("serve.addr", defaultAddr)
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("fanout-extractor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "fanout-extractor"))
		}
	}

	viper.SetEnvPrefix("FANOUT_EXTRACTOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// appConfig assembles the effective configuration. Credentials missing
// from flags, config, and environment fall back to the secrets directory.
func appConfig() types.AppConfig {
	cfg := types.AppConfig{
		API: types.APIConfig{
			Endpoint: viper.GetString("api.endpoint"),
			Credentials: types.Credentials{
				Login:    viper.GetString("api.login"),
				Password: viper.GetString("api.password"),
			},
		},
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("http.timeout"),
				UserAgent: viper.GetString("http.user_agent"),
			},
			LocationCode: viper.GetInt("search.location_code"),
			LanguageCode: viper.GetString("search.language_code"),
			Concurrency:  viper.GetInt("search.concurrency"),
		},
		Log: types.LogConfig{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
		},
		Serve: types.ServeConfig{Addr: viper.GetString("serve.addr")},
	}

	fromSecrets := loadedSecrets.Credentials()
	if cfg.API.Login == "" {
		cfg.API.Login = fromSecrets.Login
	}
	if cfg.API.Password == "" {
		cfg.API.Password = fromSecrets.Password
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
