// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the md2pptx CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/md2pptx/internal/logging"
	"github.com/pdiddy/md2pptx/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE once flags and config are loaded.
var logger *zap.SugaredLogger

// errUsage signals that a command printed its own usage message.
var errUsage = errors.New("usage error")

// rootCmd is the base command for the md2pptx CLI.
var rootCmd = &cobra.Command{
	Use:   "md2pptx",
	Short: "Convert Markdown slide decks to PowerPoint presentations",
	Long: `md2pptx turns a Markdown document into a plain .pptx presentation.
Slides are separated by "---". In each slide the first "#" line becomes the
title and the remaining lines become body paragraphs; lines indented with a
space or tab are nested one level.

Use "check" to see where a document will be split before converting it, and
"outline" to inspect the parsed slides.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(viper.GetBool("verbose"))
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./md2pptx.yaml or ~/.config/md2pptx/md2pptx.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetDefault("conversion.layout_index", types.DefaultLayoutIndex)
	viper.SetDefault("conversion.front_matter", false)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("md2pptx")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "md2pptx"))
		}
	}

	viper.SetEnvPrefix("MD2PPTX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// conversionConfig resolves conversion settings from flags, environment,
// config file, and defaults, in that order of precedence.
func conversionConfig() types.ConversionConfig {
	return types.ConversionConfig{
		LayoutIndex: viper.GetInt("conversion.layout_index"),
		FrontMatter: viper.GetBool("conversion.front_matter"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
