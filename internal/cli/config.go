package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// configFileName is the config file name inside the XDG config directory.
const configFileName = "config.toml"

// fileConfig mirrors the layout-related command-line flags. Every field is
// a pointer so an absent key can be told apart from a zero value.
//
// Example config.toml:
//
//	size = 2560
//	padding = 8
//	background = "#1a1a2e"
//	quality = 90
//
//	[title]
//	size = 32
//	color = "#f0f0f0"
type fileConfig struct {
	Size       *int    `toml:"size"`
	Width      *int    `toml:"width"`
	Height     *int    `toml:"height"`
	Padding    *int    `toml:"padding"`
	Columns    *int    `toml:"columns"`
	MaxRows    *int    `toml:"max-rows"`
	Centered   *bool   `toml:"centered"`
	Background *string `toml:"background"`
	Quality    *int    `toml:"quality"`
	Workers    *int    `toml:"workers"`

	Title struct {
		Size        *int    `toml:"size"`
		Font        *string `toml:"font"`
		Color       *string `toml:"color"`
		Border      *int    `toml:"border"`
		BorderColor *string `toml:"border-color"`
		Margin      *bool   `toml:"margin"`
	} `toml:"title"`
}

// applyConfig loads the config file and copies its values into flags, but
// only for flags the user did not set explicitly. An explicitly requested
// config file must exist; the default location is optional.
func applyConfig(cmd *cobra.Command, flags *collageFlags) error {
	path := flags.configFile
	explicit := path != ""
	if !explicit {
		var err error
		path, err = configPath()
		if err != nil {
			return nil
		}
	}

	cfg, found, err := loadConfig(path)
	if err != nil {
		return err
	}
	if !found {
		if explicit {
			return fmt.Errorf("config file %q not found", path)
		}
		return nil
	}

	set := cmd.Flags().Changed

	applyInt(&flags.size, cfg.Size, set("size"))
	applyInt(&flags.width, cfg.Width, set("width"))
	applyInt(&flags.height, cfg.Height, set("height"))
	applyInt(&flags.padding, cfg.Padding, set("padding"))
	applyInt(&flags.columns, cfg.Columns, set("columns"))
	applyInt(&flags.maxRows, cfg.MaxRows, set("max-rows"))
	applyBool(&flags.centered, cfg.Centered, set("centered"))
	applyString(&flags.background, cfg.Background, set("background"))
	applyInt(&flags.quality, cfg.Quality, set("quality"))
	applyInt(&flags.workers, cfg.Workers, set("workers"))

	applyInt(&flags.titleSize, cfg.Title.Size, set("title-size"))
	applyString(&flags.titleFont, cfg.Title.Font, set("title-font"))
	applyString(&flags.titleColor, cfg.Title.Color, set("title-color"))
	applyInt(&flags.titleBorder, cfg.Title.Border, set("title-border"))
	applyString(&flags.titleBorderColor, cfg.Title.BorderColor, set("title-border-color"))
	applyBool(&flags.titleMargin, cfg.Title.Margin, set("title-margin"))

	return nil
}

// loadConfig parses the TOML config at path. found is false when the file
// does not exist.
func loadConfig(path string) (fileConfig, bool, error) {
	var cfg fileConfig
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, false, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, false, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, true, nil
}

func applyInt(dst *int, src *int, flagSet bool) {
	if src != nil && !flagSet {
		*dst = *src
	}
}

func applyBool(dst *bool, src *bool, flagSet bool) {
	if src != nil && !flagSet {
		*dst = *src
	}
}

func applyString(dst *string, src *string, flagSet bool) {
	if src != nil && !flagSet {
		*dst = *src
	}
}
