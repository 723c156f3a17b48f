// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// EnzymeSettings are settings about the enzyme panel
type EnzymeSettings struct {
	// the enzymes scanned when the user doesn't name any
	Panel []string `mapstructure:"panel"`
}

// LigationSettings are settings for ligation simulation
type LigationSettings struct {
	// the insert:vector molar ratio assumed when none is passed
	MolarRatio float64 `mapstructure:"molar-ratio"`
}

// OutputSettings are settings for writing results
type OutputSettings struct {
	// whether JSON output is indented
	Indent bool `mapstructure:"indent"`
}

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml and those available from the command line
type Config struct {
	// enzyme panel settings
	Enzymes EnzymeSettings `mapstructure:"enzymes"`

	// ligation settings
	Ligation LigationSettings `mapstructure:"ligation"`

	// output settings
	Output OutputSettings `mapstructure:"output"`
}

// New returns a new Config struct populated by Viper settings (either from
// the local settings.yaml) and/or command line arguments
func New() *Config {
	setDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return &c
}

func setDefaults() {
	// a panel of common commercially available enzymes
	viper.SetDefault("enzymes.panel", []string{
		"EcoRI", "BamHI", "HindIII", "PstI", "SalI", "XbaI", "SmaI",
		"KpnI", "SacI", "XhoI", "NotI", "SpeI", "NheI", "ApaI",
		"NcoI", "NdeI", "BglII", "EcoRV", "PvuII", "AgeI", "ClaI",
		"MluI", "SacII",
	})
	viper.SetDefault("ligation.molar-ratio", 3.0)
	viper.SetDefault("output.indent", true)
}
