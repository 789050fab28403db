package testutil

import (
	"embed"

	"github.com/BurntSushi/toml"

	"github.com/tassiovirginio/try-rs/internal/config"
)

//go:embed fixtures/*.toml
var fixturesFS embed.FS

// LoadFixture loads a TOML fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadConfigFixture decodes a config fixture.
func LoadConfigFixture(name string) (*config.File, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	var f config.File
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ValidConfig returns the valid config fixture.
func ValidConfig() (*config.File, error) {
	return LoadConfigFixture("valid_config.toml")
}

// CustomColorsConfig returns the fixture with a [colors] table.
func CustomColorsConfig() (*config.File, error) {
	return LoadConfigFixture("custom_colors.toml")
}
