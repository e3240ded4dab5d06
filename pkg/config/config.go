// Package config loads optional peermap settings from a TOML file.
//
// A config file supplies defaults for anything the command line can set.
// Flags given explicitly always win over file values, and file values win
// over built-in defaults:
//
//	[inputs]
//	peering  = "exports/vpc_peering_data.json"
//	vpcs     = "exports/vpc_data.json"
//	accounts = "accounts.yaml"
//
//	[filter]
//	accounts = ["111111111111"]
//	regions  = ["us-east-1", "eu-west-1"]
//
//	[output]
//	path    = "reports/peering.html"
//	formats = ["html", "json"]
//	title   = "Production peering"
//	height  = "900px"
package config

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	perrors "github.com/matzehuels/peermap/pkg/errors"
)

// DefaultFile is the config file picked up from the working directory when
// no path is given explicitly.
const DefaultFile = "peermap.toml"

// Config mirrors the TOML file layout. Zero values mean "not set".
type Config struct {
	Inputs Inputs `toml:"inputs"`
	Filter Filter `toml:"filter"`
	Output Output `toml:"output"`

	// Source is the file the config was read from, empty if none.
	Source string `toml:"-"`
}

// Inputs names the export files.
type Inputs struct {
	Peering  string `toml:"peering"`
	VPCs     string `toml:"vpcs"`
	Accounts string `toml:"accounts"`
}

// Filter holds default account and region filters.
type Filter struct {
	Accounts []string `toml:"accounts"`
	Regions  []string `toml:"regions"`
}

// Output configures the generated report.
type Output struct {
	Path    string   `toml:"path"`
	Formats []string `toml:"formats"`
	Title   string   `toml:"title"`
	Height  string   `toml:"height"`
}

// Decode parses TOML config data. Unknown keys are rejected so typos do not
// silently fall back to defaults.
func Decode(data string) (Config, error) {
	var c Config
	md, err := toml.Decode(data, &c)
	if err != nil {
		return Config{}, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, perrors.New(perrors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return c, nil
}

// Load reads the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, perrors.Wrap(perrors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return Config{}, perrors.Wrap(perrors.ErrCodeInvalidPath, err, "read config %s", path)
	}
	c, err := Decode(string(data))
	if err != nil {
		return Config{}, err
	}
	c.Source = path
	return c, nil
}

// Find loads path if given. With an empty path it loads [DefaultFile] from
// the working directory when present and returns an empty Config otherwise.
func Find(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultFile); err != nil {
		return Config{}, nil
	}
	return Load(DefaultFile)
}
