package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	themekiterrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Format identifies a provider file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatFor maps a file extension onto a Format.
func FormatFor(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", themekiterrors.NewUnsupportedFormatError(path, ext)
	}
}

// Load reads, decodes and validates a provider file.
func Load(path string) (*Config, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themekiterrors.NewParseError(path, string(format), 0, err)
	}

	return Parse(path, format, data)
}

// Parse decodes data in the given format, applies defaults and validates
// the result. path is only used in error messages.
func Parse(path string, format Format, data []byte) (*Config, error) {
	var cfg Config

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, themekiterrors.NewParseError(path, string(format), extractLine(err), err)
		}
	case FormatTOML:
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, themekiterrors.NewParseError(path, string(format), tomlLine(err), err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, themekiterrors.NewParseError(path, string(format), 0, fmt.Errorf("unknown field %q", undecoded[0].String()))
		}
	default:
		return nil, themekiterrors.NewUnsupportedFormatError(path, string(format))
	}

	cfg.ApplyDefaults()
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

func tomlLine(err error) int {
	var perr toml.ParseError
	if errors.As(err, &perr) {
		return perr.Position.Line
	}
	return extractLine(err)
}
