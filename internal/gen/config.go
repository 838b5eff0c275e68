package gen

import (
	"fmt"
	"os"
	"strings"

	"github.com/viant/tagly/format/text"
	"gopkg.in/yaml.v3"
)

// CaseNone keeps Go field names as JSON names for untagged fields.
const CaseNone = "none"

// Config holds generator settings, from flags or a YAML file.
type Config struct {
	// Dir is the directory of the package holding the types.
	Dir string `yaml:"dir"`
	// Types lists the root struct types; reachable structs of the same package are added.
	Types []string `yaml:"types"`
	// Output is the generated file name, relative to Dir unless absolute.
	Output string `yaml:"output"`
	// CaseFormat names the tagly case format applied to untagged fields.
	CaseFormat string `yaml:"caseFormat"`
	Debug      bool   `yaml:"debug"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := &Config{}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Init applies defaults.
func (c *Config) Init() {
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.CaseFormat == "" {
		c.CaseFormat = string(text.CaseFormatLowerCamel)
	}
	var types []string
	for _, name := range c.Types {
		if name = strings.TrimSpace(name); name != "" {
			types = append(types, name)
		}
	}
	c.Types = types
}

// Validate checks the config after Init.
func (c *Config) Validate() error {
	if len(c.Types) == 0 {
		return fmt.Errorf("no types specified")
	}
	if c.CaseFormat != CaseNone && !text.NewCaseFormat(c.CaseFormat).IsDefined() {
		return fmt.Errorf("unsupported case format: %s", c.CaseFormat)
	}
	return nil
}

func (c *Config) caseFormat() text.CaseFormat {
	if c.CaseFormat == CaseNone {
		return text.CaseFormatUndefined
	}
	return text.NewCaseFormat(c.CaseFormat)
}
