package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/orgkit/orgtree/org"
)

const FileName = ".orgtree.yml"

// Rule is one entry of the naming convention, evaluated in file order.
type Rule struct {
	Pattern     string `yaml:"pattern" validate:"required"`
	Environment string `yaml:"environment" validate:"required,oneof=PROD NON-PROD"`
}

// Alias overrides the display name of an account identified by its
// email, for accounts created with a wrong alias.
type Alias struct {
	Email string `yaml:"email" validate:"required,email"`
	Name  string `yaml:"name" validate:"required"`
}

// Defaults are flag fallbacks used when a flag is not given.
type Defaults struct {
	Profile     string `yaml:"profile"`
	Region      string `yaml:"region"`
	Environment string `yaml:"environment" validate:"omitempty,oneof=ALL PROD NON-PROD"`
}

type Config struct {
	Version  string   `yaml:"version" validate:"required,oneof=1"`
	Rules    []Rule   `yaml:"rules" validate:"dive"`
	Aliases  []Alias  `yaml:"aliases,omitempty" validate:"dive"`
	Defaults Defaults `yaml:"defaults"`
}

// Default is the configuration used when no .orgtree.yml exists,
// mirroring the built-in classifier rules.
func Default() Config {
	return Config{
		Version: "1",
		Rules: []Rule{
			{Pattern: "-non-prod", Environment: string(org.EnvNonProd)},
			{Pattern: "-prod", Environment: string(org.EnvProd)},
		},
		Defaults: Defaults{
			Profile:     "default",
			Region:      "ap-southeast-2",
			Environment: string(org.EnvAll),
		},
	}
}

// ClassifierRules converts the configured rule set for the classifier,
// falling back to the built-in convention when the file declares none.
func (c Config) ClassifierRules() []org.Rule {
	if len(c.Rules) == 0 {
		return org.DefaultRules()
	}

	rules := make([]org.Rule, 0, len(c.Rules))
	for _, r := range c.Rules {
		rules = append(rules, org.Rule{Pattern: r.Pattern, Env: org.Environment(r.Environment)})
	}
	return rules
}

// AliasOverrides returns the alias fixes keyed by account email.
func (c Config) AliasOverrides() map[string]string {
	if len(c.Aliases) == 0 {
		return nil
	}

	overrides := make(map[string]string, len(c.Aliases))
	for _, a := range c.Aliases {
		overrides[a.Email] = a.Name
	}
	return overrides
}

type Loader interface {
	Load(path string) (Config, error)
}

type Writer interface {
	Write(w io.Writer, cfg Config) error
}

type Finder interface {
	// Find walks up from startDir looking for a config file. When none
	// exists it returns Default() with an empty path.
	Find(startDir string) (cfg Config, path string, err error)
}

type yamlLoader struct {
	validate *validator.Validate
}

func NewLoader() Loader {
	return &yamlLoader{
		validate: validator.New(),
	}
}

func (l *yamlLoader) Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config file")
	}

	dec := yaml.NewDecoder(
		bytes.NewReader(data),
		yaml.Validator(l.validate),
		yaml.Strict(),
	)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse config file")
	}

	return cfg, nil
}

type yamlWriter struct{}

func NewWriter() Writer {
	return &yamlWriter{}
}

func (w *yamlWriter) Write(wr io.Writer, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if _, err := wr.Write(data); err != nil {
		return errors.Wrap(err, "failed to write config")
	}

	return nil
}

type finder struct {
	loader Loader
}

func NewFinder(loader Loader) Finder {
	return &finder{loader: loader}
}

func (f *finder) Find(startDir string) (Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			cfg, err := f.loader.Load(configPath)
			if err != nil {
				return Config{}, "", err
			}
			return cfg, configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), "", nil
		}
		dir = parent
	}
}

func WriteToFile(dir string, cfg Config, w Writer) error {
	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(err, "failed to create config file")
	}
	defer f.Close()

	return w.Write(f, cfg)
}
