// Package config defines merge profiles: which documents to merge, where to
// write the result, and how to describe it.
//
// Two profiles are built in. "openapi" merges the OpenAPI 3.0 service
// documents under swagger/ into swagger/merged.openapi.json. "swagger" merges
// the Swagger 2.0 documents into swagger/merged.swagger.json and converts the
// result to swagger/merged.openapi3.json.
//
// Profiles can also be loaded from a YAML file:
//
//	profiles:
//	  - name: openapi
//	    inputs: [types.openapi.json, service.openapi.json]
//	  - name: public
//	    base_dir: api
//	    inputs: [a.json, b.json]
//	    output: public.json
//	    info:
//	      title: Public API
//
// A loaded profile named like a built-in one inherits the built-in's unset
// fields; any other profile inherits the generic defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"dario.cat/mergo"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasmerge/assembler"
	"github.com/erraggy/oasmerge/converter"
	"github.com/erraggy/oasmerge/oaserrors"
)

const (
	// ProfileOpenAPI merges the OpenAPI 3.0 service documents.
	ProfileOpenAPI = "openapi"
	// ProfileSwagger merges the Swagger 2.0 service documents and converts the result.
	ProfileSwagger = "swagger"
)

// Server is the servers entry written by the converter.
type Server struct {
	URL         string `yaml:"url,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Profile is one named merge job.
type Profile struct {
	// Name identifies the profile.
	Name string `yaml:"name"`
	// BaseDir is joined to relative Inputs, Output and ConvertOutput.
	BaseDir string `yaml:"base_dir,omitempty"`
	// Inputs is the ordered list of documents to merge. The first one found is the base.
	Inputs []string `yaml:"inputs,omitempty"`
	// Output is where the merged document is written.
	Output string `yaml:"output,omitempty"`
	// ConvertOutput, when set, is where the merged document converted to OpenAPI 3.0 is written.
	ConvertOutput string `yaml:"convert_output,omitempty"`
	// Info replaces the base document's info block.
	Info assembler.Info `yaml:"info,omitempty"`
	// Server is the converter's servers entry.
	Server Server `yaml:"server,omitempty"`
	// OpenAPIVersion is the converter's openapi version.
	OpenAPIVersion string `yaml:"openapi_version,omitempty"`
}

// Config is a set of profiles.
type Config struct {
	Profiles []Profile `yaml:"profiles"`
}

// Defaults returns the fallback values for fields a profile leaves unset.
func Defaults() Profile {
	return Profile{
		Output:         "merged.json",
		Info:           assembler.DefaultInfo(),
		Server:         Server{URL: converter.DefaultServerURL, Description: converter.DefaultServerDescription},
		OpenAPIVersion: converter.DefaultTargetVersion,
	}
}

// BuiltinProfiles returns the built-in profiles with every field set.
func BuiltinProfiles() []Profile {
	openapi := Profile{
		Name:    ProfileOpenAPI,
		BaseDir: "swagger",
		Inputs: []string{
			"types.openapi.json",
			"service.openapi.json",
			"indexer.openapi.json",
			"admin.openapi.json",
			"signer_manager.openapi.json",
			"wallet.openapi.json",
		},
		Output: "merged.openapi.json",
	}
	swagger := Profile{
		Name:    ProfileSwagger,
		BaseDir: "swagger",
		Inputs: []string{
			"service.swagger.json",
			"indexer.swagger.json",
			"types.swagger.json",
		},
		Output:        "merged.swagger.json",
		ConvertOutput: "merged.openapi3.json",
		Info: assembler.Info{
			Title:       "Ark API",
			Version:     "1.0.0",
			Description: "Combined Ark Service and Indexer API",
		},
	}

	profiles := []Profile{openapi, swagger}
	for i := range profiles {
		if err := mergo.Merge(&profiles[i], Defaults()); err != nil {
			panic(fmt.Sprintf("config: applying defaults to built-in profile %q: %v", profiles[i].Name, err))
		}
	}
	return profiles
}

// Default returns a configuration holding only the built-in profiles.
func Default() *Config {
	return &Config{Profiles: BuiltinProfiles()}
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "config", Value: path, Message: "failed to read config file", Cause: err}
	}
	cfg, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Load decodes a YAML configuration and fills unset profile fields from the
// matching built-in profile or the generic defaults. Built-in profiles not
// redefined by the file remain available.
func Load(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &oaserrors.ConfigError{Option: "config", Message: "invalid YAML", Cause: err}
	}

	builtins := BuiltinProfiles()
	seen := make(map[string]bool, len(cfg.Profiles))
	for i := range cfg.Profiles {
		p := &cfg.Profiles[i]
		if seen[p.Name] {
			return nil, &oaserrors.ConfigError{Option: "profiles", Value: p.Name, Message: "duplicate profile name"}
		}
		seen[p.Name] = true

		defaults := Defaults()
		if idx := slices.IndexFunc(builtins, func(b Profile) bool { return b.Name == p.Name }); idx >= 0 {
			defaults = builtins[idx]
		}
		if err := mergo.Merge(p, defaults); err != nil {
			return nil, &oaserrors.ConfigError{Option: "profiles", Value: p.Name, Message: "failed to apply defaults", Cause: err}
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	for _, b := range builtins {
		if !seen[b.Name] {
			cfg.Profiles = append(cfg.Profiles, b)
		}
	}

	return &cfg, nil
}

// Profile returns the profile called name.
func (c *Config) Profile(name string) (*Profile, error) {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i], nil
		}
	}
	return nil, &oaserrors.ConfigError{
		Option:  "profile",
		Value:   name,
		Message: "unknown profile (available: " + strings.Join(c.Names(), ", ") + ")",
	}
}

// Names returns the profile names in order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Profiles))
	for _, p := range c.Profiles {
		names = append(names, p.Name)
	}
	return names
}

// Validate reports the first missing required field.
func (p *Profile) Validate() error {
	switch {
	case p.Name == "":
		return &oaserrors.ConfigError{Option: "name", Message: "profile name is required"}
	case len(p.Inputs) == 0:
		return &oaserrors.ConfigError{Option: "inputs", Value: p.Name, Message: "profile needs at least one input"}
	case p.Output == "":
		return &oaserrors.ConfigError{Option: "output", Value: p.Name, Message: "profile needs an output"}
	}
	for _, in := range p.Inputs {
		if in == "" {
			return &oaserrors.ConfigError{Option: "inputs", Value: p.Name, Message: "input path cannot be empty"}
		}
	}
	return nil
}

// InputPaths returns Inputs resolved against BaseDir.
func (p *Profile) InputPaths() []string {
	paths := make([]string, len(p.Inputs))
	for i, in := range p.Inputs {
		paths[i] = p.resolve(in)
	}
	return paths
}

// OutputPath returns Output resolved against BaseDir.
func (p *Profile) OutputPath() string {
	return p.resolve(p.Output)
}

// ConvertOutputPath returns ConvertOutput resolved against BaseDir, or "" when
// the profile does not convert.
func (p *Profile) ConvertOutputPath() string {
	if p.ConvertOutput == "" {
		return ""
	}
	return p.resolve(p.ConvertOutput)
}

func (p *Profile) resolve(path string) string {
	if p.BaseDir == "" || filepath.IsAbs(path) || strings.Contains(path, "://") {
		return path
	}
	return filepath.Join(p.BaseDir, path)
}
