// Package config loads the site configuration: source layout, navigation
// manifest, and theme options.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ThemeOptions are the theme settings consumed by navigation and page
// context assembly.
type ThemeOptions struct {
	TocTitle            string `yaml:"toc_title,omitempty"`
	TocTitleIsPageTitle bool   `yaml:"toc_title_is_page_title,omitempty"`
	GlobalTocCollapse   bool   `yaml:"globaltoc_collapse,omitempty"`
	RepoURL             string `yaml:"repo_url,omitempty"`
	EditURI             string `yaml:"edit_uri,omitempty"`
}

// NavItem is one entry of the navigation manifest: either a document
// reference or a caption grouping nested items. A bare string in the YAML is
// shorthand for a document reference.
type NavItem struct {
	Doc     string    `yaml:"doc,omitempty"`
	Caption string    `yaml:"caption,omitempty"`
	Items   []NavItem `yaml:"items,omitempty"`
}

// UnmarshalYAML accepts both the shorthand scalar form and the full mapping
// form.
func (n *NavItem) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		n.Doc = value.Value
		return nil
	}
	type plain NavItem
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*n = NavItem(p)
	if n.Caption != "" && n.Doc != "" {
		return fmt.Errorf("nav item %q: caption entries cannot also reference a document", n.Caption)
	}
	return nil
}

// Config is the full site configuration.
type Config struct {
	Title     string       `yaml:"title"`
	SourceDir string       `yaml:"source_dir,omitempty"`
	MasterDoc string       `yaml:"master_doc,omitempty"`
	Nav       []NavItem    `yaml:"nav,omitempty"`
	Objects   string       `yaml:"objects,omitempty"` // path to an objects index file
	Theme     ThemeOptions `yaml:"theme,omitempty"`
}

// Load reads configuration from path. A .env file next to the working
// directory is loaded first if present, and environment variables in the
// YAML are expanded.
func Load(path string) (*Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.SourceDir == "" {
		cfg.SourceDir = "."
	}
	if cfg.MasterDoc == "" {
		cfg.MasterDoc = "index"
	}
	return cfg, nil
}
