package site

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/docfold/matnav/internal/objinfo"
)

// objectsFile is the YAML shape of the objects index: a set of domains, each
// listing the API objects its pages document.
type objectsFile struct {
	Domains []struct {
		Name    string            `yaml:"name"`
		Types   map[string]string `yaml:"types,omitempty"` // explicit type labels
		Objects []struct {
			Name        string `yaml:"name"`
			DisplayName string `yaml:"display_name,omitempty"`
			Type        string `yaml:"type"`
			Doc         string `yaml:"doc"`
			Anchor      string `yaml:"anchor"`
			Priority    int    `yaml:"priority,omitempty"`
			Synopsis    string `yaml:"synopsis,omitempty"`
		} `yaml:"objects"`
	} `yaml:"domains"`
}

// FileDomain is a content domain backed by the objects index file.
type FileDomain struct {
	name      string
	labels    map[string]string
	objects   []objinfo.Object
	synopses  map[string]string // objType + "\x00" + name
	titleCase cases.Caser
}

var _ objinfo.Domain = (*FileDomain)(nil)
var _ objinfo.SynopsisProvider = (*FileDomain)(nil)

func (d *FileDomain) Name() string { return d.name }

func (d *FileDomain) Objects() []objinfo.Object { return d.objects }

// TypeName returns the configured label for an object type, or a title-cased
// form of the type itself when none is configured.
func (d *FileDomain) TypeName(objType string) string {
	if label, ok := d.labels[objType]; ok {
		return label
	}
	return d.titleCase.String(strings.ReplaceAll(objType, "-", " "))
}

func (d *FileDomain) ObjectSynopsis(objType, name string) string {
	return d.synopses[objType+"\x00"+name]
}

// loadDomains reads the objects index file into file-backed domains.
func loadDomains(path string) ([]objinfo.Domain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read objects index: %w", err)
	}
	var file objectsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse objects index %s: %w", path, err)
	}

	domains := make([]objinfo.Domain, 0, len(file.Domains))
	for _, raw := range file.Domains {
		d := &FileDomain{
			name:      raw.Name,
			labels:    raw.Types,
			synopses:  map[string]string{},
			titleCase: cases.Title(language.English),
		}
		for _, o := range raw.Objects {
			display := o.DisplayName
			if display == "" {
				display = o.Name
			}
			d.objects = append(d.objects, objinfo.Object{
				Name:        o.Name,
				DisplayName: display,
				Type:        o.Type,
				Doc:         o.Doc,
				Anchor:      o.Anchor,
				Priority:    o.Priority,
			})
			if o.Synopsis != "" {
				d.synopses[o.Type+"\x00"+o.Name] = o.Synopsis
			}
		}
		domains = append(domains, d)
	}
	return domains, nil
}
