// internal/config/config.go
//
// This package handles the paranoia.yml game configuration. Every game
// directory carries one: a list of field declarations the engine
// consumes, plus a presentation block that only the card renderer
// interprets.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/paranoia/internal/organize"
)

// ConfigFileName is the configuration file expected in the game root.
const ConfigFileName = "paranoia.yml"

// FieldConfig declares one field inside paranoia.yml.
type FieldConfig struct {
	Name      string `yaml:"name"`
	IsPlayer  bool   `yaml:"is_player"`
	CanRepeat bool   `yaml:"can_repeat"`
	CanSkip   bool   `yaml:"can_skip"`
}

// Presentation holds the card layout knobs. The organization engine
// never reads these; they pass straight through to the renderer.
type Presentation struct {
	CoverFontName    string  `yaml:"cover_font_name"`
	CoverFontStyle   string  `yaml:"cover_font_style"`
	CoverFontSize    float64 `yaml:"cover_font_size"`
	CoverLineSpacing float64 `yaml:"cover_line_spacing"`

	FieldFontName    string  `yaml:"field_font_name"`
	FieldFontStyle   string  `yaml:"field_font_style"`
	FieldFontSize    float64 `yaml:"field_font_size"`
	FieldLineSpacing float64 `yaml:"field_line_spacing"`

	ValueFontName    string  `yaml:"value_font_name"`
	ValueFontStyle   string  `yaml:"value_font_style"`
	ValueFontSize    float64 `yaml:"value_font_size"`
	ValueLineSpacing float64 `yaml:"value_line_spacing"`

	IDFontName    string  `yaml:"id_font_name"`
	IDFontStyle   string  `yaml:"id_font_style"`
	IDFontSize    float64 `yaml:"id_font_size"`
	IDLineSpacing float64 `yaml:"id_line_spacing"`
	IDPrefix      string  `yaml:"id_prefix"`

	PrintMargin    float64 `yaml:"print_margin"`
	PrintFoldLines bool    `yaml:"print_fold_lines"`
}

// GameConfig models paranoia.yml.
type GameConfig struct {
	Fields []FieldConfig `yaml:"fields"`
	Config Presentation  `yaml:"config"`
}

// DefaultPresentation returns the presentation block with every knob at
// its default value.
func DefaultPresentation() Presentation {
	var p Presentation
	p.applyDefaults()
	return p
}

// Path returns the configuration file location for a game root.
func Path(rootDir string) string {
	return filepath.Join(rootDir, ConfigFileName)
}

// Load reads and parses paranoia.yml from the game root. A missing file
// is an error: without field declarations there is nothing to organize.
func Load(rootDir string) (*GameConfig, error) {
	path := Path(rootDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: main configuration file not found: %s", path)
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed GameConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &parsed, nil
}

// FieldSpecs converts the declared fields into engine field specs,
// preserving declaration order.
func (gc *GameConfig) FieldSpecs() []organize.FieldSpec {
	specs := make([]organize.FieldSpec, len(gc.Fields))
	for i, field := range gc.Fields {
		specs[i] = organize.FieldSpec{
			Name:      field.Name,
			IsPlayer:  field.IsPlayer,
			CanRepeat: field.CanRepeat,
			CanSkip:   field.CanSkip,
		}
	}
	return specs
}

func (gc *GameConfig) applyDefaults() {
	gc.Config.applyDefaults()
}

func (gc *GameConfig) normalize() {
	for i := range gc.Fields {
		gc.Fields[i].Name = strings.TrimSpace(gc.Fields[i].Name)
	}
}

func (gc *GameConfig) validate() error {
	if len(gc.Fields) == 0 {
		return fmt.Errorf("at least one field must be declared")
	}
	for i, field := range gc.Fields {
		if field.Name == "" {
			return fmt.Errorf("fields[%d]: name is required", i)
		}
	}
	return nil
}

func (p *Presentation) applyDefaults() {
	defaultFont(&p.CoverFontName, &p.CoverFontStyle, &p.CoverFontSize, &p.CoverLineSpacing, "B", 20)
	defaultFont(&p.FieldFontName, &p.FieldFontStyle, &p.FieldFontSize, &p.FieldLineSpacing, "", 10)
	defaultFont(&p.ValueFontName, &p.ValueFontStyle, &p.ValueFontSize, &p.ValueLineSpacing, "B", 12)
	defaultFont(&p.IDFontName, &p.IDFontStyle, &p.IDFontSize, &p.IDLineSpacing, "B", 8)
	if p.IDPrefix == "" {
		p.IDPrefix = "Serial Number: "
	}
	if p.PrintMargin == 0 {
		p.PrintMargin = 20
	}
}

func defaultFont(name, style *string, size, spacing *float64, defaultStyle string, defaultSize float64) {
	if *name == "" {
		*name = "Arial"
	}
	if *style == "" {
		*style = defaultStyle
	}
	if *size == 0 {
		*size = defaultSize
	}
	if *spacing == 0 {
		*spacing = 1.1
	}
}
