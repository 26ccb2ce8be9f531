package assets

import (
	"embed"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/tenzies/internal/dice"
	"gopkg.in/yaml.v3"
)

//go:embed themes/*.yaml
var builtinThemes embed.FS

// DefaultThemeName is the theme used when none is configured
const DefaultThemeName = "unicode"

// ErrFaceNotFound is returned when a theme has no art for a face
var ErrFaceNotFound = errors.New("face not found")

// FaceSource maps a die value to something the presentation can draw
type FaceSource interface {
	Face(value int) (string, error)
}

// themeFile models a face theme on disk
type themeFile struct {
	Name  string         `yaml:"name"`
	Faces map[int]string `yaml:"faces"`
}

// Theme is a set of face art loaded from YAML
type Theme struct {
	name  string
	faces map[int]string
}

// Name returns the theme name
func (t *Theme) Name() string {
	return t.name
}

// Face returns the art for a die value
func (t *Theme) Face(value int) (string, error) {
	face, ok := t.faces[value]
	if !ok {
		return "", fmt.Errorf("theme %s face %d: %w", t.name, value, ErrFaceNotFound)
	}
	return face, nil
}

// Builtin loads one of the embedded themes by name
func Builtin(name string) (*Theme, error) {
	data, err := builtinThemes.ReadFile("themes/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown builtin theme %q", name)
	}
	return parse(name, data)
}

// Load reads a theme from a YAML file. Faces outside 1..6 are dropped and
// logged; faces absent from the file stay missing.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return parse(name, data)
}

// Resolve returns the builtin theme called ref, or loads ref as a file path.
// Any failure is logged and the default theme is returned instead, so a bad
// theme never stops the game.
func Resolve(ref string) *Theme {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		ref = DefaultThemeName
	}

	theme, err := Builtin(ref)
	if err == nil {
		return theme
	}

	theme, err = Load(ref)
	if err != nil {
		log.Printf("Error loading dice faces from %s, using %s: %v", ref, DefaultThemeName, err)
		theme, _ = Builtin(DefaultThemeName)
		return theme
	}

	for value := 1; value <= dice.Sides; value++ {
		if _, err := theme.Face(value); err != nil {
			log.Printf("Error loading image for dice %d: %v", value, err)
		}
	}
	return theme
}

func parse(name string, data []byte) (*Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	if file.Name != "" {
		name = file.Name
	}

	theme := &Theme{
		name:  name,
		faces: make(map[int]string, dice.Sides),
	}
	for value, face := range file.Faces {
		if value < 1 || value > dice.Sides {
			log.Printf("Theme %s: ignoring face %d", name, value)
			continue
		}
		theme.faces[value] = face
	}
	return theme, nil
}
