package pdf

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var rawStyles []byte

// Style is the printable-document styling, loaded from styles.yaml.
type Style struct {
	Page struct {
		Format       string  `yaml:"format"` // a4 or letter
		MarginTop    float64 `yaml:"margin_top"`
		MarginBottom float64 `yaml:"margin_bottom"`
		MarginLeft   float64 `yaml:"margin_left"`
		MarginRight  float64 `yaml:"margin_right"`
	} `yaml:"page"`
	Font struct {
		Family       string `yaml:"family"`
		Size         string `yaml:"size"`
		HeadingColor string `yaml:"heading_color"`
		TextColor    string `yaml:"text_color"`
	} `yaml:"font"`
	Table struct {
		BorderColor      string `yaml:"border_color"`
		HeaderBackground string `yaml:"header_background"`
	} `yaml:"table"`
}

// paper sizes in inches
var paperSizes = map[string][2]float64{
	"a4":     {8.27, 11.69},
	"letter": {8.5, 11.0},
}

func loadStyle() (Style, error) {
	var s Style
	if err := yaml.Unmarshal(rawStyles, &s); err != nil {
		return s, fmt.Errorf("parse styles.yaml: %w", err)
	}
	if _, ok := paperSizes[s.Page.Format]; !ok {
		return s, fmt.Errorf("styles.yaml: unknown page format %q", s.Page.Format)
	}
	return s, nil
}

func (s Style) paperSize() (width, height float64) {
	size := paperSizes[s.Page.Format]
	return size[0], size[1]
}
