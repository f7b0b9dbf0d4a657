package gamepad

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed mappings.yaml
var defaultMappingsYAML []byte

// IdentityName names the fallback mapping.
const IdentityName = "standard"

// Mapping translates standard control indexes to raw hardware readings for
// one (platform, controller type) combination. An empty filter field
// matches anything.
type Mapping struct {
	Name     string
	Platform string
	Type     ControllerType
	Buttons  []Source // indexed by Button
	Axes     []Source // indexed by Axis
}

// Matches reports whether every filter of the mapping accepts the environment.
func (m Mapping) Matches(platform string, t ControllerType) bool {
	if m.Platform != "" && m.Platform != platform {
		return false
	}
	if m.Type != "" && m.Type != t {
		return false
	}
	return true
}

// Button returns the source of a standard button. Buttons past the end of
// the mapping are absent.
func (m Mapping) Button(b Button) Source {
	if int(b) < len(m.Buttons) {
		return m.Buttons[b]
	}
	return Absent()
}

// Axis returns the source of a standard axis.
func (m Mapping) Axis(a Axis) Source {
	if int(a) < len(m.Axes) {
		return m.Axes[a]
	}
	return Absent()
}

// IdentityMapping maps every standard index to the same raw index.
func IdentityMapping() Mapping {
	m := Mapping{
		Name:    IdentityName,
		Buttons: make([]Source, NumButtons),
		Axes:    make([]Source, NumAxes),
	}
	for i := range m.Buttons {
		m.Buttons[i] = DirectButton(i)
	}
	for i := range m.Axes {
		m.Axes[i] = DirectAxis(i)
	}
	return m
}

// UnmarshalYAML decodes a mapping entry. Each source is an integer raw index
// (-1 when absent) or a [axis, zero, one] ranged-axis triple.
func (m *Mapping) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Name     string         `yaml:"name"`
		Platform string         `yaml:"platform"`
		Type     ControllerType `yaml:"type"`
		Buttons  []yaml.Node    `yaml:"buttons"`
		Axes     []yaml.Node    `yaml:"axes"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if len(raw.Buttons) > NumButtons || len(raw.Axes) > NumAxes {
		return fmt.Errorf("mapping %q: at most %d buttons and %d axes", raw.Name, NumButtons, NumAxes)
	}

	buttons, err := decodeSources(raw.Buttons, SourceButton)
	if err != nil {
		return fmt.Errorf("mapping %q buttons: %w", raw.Name, err)
	}
	axes, err := decodeSources(raw.Axes, SourceAxis)
	if err != nil {
		return fmt.Errorf("mapping %q axes: %w", raw.Name, err)
	}

	*m = Mapping{
		Name:     raw.Name,
		Platform: raw.Platform,
		Type:     raw.Type,
		Buttons:  buttons,
		Axes:     axes,
	}
	return nil
}

func decodeSources(nodes []yaml.Node, direct SourceKind) ([]Source, error) {
	out := make([]Source, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		switch n.Kind {
		case yaml.ScalarNode:
			var idx int
			if err := n.Decode(&idx); err != nil {
				return nil, fmt.Errorf("line %d: %w", n.Line, err)
			}
			if idx < 0 {
				out[i] = Absent()
				continue
			}
			out[i] = Source{Kind: direct, Index: idx}
		case yaml.SequenceNode:
			var v []float64
			if err := n.Decode(&v); err != nil {
				return nil, fmt.Errorf("line %d: %w", n.Line, err)
			}
			if len(v) != 3 {
				return nil, fmt.Errorf("line %d: ranged axis needs [axis, zero, one], got %d values", n.Line, len(v))
			}
			out[i] = RangedAxis(int(v[0]), v[1], v[2])
		default:
			return nil, fmt.Errorf("line %d: invalid control source", n.Line)
		}
	}
	return out, nil
}

// Table is an ordered list of mappings, most specific first.
type Table []Mapping

// ParseTable decodes a YAML mapping table.
func ParseTable(data []byte) (Table, error) {
	var doc struct {
		Mappings Table `yaml:"mappings"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("gamepad: parse mappings: %w", err)
	}
	return doc.Mappings, nil
}

// LoadTable reads a YAML mapping table from a file.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gamepad: read mappings %s: %w", path, err)
	}
	return ParseTable(data)
}

// DefaultTable returns the built-in mapping table.
func DefaultTable() Table {
	t, err := ParseTable(defaultMappingsYAML)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the first mapping that matches the environment, or the
// identity mapping.
func (t Table) Resolve(platform string, ct ControllerType) Mapping {
	for _, m := range t {
		if m.Matches(platform, ct) {
			return m
		}
	}
	return IdentityMapping()
}
