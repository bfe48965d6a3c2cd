package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnknownPickup = errors.New("prefabs: unknown pickup")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name           string          `yaml:"name"`
	MaxHealth      float64         `yaml:"max_health"`
	Health         float64         `yaml:"health"`
	Speed          float64         `yaml:"speed"`
	JumpForce      float64         `yaml:"jump_force"`
	Particles      int             `yaml:"particles"`
	ParticleSprite int             `yaml:"particle_sprite"`
	Ground         GroundSpec      `yaml:"ground"`
	Body           BodySpec        `yaml:"body"`
	Color          *YAMLColor      `yaml:"color"`
	RenderLayer    RenderLayerSpec `yaml:"render_layer"`
}

type GroundSpec struct {
	Radius float64 `yaml:"radius"`
	Offset float64 `yaml:"offset"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	Name        string          `yaml:"name"`
	Damage      float64         `yaml:"damage"`
	ForceX      float64         `yaml:"force_x"`
	ForceY      float64         `yaml:"force_y"`
	Duration    float64         `yaml:"duration"`
	Particles   int             `yaml:"particles"`
	Body        BodySpec        `yaml:"body"`
	Color       *YAMLColor      `yaml:"color"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PickupSpec struct {
	Damage    float64    `yaml:"damage"`
	Heal      float64    `yaml:"heal"`
	Particles int        `yaml:"particles"`
	Sprite    int        `yaml:"sprite"`
	Script    string     `yaml:"script"`
	Size      float64    `yaml:"size"`
	Color     *YAMLColor `yaml:"color"`
}

type PickupsSpec struct {
	Pickups map[string]PickupSpec `yaml:"pickups"`
}

func LoadPickupsSpec() (*PickupsSpec, error) {
	spec, err := LoadSpec[PickupsSpec]("pickups.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Lookup returns the pickup of the given kind.
func (s *PickupsSpec) Lookup(kind string) (PickupSpec, error) {
	if s != nil {
		if p, ok := s.Pickups[kind]; ok {
			return p, nil
		}
	}
	return PickupSpec{}, fmt.Errorf("%w: %q", ErrUnknownPickup, kind)
}

// Kinds lists the known pickup kinds in sorted order.
func (s *PickupsSpec) Kinds() []string {
	if s == nil {
		return nil
	}
	kinds := make([]string, 0, len(s.Pickups))
	for k := range s.Pickups {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

type BodySpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
	Static   bool    `yaml:"static"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type YAMLColor struct {
	color.Color
}

// NRGBA returns the color, or fallback when none was set.
func (c *YAMLColor) NRGBA(fallback color.NRGBA) color.NRGBA {
	if c == nil || c.Color == nil {
		return fallback
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
