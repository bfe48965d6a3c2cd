package prefabs

import (
	"errors"
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `c: "#3c78d8"`, color.NRGBA{R: 0x3c, G: 0x78, B: 0xd8, A: 0xff}, false},
		{"rgba_no_hash", `c: "ff000080"`, color.NRGBA{R: 0xff, A: 0x80}, false},
		{"short", `c: "#fff"`, color.NRGBA{}, true},
		{"not_hex", `c: "#zz0000"`, color.NRGBA{}, true},
		{"not_scalar", "c: [1, 2]", color.NRGBA{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var v struct {
				C *YAMLColor `yaml:"c"`
			}
			err := yaml.Unmarshal([]byte(c.in), &v)
			if (err != nil) != c.wantErr {
				t.Fatalf("expected error=%v, got %v", c.wantErr, err)
			}
			if c.wantErr {
				return
			}
			if got := v.C.NRGBA(color.NRGBA{}); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestYAMLColorFallback(t *testing.T) {
	fallback := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	var c *YAMLColor
	if got := c.NRGBA(fallback); got != fallback {
		t.Fatalf("nil color should use fallback, got %v", got)
	}
	if got := (&YAMLColor{}).NRGBA(fallback); got != fallback {
		t.Fatalf("empty color should use fallback, got %v", got)
	}
}

func TestPickupsLookup(t *testing.T) {
	spec := &PickupsSpec{Pickups: map[string]PickupSpec{
		"b": {Heal: 5},
		"a": {Damage: 3},
	}}

	if p, err := spec.Lookup("b"); err != nil || p.Heal != 5 {
		t.Fatalf("unexpected lookup result %+v, %v", p, err)
	}
	if _, err := spec.Lookup("missing"); !errors.Is(err, ErrUnknownPickup) {
		t.Fatalf("expected ErrUnknownPickup, got %v", err)
	}
	var empty *PickupsSpec
	if _, err := empty.Lookup("a"); !errors.Is(err, ErrUnknownPickup) {
		t.Fatalf("expected ErrUnknownPickup from nil spec, got %v", err)
	}
	if kinds := spec.Kinds(); len(kinds) != 2 || kinds[0] != "a" || kinds[1] != "b" {
		t.Fatalf("expected sorted kinds, got %v", kinds)
	}
}

func TestLoadSetFromEmbedded(t *testing.T) {
	set, err := LoadSet()
	if err != nil {
		t.Fatalf("LoadSet: %v", err)
	}
	if set.Player.MaxHealth != 100 || set.Player.Speed != 5 || set.Player.JumpForce != 12 {
		t.Fatalf("unexpected player spec %+v", set.Player)
	}
	if set.Enemy.Damage != 10 || set.Enemy.ForceX != 5 || set.Enemy.ForceY != 2 || set.Enemy.Duration != 3 {
		t.Fatalf("unexpected enemy spec %+v", set.Enemy)
	}
	health, err := set.Pickups.Lookup("health")
	if err != nil || health.Heal != 5 {
		t.Fatalf("unexpected health pickup %+v, %v", health, err)
	}
	herb, err := set.Pickups.Lookup("mending_herb")
	if err != nil {
		t.Fatalf("lookup mending_herb: %v", err)
	}
	if set.Scripts[herb.Script] == "" {
		t.Fatalf("script %q was not loaded", herb.Script)
	}
}

func TestCleanPaths(t *testing.T) {
	scripts := []struct{ in, want string }{
		{"", ""},
		{"herb.tengo", "scripts/herb.tengo"},
		{"scripts/herb.tengo", "scripts/herb.tengo"},
		{"prefabs/scripts/herb.tengo", "scripts/herb.tengo"},
		{"prefabs/herb.tengo", "scripts/herb.tengo"},
	}
	for _, c := range scripts {
		if got := cleanScriptPath(c.in); got != c.want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	prefabs := []struct{ in, want string }{
		{"", ""},
		{"player.yaml", "player.yaml"},
		{"prefabs/player.yaml", "player.yaml"},
	}
	for _, c := range prefabs {
		if got := cleanPrefabPath(c.in); got != c.want {
			t.Fatalf("cleanPrefabPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
