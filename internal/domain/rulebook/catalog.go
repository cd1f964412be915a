package rulebook

import (
	_ "embed"
	"fmt"
	"io"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// RawCatalog is the parsed, not yet validated, catalog file
type RawCatalog struct {
	Variants []RawVariant
}

// RawVariant is one variant entry of the catalog
type RawVariant struct {
	Name          string
	Title         string
	Strategy      string
	EffectsFrom   string
	PlayerPlusOne []RawEffect
	SummonPlusOne []RawEffect
	OtherEffects  []RawEffect
}

// ParseCatalog reads a YAML catalog. Mapping order is kept for variants and effects.
func ParseCatalog(r io.Reader) (*RawCatalog, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return &RawCatalog{}, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return &RawCatalog{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("catalog root must be a mapping (line %d)", root.Line)
	}

	cat := &RawCatalog{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Value != "variants" {
			return nil, fmt.Errorf("unknown catalog key %q (line %d)", key.Value, key.Line)
		}
		if value.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("variants must be a mapping (line %d)", value.Line)
		}
		for j := 0; j+1 < len(value.Content); j += 2 {
			v, err := parseVariant(value.Content[j].Value, value.Content[j+1])
			if err != nil {
				return nil, err
			}
			cat.Variants = append(cat.Variants, v)
		}
	}

	return cat, nil
}

func parseVariant(name string, node *yaml.Node) (RawVariant, error) {
	v := RawVariant{Name: name}
	if node.Kind != yaml.MappingNode {
		return v, fmt.Errorf("variant %s must be a mapping (line %d)", name, node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var err error
		switch key.Value {
		case "title":
			err = value.Decode(&v.Title)
		case "strategy":
			err = value.Decode(&v.Strategy)
		case "effects_from":
			err = value.Decode(&v.EffectsFrom)
		case "player_plus_one":
			v.PlayerPlusOne, err = parseEffects(value)
		case "summon_plus_one":
			v.SummonPlusOne, err = parseEffects(value)
		case "other_effects":
			v.OtherEffects, err = parseEffects(value)
		default:
			err = fmt.Errorf("unknown key %q (line %d)", key.Value, key.Line)
		}
		if err != nil {
			return v, fmt.Errorf("variant %s: %s: %w", name, key.Value, err)
		}
	}

	return v, nil
}

func parseEffects(node *yaml.Node) ([]RawEffect, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("effects must be a mapping (line %d)", node.Line)
	}

	effects := make([]RawEffect, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var entry any
		if err := value.Decode(&entry); err != nil {
			return nil, fmt.Errorf("effect %s: %w", key.Value, err)
		}

		effect, err := decodeEffect(entry)
		if err != nil {
			return nil, fmt.Errorf("effect %s (line %d): %w", key.Value, value.Line, err)
		}
		effect.ID = enhancement.EffectID(key.Value)
		effects = append(effects, effect)
	}

	return effects, nil
}

func decodeEffect(entry any) (RawEffect, error) {
	var effect RawEffect
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  costOnlyHookFunc(),
		Result:      &effect,
		ErrorUnused: true,
	})
	if err != nil {
		return effect, err
	}
	if err := decoder.Decode(entry); err != nil {
		return effect, err
	}
	return effect, nil
}

// costOnlyHookFunc lets a bare number stand for {cost: number}
func costOnlyHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if to != reflect.Struct {
			return data, nil
		}
		switch from {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return map[string]interface{}{"cost": data}, nil
		case reflect.Float32, reflect.Float64:
			return nil, fmt.Errorf("cost must be a whole number, got %v", data)
		}
		return data, nil
	}
}
