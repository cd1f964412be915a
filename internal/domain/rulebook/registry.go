package rulebook

import (
	"bytes"
	"io"

	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
	apperr "github.com/KirkDiggler/enhancement-calculator/internal/errors"
)

// RuleTable is the complete pricing data of one variant
type RuleTable struct {
	Variant       Variant
	Title         string
	PlayerPlusOne enhancement.EffectTable
	SummonPlusOne enhancement.EffectTable
	OtherEffects  enhancement.EffectTable
	Strategy      Strategy
}

// EffectsFor returns the effect table a category picks from. AttackHex and
// the unset category have no table.
func (t *RuleTable) EffectsFor(category enhancement.Category) (enhancement.EffectTable, bool) {
	switch category {
	case enhancement.CategoryPlayerPlusOne:
		return t.PlayerPlusOne, true
	case enhancement.CategorySummonPlusOne:
		return t.SummonPlusOne, true
	case enhancement.CategoryOtherEffect:
		return t.OtherEffects, true
	}
	return enhancement.EffectTable{}, false
}

// Registry holds the rule tables of every known variant. It is built once and
// never modified.
type Registry struct {
	order  []Variant
	tables map[Variant]*RuleTable
}

// Default builds a registry from the embedded catalog
func Default() (*Registry, error) {
	return Load(bytes.NewReader(embeddedCatalog))
}

// MustDefault is Default for package initialisation and tests
func MustDefault() *Registry {
	r, err := Default()
	if err != nil {
		panic(err)
	}
	return r
}

// Load parses, validates and builds a catalog
func Load(r io.Reader) (*Registry, error) {
	cat, err := ParseCatalog(r)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "failed to parse rules catalog")
	}
	if err := ValidateCatalog(cat); err != nil {
		return nil, err
	}
	return NewRegistry(cat), nil
}

// NewRegistry builds rule tables from an already validated catalog. Every
// variant gets its own effect tables, also when it borrows effects from another.
func NewRegistry(cat *RawCatalog) *Registry {
	reg := &Registry{
		tables: make(map[Variant]*RuleTable, len(cat.Variants)),
	}

	byName := make(map[string]RawVariant, len(cat.Variants))
	for _, v := range cat.Variants {
		byName[v.Name] = v
	}

	for _, v := range cat.Variants {
		source := v
		if v.EffectsFrom != "" {
			source = byName[v.EffectsFrom]
		}

		strategy, _ := StrategyByName(v.Strategy)
		title := v.Title
		if title == "" {
			title = v.Name
		}

		variant := Variant(v.Name)
		reg.order = append(reg.order, variant)
		reg.tables[variant] = &RuleTable{
			Variant:       variant,
			Title:         title,
			PlayerPlusOne: BuildEffectTable(source.PlayerPlusOne),
			SummonPlusOne: BuildEffectTable(source.SummonPlusOne),
			OtherEffects:  BuildEffectTable(source.OtherEffects),
			Strategy:      strategy,
		}
	}

	return reg
}

// Get returns the rule table of a variant
func (r *Registry) Get(variant Variant) (*RuleTable, error) {
	table, ok := r.tables[variant]
	if !ok {
		return nil, apperr.NotFoundf("pricing variant %q not found", variant).
			WithMeta("variant", string(variant))
	}
	return table, nil
}

// Has reports whether the variant is known
func (r *Registry) Has(variant Variant) bool {
	_, ok := r.tables[variant]
	return ok
}

// Variants lists the known variants in catalog order
func (r *Registry) Variants() []Variant {
	out := make([]Variant, len(r.order))
	copy(out, r.order)
	return out
}

// Tables lists the rule tables in catalog order
func (r *Registry) Tables() []*RuleTable {
	out := make([]*RuleTable, 0, len(r.order))
	for _, v := range r.order {
		out = append(out, r.tables[v])
	}
	return out
}
