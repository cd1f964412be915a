package rulebook

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
	apperr "github.com/KirkDiggler/enhancement-calculator/internal/errors"
)

// ValidateCatalog checks the semantic constraints of a parsed catalog and
// reports every violation at once.
func ValidateCatalog(cat *RawCatalog) error {
	var errs []string

	if cat == nil || len(cat.Variants) == 0 {
		return apperr.InvalidArgument("catalog defines no variants")
	}

	defined := make(map[string]RawVariant, len(cat.Variants))
	for _, v := range cat.Variants {
		if v.Name == "" {
			errs = append(errs, "variant name must not be empty")
			continue
		}
		if _, dup := defined[v.Name]; dup {
			errs = append(errs, fmt.Sprintf("variant %s is defined twice", v.Name))
			continue
		}
		defined[v.Name] = v
	}

	for _, v := range cat.Variants {
		if v.Name == "" {
			continue
		}

		if _, ok := StrategyByName(v.Strategy); !ok {
			errs = append(errs, fmt.Sprintf("%s.strategy %q is not one of: %s", v.Name, v.Strategy, strings.Join(strategyNames(), ", ")))
		}

		if v.EffectsFrom != "" {
			src, ok := defined[v.EffectsFrom]
			switch {
			case !ok:
				errs = append(errs, fmt.Sprintf("%s.effects_from refers to unknown variant %s", v.Name, v.EffectsFrom))
			case v.EffectsFrom == v.Name:
				errs = append(errs, fmt.Sprintf("%s.effects_from must not refer to itself", v.Name))
			case src.EffectsFrom != "":
				errs = append(errs, fmt.Sprintf("%s.effects_from must refer to a variant with its own effects", v.Name))
			}
			if len(v.PlayerPlusOne)+len(v.SummonPlusOne)+len(v.OtherEffects) > 0 {
				errs = append(errs, fmt.Sprintf("%s declares effects_from and its own effects", v.Name))
			}
			continue
		}

		errs = append(errs, validateEffects(v.Name+".player_plus_one", v.PlayerPlusOne)...)
		errs = append(errs, validateEffects(v.Name+".summon_plus_one", v.SummonPlusOne)...)
		errs = append(errs, validateEffects(v.Name+".other_effects", v.OtherEffects)...)
	}

	if len(errs) > 0 {
		return apperr.InvalidArgumentf("invalid catalog: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateEffects(path string, effects []RawEffect) []string {
	var errs []string

	if len(effects) == 0 {
		return []string{path + " must not be empty"}
	}

	seen := make(map[enhancement.EffectID]bool, len(effects))
	for _, e := range effects {
		if e.ID == enhancement.EffectNone {
			errs = append(errs, path+" has an effect with an empty id")
			continue
		}
		if seen[e.ID] {
			errs = append(errs, fmt.Sprintf("%s.%s is defined twice", path, e.ID))
		}
		seen[e.ID] = true
		if e.Cost <= 0 {
			errs = append(errs, fmt.Sprintf("%s.%s.cost must be > 0", path, e.ID))
		}
	}

	return errs
}

func strategyNames() []string {
	return []string{
		string(VariantFrosthaven),
		string(VariantFrosthavenNonPermanent),
		string(VariantGloomhavenDigital),
	}
}
