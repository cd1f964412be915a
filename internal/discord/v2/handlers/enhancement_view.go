package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/enhancement-calculator/internal/discord/v2/builders"
	"github.com/KirkDiggler/enhancement-calculator/internal/discord/v2/core"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/rulebook"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/rulebook/calculators"
	"github.com/KirkDiggler/enhancement-calculator/internal/services/calculator"
)

var variantTitles = map[string]string{
	"frosthaven":               "Frosthaven",
	"frosthaven_non_permanent": "Frosthaven (non-permanent)",
	"gloomhaven_digital":       "Gloomhaven Digital",
}

// RenderCalculator draws the price embed and at most five rows of controls:
// category, effect or hex count, card level, prior enhancements and the toggles
func RenderCalculator(ids *core.CustomIDBuilder, result *calculator.Result) *core.Response {
	return &core.Response{
		Embeds:     []*discordgo.MessageEmbed{renderEmbed(result)},
		Components: renderControls(ids, result),
	}
}

func renderEmbed(result *calculator.Result) *discordgo.MessageEmbed {
	quote := result.Quote
	sel := quote.Selection

	price := "-"
	color := builders.ColorInfo
	if quote.Complete {
		price = fmt.Sprintf("**%dg**", quote.Price)
		color = builders.ColorSuccess
	}

	title := variantTitles[quote.Variant]
	if title == "" {
		title = quote.Variant
	}

	embed := builders.NewEmbed().
		Title("Enhancement Cost: " + title).
		Description(price).
		Color(color).
		Field("Category", sel.Category.Title(), true).
		Field("Effect", selectedEffectTitle(result.Options), true)

	if sel.Category == enhancement.CategoryAttackHex {
		embed.Field("Hexes", strconv.Itoa(sel.TargetedHexCount), true)
	}
	if quote.Visibility.ShowDownstream {
		embed.Field("Card Level", strconv.Itoa(sel.CardLevel), true).
			Field("Prior Enhancements", strconv.Itoa(sel.PriorEnhancements), true)
	}
	if len(result.Options.EnhancerLevels) > 0 {
		embed.Field("Enhancer Level", strconv.Itoa(sel.EnhancerLevel), true)
	}
	embed.Field("Modifiers", modifiers(quote), false)

	if sel.Category == enhancement.CategoryNone {
		embed.Field("Dots", dotHelp(), false).
			Field("Not on the chart", substitutionHelp(result.Options.Substitutions), false)
	}

	if quote.Complete {
		b := quote.Breakdown
		embed.Footer(fmt.Sprintf("base %s, modified %s, level +%d, prior +%d, adjustment %+d",
			formatCost(b.BaseCost), formatCost(b.ModifiedBaseCost), b.CardLevelSurcharge, b.PriorSurcharge, b.Adjustment))
	}

	return embed.Build()
}

func renderControls(ids *core.CustomIDBuilder, result *calculator.Result) []discordgo.MessageComponent {
	sessionID := result.Session.ID
	sel := result.Quote.Selection
	vis := result.Quote.Visibility
	opts := result.Options

	b := builders.NewComponentBuilder(ids, sessionID)

	categories := make([]builders.SelectOption, 0, len(opts.Categories))
	for _, c := range opts.Categories {
		categories = append(categories, builders.SelectOption{
			Label:   c.Title,
			Value:   string(c.Category),
			Default: c.Selected,
		})
	}
	b.SelectMenu("Choose an enhancement type", ActionCategory, categories)

	if action := effectAction(sel.Category); action != "" {
		effects := make([]builders.SelectOption, 0, len(opts.Effects))
		for _, e := range opts.Effects {
			effects = append(effects, builders.SelectOption{
				Label:   fmt.Sprintf("%s (%dg)", e.Title, e.Cost),
				Value:   string(e.ID),
				Default: e.Selected,
			})
		}
		b.SelectMenu("Choose an effect", action, effects)
	}
	if vis.ShowHexCount {
		b.SelectMenu("Number of hexes", ActionHexes, numberOptions(opts.HexCounts, "%d hexes (%dg)"))
	}
	if vis.ShowDownstream {
		b.SelectMenu("Card level", ActionLevel, numberOptions(opts.CardLevels, "Level %d (+%dg)"))
		b.SelectMenu("Prior enhancements", ActionPrior, numberOptions(opts.PriorEnhancements, "%d prior (+%dg)"))
	}

	if vis.ShowMultipleTargets {
		b.ToggleButton("Multiple Targets", sel.HasMultipleTargets, ActionMultiple)
	}
	if vis.ShowLostCard {
		b.ToggleButton("Lost Card", sel.IsLostCard, ActionLostCard)
	}
	if vis.ShowPersistentBonus {
		b.ToggleButton("Persistent", sel.HasPersistentBonus, ActionPersistent)
	}
	if len(opts.EnhancerLevels) > 0 {
		next := sel.EnhancerLevel%enhancement.MaxEnhancerLevel + 1
		b.ArgButton(fmt.Sprintf("Enhancer Lv %d", sel.EnhancerLevel), discordgo.PrimaryButton, ActionEnhancer, strconv.Itoa(next))
	}
	b.Button("Reset", discordgo.DangerButton, ActionReset)

	return b.Build()
}

func effectAction(category enhancement.Category) string {
	switch category {
	case enhancement.CategoryPlayerPlusOne:
		return ActionPlayer
	case enhancement.CategorySummonPlusOne:
		return ActionSummon
	case enhancement.CategoryOtherEffect:
		return ActionOther
	}
	return ""
}

func numberOptions(values []calculators.NumberOption, format string) []builders.SelectOption {
	out := make([]builders.SelectOption, 0, len(values))
	for _, v := range values {
		out = append(out, builders.SelectOption{
			Label:   fmt.Sprintf(format, v.Value, v.Cost),
			Value:   strconv.Itoa(v.Value),
			Default: v.Selected,
		})
	}
	return out
}

func selectedEffectTitle(opts *calculators.OptionSet) string {
	for _, e := range opts.Effects {
		if e.Selected {
			return e.Title
		}
	}
	return ""
}

func modifiers(quote *enhancement.Quote) string {
	sel := quote.Selection
	vis := quote.Visibility

	var out []string
	if vis.ShowMultipleTargets && sel.HasMultipleTargets {
		out = append(out, "Multiple targets x2")
	}
	if vis.ShowLostCard && sel.IsLostCard {
		out = append(out, "Lost card /2")
	}
	if vis.ShowPersistentBonus && sel.HasPersistentBonus {
		out = append(out, "Persistent x3")
	}
	return strings.Join(out, "\n")
}

func dotHelp() string {
	lines := make([]string, 0, 4)
	for _, d := range rulebook.DotRules() {
		lines = append(lines, fmt.Sprintf("**%s**: %s", d.Title, d.Accepts))
	}
	return strings.Join(lines, "\n")
}

func substitutionHelp(subs []rulebook.Substitution) string {
	lines := make([]string, 0, len(subs))
	for _, s := range subs {
		lines = append(lines, fmt.Sprintf("%s: as %s +1 (%dg)", s.Subject, s.Title, s.Cost))
	}
	return strings.Join(lines, "\n")
}

func formatCost(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
