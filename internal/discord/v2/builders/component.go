package builders

import (
	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/enhancement-calculator/internal/discord/v2/core"
)

const (
	// MaxRows is Discord's limit of action rows per message
	MaxRows = 5

	// MaxButtonsPerRow is Discord's limit of buttons in one action row
	MaxButtonsPerRow = 5

	// MaxSelectOptions is Discord's limit of options in one select menu
	MaxSelectOptions = 25
)

// ComponentBuilder builds Discord message components for one target
type ComponentBuilder struct {
	rows       []discordgo.MessageComponent
	currentRow []discordgo.MessageComponent
	ids        *core.CustomIDBuilder
	target     string
}

// NewComponentBuilder creates a builder whose custom IDs all point at target
func NewComponentBuilder(ids *core.CustomIDBuilder, target string) *ComponentBuilder {
	return &ComponentBuilder{
		ids:        ids,
		target:     target,
		currentRow: make([]discordgo.MessageComponent, 0, MaxButtonsPerRow),
	}
}

// Button adds a button to the current row
func (b *ComponentBuilder) Button(label string, style discordgo.ButtonStyle, action string) *ComponentBuilder {
	b.addButton(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: b.ids.Build(action, b.target),
	})
	return b
}

// ArgButton adds a button whose custom ID carries an extra argument
func (b *ComponentBuilder) ArgButton(label string, style discordgo.ButtonStyle, action, arg string) *ComponentBuilder {
	b.addButton(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: b.ids.Build(action, b.target, arg),
	})
	return b
}

// ToggleButton adds a button that is green while on and grey while off
func (b *ComponentBuilder) ToggleButton(label string, on bool, action string) *ComponentBuilder {
	style := discordgo.SecondaryButton
	if on {
		style = discordgo.SuccessButton
	}
	return b.Button(label, style, action)
}

// SelectMenu adds a single-choice select menu on its own row
func (b *ComponentBuilder) SelectMenu(placeholder, action string, options []SelectOption) *ComponentBuilder {
	if len(options) == 0 {
		return b
	}
	if len(options) > MaxSelectOptions {
		options = options[:MaxSelectOptions]
	}

	discordOptions := make([]discordgo.SelectMenuOption, len(options))
	for i, opt := range options {
		discordOptions[i] = discordgo.SelectMenuOption{
			Label:       opt.Label,
			Value:       opt.Value,
			Description: opt.Description,
			Default:     opt.Default,
		}
	}

	b.NewRow()
	b.rows = append(b.rows, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    b.ids.Build(action, b.target),
				Placeholder: placeholder,
				Options:     discordOptions,
			},
		},
	})
	return b
}

// NewRow starts a new action row
func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if len(b.currentRow) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{
			Components: b.currentRow,
		})
		b.currentRow = make([]discordgo.MessageComponent, 0, MaxButtonsPerRow)
	}
	return b
}

// Build returns the built rows, capped at MaxRows
func (b *ComponentBuilder) Build() []discordgo.MessageComponent {
	b.NewRow()
	if len(b.rows) > MaxRows {
		return b.rows[:MaxRows]
	}
	return b.rows
}

func (b *ComponentBuilder) addButton(button discordgo.Button) {
	if len(b.currentRow) >= MaxButtonsPerRow {
		b.NewRow()
	}
	b.currentRow = append(b.currentRow, button)
}

// SelectOption represents an option in a select menu
type SelectOption struct {
	Label       string
	Value       string
	Description string
	Default     bool
}
