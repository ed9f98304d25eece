// Package icon renders status symbols in the variant chosen with icons.variant:
// emoji, nerd-font glyphs, plain words, kaomoji or colored squares.
package icon

import (
	"github.com/anisan-cli/streamkit/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

type iconDef struct {
	emoji, nerd, plain, kaomoji, squares string
}

// Get renders d in the configured variant. Unknown variants render nothing.
func (d *iconDef) Get() string {
	return map[string]string{
		emoji:   d.emoji,
		nerd:    d.nerd,
		plain:   d.plain,
		kaomoji: d.kaomoji,
		squares: d.squares,
	}[viper.GetString(key.IconsVariant)]
}

// Get renders i, or nothing when i is not registered.
func Get(i Icon) string {
	if def, ok := icons[i]; ok {
		return def.Get()
	}
	return ""
}
