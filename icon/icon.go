// Package icon provides the glyph registry used by the renderer and by CLI feedback.
//
// Glyphs can be rendered as emoji (the default) or as plain ASCII labels for
// terminals and consumers that cannot display emoji.
package icon

import (
	"github.com/spf13/viper"
	"github.com/streamfmt/streamfmt/key"
)

// Visual Variant Constants - these define the supported glyph styles.
const (
	emoji = "emoji"
	plain = "plain"
)

// AvailableVariants returns a slice of all registered glyph style identifiers.
func AvailableVariants() []string {
	return []string{emoji, plain}
}

// IsVariant reports whether name is a registered glyph style.
func IsVariant(name string) bool {
	return name == emoji || name == plain
}

// Icon identifies a single glyph in the registry.
type Icon int

const (
	Cached Icon = iota
	Uncached
	CacheUnknown
	Cut
	Quality
	Encode
	Visual
	Audio
	Size
	Duration
	Seeders
	Age
	Languages
	Message

	Success
	Fail
	Progress
)

// iconDef holds the representations of one glyph across all variants.
type iconDef struct {
	emoji string
	plain string
}

func (d iconDef) get(variant string) string {
	switch variant {
	case emoji:
		return d.emoji
	case plain:
		return d.plain
	default:
		return ""
	}
}

var icons = map[Icon]iconDef{
	Cached:       {emoji: "⚡", plain: "+"},
	Uncached:     {emoji: "⏳", plain: "-"},
	CacheUnknown: {emoji: "❓", plain: "?"},
	Cut:          {emoji: "❗", plain: "!"},
	Quality:      {emoji: "🎥", plain: "Q:"},
	Encode:       {emoji: "🎞️", plain: "E:"},
	Visual:       {emoji: "📺", plain: "V:"},
	Audio:        {emoji: "🎧", plain: "A:"},
	Size:         {emoji: "📦", plain: "S:"},
	Duration:     {emoji: "⏱️", plain: "T:"},
	Seeders:      {emoji: "👥", plain: "P:"},
	Age:          {emoji: "📅", plain: "D:"},
	Languages:    {emoji: "🔊", plain: "L:"},
	Message:      {emoji: "📢", plain: "M:"},

	Success:  {emoji: "✅", plain: "ok"},
	Fail:     {emoji: "❌", plain: "error"},
	Progress: {emoji: "⏳", plain: "..."},
}

// Get returns the glyph for i in the globally configured variant.
// An unknown variant yields an empty string.
func Get(i Icon) string {
	return icons[i].get(viper.GetString(key.IconsVariant))
}

// Set is an immutable snapshot of one variant, independent of global configuration.
type Set struct {
	variant string
}

// SetOf returns the glyph set for variant, falling back to emoji for unknown names.
func SetOf(variant string) Set {
	if !IsVariant(variant) {
		variant = emoji
	}
	return Set{variant: variant}
}

// Emoji returns the default glyph set.
func Emoji() Set {
	return Set{variant: emoji}
}

// Variant returns the name of the variant backing s.
func (s Set) Variant() string {
	if s.variant == "" {
		return emoji
	}
	return s.variant
}

// Get returns the glyph for i.
func (s Set) Get(i Icon) string {
	return icons[i].get(s.Variant())
}
