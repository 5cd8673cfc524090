// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 10

// Rendering - these keys control how stream candidates are turned into name/description pairs.
const (
	RenderMinimalistic = "render.minimalistic"
	RenderFormat       = "render.format"
	RenderWrap         = "render.wrap"
)

// Iconography - these keys manage the glyph set used by the renderer and CLI feedback.
const (
	IconsVariant = "icons.variant"
)

// Provider Directory - these keys locate user-defined provider short names.
const (
	ProvidersFile = "providers.file"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// Terminal User Interface - these keys customize the interactive preview.
const (
	TUIItemSpacing = "tui.item_spacing"
)

// CLI Execution Environment - these settings govern terminal output.
const (
	CliColored = "cli.colored"
)
