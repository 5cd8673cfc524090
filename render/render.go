// Package render turns stream candidates into the compact name and description
// shown in media-selection lists.
//
// A Renderer is immutable after construction and safe for concurrent use. It never
// fails: missing optional fields omit their token or line, unknown provider ids and
// unmapped languages fall back to the raw value.
package render

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/streamfmt/streamfmt/edition"
	"github.com/streamfmt/streamfmt/icon"
	"github.com/streamfmt/streamfmt/language"
	"github.com/streamfmt/streamfmt/provider"
	"github.com/streamfmt/streamfmt/stream"
	"github.com/streamfmt/streamfmt/units"
)

// Directory resolves provider ids to short display names.
type Directory interface {
	ShortName(id string) mo.Option[string]
}

type (
	LanguageMapper    func(name string) mo.Option[string]
	SizeFormatter     func(bytes uint64) string
	DurationFormatter func(seconds float64) string
)

// Renderer renders candidates with a fixed set of collaborators.
type Renderer struct {
	directory      Directory
	languages      LanguageMapper
	formatSize     SizeFormatter
	formatDuration DurationFormatter
	icons          icon.Set
}

type Option func(*Renderer)

// WithDirectory sets the provider directory used for short names.
func WithDirectory(d Directory) Option {
	return func(r *Renderer) {
		r.directory = d
	}
}

// WithLanguages sets the language to emoji mapping used in minimalistic mode.
func WithLanguages(m LanguageMapper) Option {
	return func(r *Renderer) {
		r.languages = m
	}
}

func WithSizeFormatter(f SizeFormatter) Option {
	return func(r *Renderer) {
		r.formatSize = f
	}
}

func WithDurationFormatter(f DurationFormatter) Option {
	return func(r *Renderer) {
		r.formatDuration = f
	}
}

// WithIcons sets the glyph set.
func WithIcons(s icon.Set) Option {
	return func(r *Renderer) {
		r.icons = s
	}
}

// New returns a renderer using built-in providers, emoji glyphs and the units
// formatters unless overridden by opts.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		directory:      provider.NewDirectory(provider.Builtins()),
		languages:      language.Emoji,
		formatSize:     units.FormatSize,
		formatDuration: units.FormatDuration,
		icons:          icon.Emoji(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

var defaultRenderer = New()

// Render renders c with the default renderer.
func Render(c *stream.Candidate, minimalistic bool) stream.Result {
	return defaultRenderer.Render(c, minimalistic)
}

// Render returns the trimmed name and description for c. A nil candidate renders
// as an empty result.
func (r *Renderer) Render(c *stream.Candidate, minimalistic bool) stream.Result {
	if c == nil {
		return stream.Result{}
	}

	return stream.Result{
		Name:        strings.TrimSpace(r.name(c, minimalistic)),
		Description: strings.TrimSpace(r.description(c, minimalistic)),
	}
}

// RenderAll renders every candidate in order.
func (r *Renderer) RenderAll(candidates []*stream.Candidate, minimalistic bool) []stream.Result {
	return lo.Map(candidates, func(c *stream.Candidate, _ int) stream.Result {
		return r.Render(c, minimalistic)
	})
}

func (r *Renderer) name(c *stream.Candidate, minimalistic bool) string {
	var b strings.Builder

	if c.Provider != nil {
		b.WriteString("[")
		b.WriteString(r.shortName(c.Provider.ID))
		b.WriteString(r.cacheGlyph(c))
		b.WriteString("]\n")
	}

	if c.InfoHash() != "" {
		b.WriteString("[P2P]\n")
	}

	b.WriteString(c.AddonName)
	b.WriteString(" ")
	if c.Personal {
		b.WriteString("(Your Media) ")
	}

	b.WriteString(resolution(c.Resolution, minimalistic))

	return b.String()
}

func (r *Renderer) shortName(id string) string {
	short := r.directory.ShortName(id).OrEmpty()
	if short == "" {
		return id
	}
	return short
}

func (r *Renderer) cacheGlyph(c *stream.Candidate) string {
	cached, ok := c.Cached().Get()
	switch {
	case !ok:
		return r.icons.Get(icon.CacheUnknown)
	case cached:
		return r.icons.Get(icon.Cached)
	default:
		return r.icons.Get(icon.Uncached)
	}
}

// resolution substitutes 4K for 2160p in full mode only. The Unknown sentinel is
// kept in full mode and dropped in minimalistic mode.
func resolution(res string, minimalistic bool) string {
	if minimalistic {
		if res == stream.Unknown {
			return ""
		}
		return res
	}

	if res == "2160p" {
		return "4K"
	}
	return res
}

func (r *Renderer) description(c *stream.Candidate, minimalistic bool) string {
	var b strings.Builder

	if cut, ok := edition.Classify(c.ScanText()).Get(); ok {
		r.token(&b, icon.Cut, cut)
		b.WriteString("\n")
	}

	r.qualityLine(&b, c)
	r.tagsLine(&b, c)
	r.sizeLine(&b, c, minimalistic)
	r.languagesLine(&b, c, minimalistic)

	if msg := c.MessageText(); msg != "" {
		r.token(&b, icon.Message, msg)
	}

	return b.String()
}

func (r *Renderer) qualityLine(b *strings.Builder, c *stream.Candidate) {
	quality, encode := stream.Meaningful(c.Quality), stream.Meaningful(c.Encode)
	if !quality && !encode {
		return
	}

	if quality {
		r.token(b, icon.Quality, c.Quality)
		b.WriteString(" ")
	}
	if encode {
		r.token(b, icon.Encode, c.Encode)
		b.WriteString(" ")
	}
	b.WriteString("\n")
}

func (r *Renderer) tagsLine(b *strings.Builder, c *stream.Candidate) {
	if len(c.VisualTags) == 0 && len(c.AudioTags) == 0 {
		return
	}

	if len(c.VisualTags) > 0 {
		r.token(b, icon.Visual, strings.Join(c.VisualTags, " | "))
		b.WriteString("   ")
	}
	if len(c.AudioTags) > 0 {
		r.token(b, icon.Audio, strings.Join(c.AudioTags, " | "))
	}
	b.WriteString("\n")
}

func (r *Renderer) sizeLine(b *strings.Builder, c *stream.Candidate, minimalistic bool) {
	size := c.SizeBytes()
	duration := c.DurationSeconds()
	seeders, showSeeders := seedersShown(c, minimalistic)
	age := c.UsenetAge()

	if size.IsAbsent() && duration.IsAbsent() && !seedersOpenLine(c, minimalistic) && age == "" {
		return
	}

	r.token(b, icon.Size, r.formatSize(size.OrEmpty()))
	b.WriteString(" ")

	if d, ok := duration.Get(); ok {
		r.token(b, icon.Duration, r.formatDuration(d))
		b.WriteString(" ")
	}
	if showSeeders {
		r.token(b, icon.Seeders, seeders)
		b.WriteString(" ")
	}
	if age != "" {
		r.token(b, icon.Age, age)
		b.WriteString(" ")
	}
	b.WriteString("\n")
}

// seedersOpenLine reports whether the seeder count alone is enough to emit the
// size line. A zero count never is.
func seedersOpenLine(c *stream.Candidate, minimalistic bool) bool {
	seeders := c.Seeders().OrEmpty()
	if seeders == 0 {
		return false
	}
	return !minimalistic || !c.IsCached()
}

// seedersShown applies the seeders token rule once the line is emitted. Full mode
// shows any reported count, including zero. Minimalistic mode shows only a non-zero
// count for streams not confirmed as cached.
func seedersShown(c *stream.Candidate, minimalistic bool) (string, bool) {
	seeders, ok := c.Seeders().Get()
	if !ok {
		return "", false
	}

	if minimalistic && (seeders == 0 || c.IsCached()) {
		return "", false
	}

	return strconv.Itoa(seeders), true
}

func (r *Renderer) languagesLine(b *strings.Builder, c *stream.Candidate, minimalistic bool) {
	if len(c.Languages) == 0 {
		return
	}

	languages := c.Languages
	if minimalistic {
		languages = lo.Map(languages, func(name string, _ int) string {
			return r.languages(name).OrElse(name)
		})
	}

	r.token(b, icon.Languages, strings.Join(languages, " | "))
	b.WriteString("\n")
}

// token writes a glyph followed by its value.
func (r *Renderer) token(b *strings.Builder, i icon.Icon, value string) {
	b.WriteString(r.icons.Get(i))
	b.WriteString(" ")
	b.WriteString(value)
}
