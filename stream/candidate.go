// Package stream defines the normalized stream-candidate record and the rendered result.
package stream

import (
	"github.com/samber/mo"
)

// Unknown is the sentinel upstream parsers use for resolution, quality and encode
// values they could not determine.
const Unknown = "Unknown"

// Provider describes the hosting service that can serve a candidate.
type Provider struct {
	// ID is the service identifier, e.g. "realdebrid".
	ID string `json:"id" jsonschema:"required"`
	// Cached is the service's cache status; absent means unknown.
	Cached *bool `json:"cached,omitempty"`
}

// Torrent carries peer-to-peer origin details.
type Torrent struct {
	InfoHash string `json:"infoHash,omitempty"`
	Seeders  *int   `json:"seeders,omitempty"`
}

// Usenet carries usenet origin details.
type Usenet struct {
	// Age is a preformatted post age, e.g. "12d".
	Age string `json:"age,omitempty"`
}

// Candidate is one playable source for a piece of media.
type Candidate struct {
	Provider *Provider `json:"provider,omitempty"`
	Torrent  *Torrent  `json:"torrent,omitempty"`
	Usenet   *Usenet   `json:"usenet,omitempty"`

	AddonName string `json:"addonName"`
	// Personal is set for sources from the user's own media library.
	Personal   bool    `json:"personal"`
	Resolution string  `json:"resolution"`
	Filename   *string `json:"filename,omitempty"`
	FolderName *string `json:"folderName,omitempty"`
	Quality    string  `json:"quality"`
	Encode     string  `json:"encode"`

	VisualTags []string `json:"visualTags"`
	AudioTags  []string `json:"audioTags"`

	// Size is in bytes.
	Size *uint64 `json:"size,omitempty"`
	// Duration is in seconds.
	Duration *float64 `json:"duration,omitempty"`

	// Languages are ordered by significance.
	Languages []string `json:"languages"`
	Message   *string  `json:"message,omitempty"`
}

// Cached reports the provider cache status. None means either no provider or an
// unknown status.
func (c *Candidate) Cached() mo.Option[bool] {
	if c.Provider == nil || c.Provider.Cached == nil {
		return mo.None[bool]()
	}
	return mo.Some(*c.Provider.Cached)
}

// IsCached reports whether the provider confirmed the candidate is cached.
func (c *Candidate) IsCached() bool {
	return c.Cached().OrElse(false)
}

// InfoHash returns the torrent info hash or an empty string.
func (c *Candidate) InfoHash() string {
	if c.Torrent == nil {
		return ""
	}
	return c.Torrent.InfoHash
}

// Seeders returns the torrent seeder count when upstream reported one.
func (c *Candidate) Seeders() mo.Option[int] {
	if c.Torrent == nil || c.Torrent.Seeders == nil {
		return mo.None[int]()
	}
	return mo.Some(*c.Torrent.Seeders)
}

// UsenetAge returns the usenet post age or an empty string.
func (c *Candidate) UsenetAge() string {
	if c.Usenet == nil {
		return ""
	}
	return c.Usenet.Age
}

// SizeBytes returns the size when present and non-zero.
func (c *Candidate) SizeBytes() mo.Option[uint64] {
	if c.Size == nil || *c.Size == 0 {
		return mo.None[uint64]()
	}
	return mo.Some(*c.Size)
}

// DurationSeconds returns the duration when present and non-zero.
func (c *Candidate) DurationSeconds() mo.Option[float64] {
	if c.Duration == nil || *c.Duration == 0 {
		return mo.None[float64]()
	}
	return mo.Some(*c.Duration)
}

// MessageText returns the attached message or an empty string.
func (c *Candidate) MessageText() string {
	if c.Message == nil {
		return ""
	}
	return *c.Message
}

// ScanText joins filename and folder name with a space; missing parts are empty.
func (c *Candidate) ScanText() string {
	return deref(c.Filename) + " " + deref(c.FolderName)
}

// Meaningful reports whether v carries information beyond the Unknown sentinel.
func Meaningful(v string) bool {
	return v != "" && v != Unknown
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
