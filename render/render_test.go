package render

import (
	"fmt"
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamfmt/streamfmt/icon"
	"github.com/streamfmt/streamfmt/stream"
)

// bare returns a candidate holding only the always-present fields, set to sentinels.
func bare() *stream.Candidate {
	return &stream.Candidate{
		AddonName:  "Torrentio",
		Resolution: stream.Unknown,
		Quality:    stream.Unknown,
		Encode:     stream.Unknown,
		VisualTags: []string{},
		AudioTags:  []string{},
		Languages:  []string{},
	}
}

func full() *stream.Candidate {
	return &stream.Candidate{
		Provider:   &stream.Provider{ID: "realdebrid", Cached: lo.ToPtr(true)},
		Torrent:    &stream.Torrent{InfoHash: "abc123", Seeders: lo.ToPtr(42)},
		AddonName:  "Torrentio",
		Resolution: "2160p",
		Filename:   lo.ToPtr("Movie.2020.IMAX.2160p.mkv"),
		Quality:    "BluRay",
		Encode:     "x265",
		VisualTags: []string{"HDR", "DV"},
		AudioTags:  []string{"Atmos"},
		Size:       lo.ToPtr(uint64(1_200_000_000)),
		Duration:   lo.ToPtr(5525.0),
		Languages:  []string{"English", "French"},
	}
}

func TestRenderFull(t *testing.T) {
	Convey("Given a fully populated candidate", t, func() {
		c := full()

		Convey("Full mode renders every line", func() {
			r := Render(c, false)
			So(r.Name, ShouldEqual, "[RD⚡]\n[P2P]\nTorrentio 4K")
			So(r.Description, ShouldEqual, "❗ IMAX\n"+
				"🎥 BluRay 🎞️ x265 \n"+
				"📺 HDR | DV   🎧 Atmos\n"+
				"📦 1.2 GB ⏱️ 1h 32m 5s 👥 42 \n"+
				"🔊 English | French")
		})

		Convey("Minimalistic mode keeps 2160p, hides seeders of cached streams and maps languages", func() {
			r := Render(c, true)
			So(r.Name, ShouldEqual, "[RD⚡]\n[P2P]\nTorrentio 2160p")
			So(r.Description, ShouldEqual, "❗ IMAX\n"+
				"🎥 BluRay 🎞️ x265 \n"+
				"📺 HDR | DV   🎧 Atmos\n"+
				"📦 1.2 GB ⏱️ 1h 32m 5s \n"+
				"🔊 🇬🇧 | 🇫🇷")
		})

		Convey("Rendering is idempotent and leaves the input untouched", func() {
			first := Render(c, false)
			So(Render(c, false), ShouldResemble, first)
			So(c, ShouldResemble, full())
		})
	})
}

func TestRenderName(t *testing.T) {
	Convey("Given a candidate without provider or torrent", t, func() {
		c := bare()

		Convey("Unknown resolution is kept in full mode", func() {
			So(Render(c, false).Name, ShouldEqual, "Torrentio Unknown")
		})

		Convey("Unknown resolution is dropped in minimalistic mode", func() {
			So(Render(c, true).Name, ShouldEqual, "Torrentio")
		})

		Convey("Other resolutions render verbatim in both modes", func() {
			c.Resolution = "1080p"
			So(Render(c, false).Name, ShouldEqual, "Torrentio 1080p")
			So(Render(c, true).Name, ShouldEqual, "Torrentio 1080p")
		})

		Convey("Personal media is labelled", func() {
			c.AddonName = "Plex"
			c.Personal = true
			c.Resolution = "720p"
			So(Render(c, false).Name, ShouldEqual, "Plex (Your Media) 720p")
		})

		Convey("An empty info hash is not peer-to-peer", func() {
			c.Torrent = &stream.Torrent{}
			So(Render(c, false).Name, ShouldEqual, "Torrentio Unknown")
		})
	})

	Convey("Cache glyphs follow the provider status", t, func() {
		c := bare()
		c.Resolution = "1080p"

		c.Provider = &stream.Provider{ID: "alldebrid", Cached: lo.ToPtr(true)}
		So(Render(c, false).Name, ShouldStartWith, "[AD⚡]\n")

		c.Provider.Cached = nil
		So(Render(c, false).Name, ShouldStartWith, "[AD❓]\n")

		c.Provider.Cached = lo.ToPtr(false)
		So(Render(c, false).Name, ShouldStartWith, "[AD⏳]\n")
	})

	Convey("Unknown provider ids fall back to the raw id", t, func() {
		c := bare()
		c.Provider = &stream.Provider{ID: "mydebrid"}
		So(Render(c, false).Name, ShouldEqual, "[mydebrid❓]\nTorrentio Unknown")
	})
}

func TestRenderDescription(t *testing.T) {
	Convey("Given a candidate with only sentinel values", t, func() {
		c := bare()

		Convey("The description is empty", func() {
			So(Render(c, false).Description, ShouldBeEmpty)
			So(Render(c, true).Description, ShouldBeEmpty)
		})

		Convey("Quality alone renders without encode", func() {
			c.Quality = "WEB-DL"
			So(Render(c, false).Description, ShouldEqual, "🎥 WEB-DL")
		})

		Convey("Encode alone renders without quality", func() {
			c.Encode = "x264"
			So(Render(c, false).Description, ShouldEqual, "🎞️ x264")
		})

		Convey("Visual tags keep their separator before the next line", func() {
			c.VisualTags = []string{"HDR10+"}
			c.Languages = []string{"German"}
			So(Render(c, false).Description, ShouldEqual, "📺 HDR10+   \n🔊 German")
		})

		Convey("Audio tags alone", func() {
			c.AudioTags = []string{"DTS", "5.1"}
			So(Render(c, false).Description, ShouldEqual, "🎧 DTS | 5.1")
		})

		Convey("Duration alone still renders the size token", func() {
			c.Duration = lo.ToPtr(5520.0)
			So(Render(c, false).Description, ShouldEqual, "📦 0 B ⏱️ 1h 32m")
			So(Render(c, true).Description, ShouldEqual, "📦 0 B ⏱️ 1h 32m")
		})

		Convey("Usenet age alone", func() {
			c.Usenet = &stream.Usenet{Age: "12d"}
			So(Render(c, false).Description, ShouldEqual, "📦 0 B 📅 12d")
		})

		Convey("The message is the last line", func() {
			c.Quality = "BluRay"
			c.Message = lo.ToPtr("Download failed")
			So(Render(c, false).Description, ShouldEqual, "🎥 BluRay \n📢 Download failed")
		})

		Convey("Unmapped languages fall back to their name in minimalistic mode", func() {
			c.Languages = []string{"Klingon", "multi", "Japanese"}
			So(Render(c, true).Description, ShouldEqual, "🔊 Klingon | 🌎 | 🇯🇵")
			So(Render(c, false).Description, ShouldEqual, "🔊 Klingon | multi | Japanese")
		})
	})

	Convey("Given edition markers", t, func() {
		c := bare()

		Convey("The first matching rule wins", func() {
			c.Filename = lo.ToPtr("Movie.Extended.IMAX.2020")
			So(Render(c, false).Description, ShouldStartWith, "❗ Directors Cut")
		})

		Convey("The folder name is scanned too", func() {
			c.FolderName = lo.ToPtr("Movie (2019) Open Matte")
			So(Render(c, false).Description, ShouldEqual, "❗ Open Matte")
		})

		Convey("NON-IMAX is not IMAX", func() {
			c.Filename = lo.ToPtr("Movie.2021.NON-IMAX.1080p")
			So(Render(c, false).Description, ShouldBeEmpty)
		})
	})
}

func TestRenderSeeders(t *testing.T) {
	Convey("Given a torrent candidate", t, func() {
		c := bare()
		c.Torrent = &stream.Torrent{InfoHash: "abc", Seeders: lo.ToPtr(0)}

		Convey("Zero seeders alone do not emit the size line", func() {
			So(Render(c, false).Description, ShouldBeEmpty)
		})

		Convey("Full mode shows zero seeders once the line is emitted", func() {
			c.Size = lo.ToPtr(uint64(1_200_000_000))
			So(Render(c, false).Description, ShouldEqual, "📦 1.2 GB 👥 0")
			So(Render(c, true).Description, ShouldEqual, "📦 1.2 GB")
		})

		Convey("Negative seeders count as reported", func() {
			c.Torrent.Seeders = lo.ToPtr(-1)
			So(Render(c, false).Description, ShouldEqual, "📦 0 B 👥 -1")
			So(Render(c, true).Description, ShouldEqual, "📦 0 B 👥 -1")
		})

		Convey("Minimalistic mode hides zero seeders", func() {
			So(Render(c, true).Description, ShouldBeEmpty)
		})

		Convey("Minimalistic mode shows seeders of streams not confirmed as cached", func() {
			c.Torrent.Seeders = lo.ToPtr(5)
			So(Render(c, true).Description, ShouldEqual, "📦 0 B 👥 5")

			c.Provider = &stream.Provider{ID: "torbox", Cached: lo.ToPtr(false)}
			So(Render(c, true).Description, ShouldEqual, "📦 0 B 👥 5")

			c.Provider.Cached = lo.ToPtr(true)
			So(Render(c, true).Description, ShouldBeEmpty)
			So(Render(c, false).Description, ShouldEqual, "📦 0 B 👥 5")
		})

		Convey("Missing seeders are never shown", func() {
			c.Torrent.Seeders = nil
			So(Render(c, false).Description, ShouldBeEmpty)
		})
	})
}

type fixedDirectory map[string]string

func (d fixedDirectory) ShortName(id string) mo.Option[string] {
	if s, ok := d[id]; ok {
		return mo.Some(s)
	}
	return mo.None[string]()
}

func TestRendererOptions(t *testing.T) {
	Convey("Given a renderer with custom collaborators", t, func() {
		r := New(
			WithDirectory(fixedDirectory{"realdebrid": "REAL", "blank": ""}),
			WithLanguages(func(string) mo.Option[string] { return mo.Some("*") }),
			WithSizeFormatter(func(b uint64) string { return fmt.Sprintf("%d bytes", b) }),
			WithDurationFormatter(func(s float64) string { return fmt.Sprintf("%.0fs", s) }),
			WithIcons(icon.SetOf("plain")),
		)

		c := full()

		Convey("Collaborators shape the output", func() {
			res := r.Render(c, true)
			So(res.Name, ShouldEqual, "[REAL+]\n[P2P]\nTorrentio 2160p")
			So(res.Description, ShouldEqual, "! IMAX\n"+
				"Q: BluRay E: x265 \n"+
				"V: HDR | DV   A: Atmos\n"+
				"S: 1200000000 bytes T: 5525s \n"+
				"L: * | *")
		})

		Convey("An empty short name falls back to the id", func() {
			c.Provider.ID = "blank"
			So(r.Render(c, false).Name, ShouldStartWith, "[blank+]")
		})
	})
}

func TestRenderEdges(t *testing.T) {
	Convey("A nil candidate renders empty", t, func() {
		So(Render(nil, false), ShouldResemble, stream.Result{})
	})

	Convey("RenderAll keeps order", t, func() {
		a, b := bare(), bare()
		b.AddonName = "Comet"
		results := New().RenderAll([]*stream.Candidate{a, b}, true)
		So(results, ShouldHaveLength, 2)
		So(results[0].Name, ShouldEqual, "Torrentio")
		So(results[1].Name, ShouldEqual, "Comet")
	})

	Convey("A renderer is safe for concurrent use", t, func() {
		r := New()
		want := r.Render(full(), false)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			results []stream.Result
		)
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res := r.Render(full(), false)
				mu.Lock()
				results = append(results, res)
				mu.Unlock()
			}()
		}
		wg.Wait()

		So(results, ShouldHaveLength, 16)
		So(lo.EveryBy(results, func(res stream.Result) bool { return res == want }), ShouldBeTrue)
	})
}
