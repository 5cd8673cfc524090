package stream

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCandidate(t *testing.T) {
	Convey("Given a candidate decoded from JSON", t, func() {
		var c Candidate
		err := json.Unmarshal([]byte(`{
			"provider": {"id": "realdebrid", "cached": false},
			"torrent": {"infoHash": "abc", "seeders": 0},
			"addonName": "Torrentio",
			"resolution": "1080p",
			"filename": "Movie.2020.mkv",
			"quality": "BluRay",
			"encode": "x265",
			"visualTags": [],
			"audioTags": ["DTS"],
			"size": 0,
			"languages": ["English"]
		}`), &c)
		So(err, ShouldBeNil)

		Convey("A false cache status is known", func() {
			So(c.Cached().IsPresent(), ShouldBeTrue)
			So(c.IsCached(), ShouldBeFalse)
		})

		Convey("Zero seeders are still reported", func() {
			So(c.Seeders().MustGet(), ShouldEqual, 0)
			So(c.InfoHash(), ShouldEqual, "abc")
		})

		Convey("A zero size counts as absent", func() {
			So(c.SizeBytes().IsPresent(), ShouldBeFalse)
		})

		Convey("Only a zero duration counts as absent", func() {
			c.Duration = lo.ToPtr(0.0)
			So(c.DurationSeconds().IsPresent(), ShouldBeFalse)

			c.Duration = lo.ToPtr(-30.0)
			So(c.DurationSeconds().OrEmpty(), ShouldEqual, -30.0)
		})

		Convey("Missing optional sections degrade to empty values", func() {
			So(c.UsenetAge(), ShouldBeEmpty)
			So(c.MessageText(), ShouldBeEmpty)
			So(c.DurationSeconds().IsPresent(), ShouldBeFalse)
			So(c.ScanText(), ShouldEqual, "Movie.2020.mkv ")
		})
	})

	Convey("Given an empty candidate", t, func() {
		c := &Candidate{}

		Convey("The cache status is unknown", func() {
			So(c.Cached().IsAbsent(), ShouldBeTrue)
			So(c.IsCached(), ShouldBeFalse)
		})

		Convey("The scan text is a lone separator", func() {
			So(c.ScanText(), ShouldEqual, " ")
		})
	})

	Convey("Given a provider without a cache status", t, func() {
		c := &Candidate{Provider: &Provider{ID: "torbox"}}
		So(c.Cached().IsAbsent(), ShouldBeTrue)

		c.Provider.Cached = lo.ToPtr(true)
		So(c.IsCached(), ShouldBeTrue)
	})
}

func TestMeaningful(t *testing.T) {
	Convey("Meaningful", t, func() {
		So(Meaningful("BluRay"), ShouldBeTrue)
		So(Meaningful(Unknown), ShouldBeFalse)
		So(Meaningful(""), ShouldBeFalse)
	})
}

func TestResult(t *testing.T) {
	Convey("Result", t, func() {
		r := Result{Name: "[RD⚡]\n[P2P]\nTorrentio 4K", Description: "🎥 BluRay"}

		Convey("Title folds line breaks", func() {
			So(r.Title(), ShouldEqual, "[RD⚡] [P2P] Torrentio 4K")
		})

		Convey("String joins name and description", func() {
			So(r.String(), ShouldEqual, "[RD⚡]\n[P2P]\nTorrentio 4K\n🎥 BluRay")
			So(Result{Name: "Torrentio"}.String(), ShouldEqual, "Torrentio")
		})
	})
}
