package inline

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamfmt/streamfmt/stream"
)

const (
	first  = `{"addonName": "Torrentio", "resolution": "1080p", "quality": "BluRay", "encode": "Unknown", "visualTags": [], "audioTags": [], "languages": []}`
	second = `{"addonName": "Comet", "resolution": "2160p", "quality": "Unknown", "encode": "Unknown", "visualTags": [], "audioTags": [], "languages": [], "provider": {"id": "torbox", "cached": true}}`
)

func TestDecode(t *testing.T) {
	Convey("Decode", t, func() {
		Convey("Accepts a single object", func() {
			candidates, err := Decode(strings.NewReader("  \n" + first))
			So(err, ShouldBeNil)
			So(candidates, ShouldHaveLength, 1)
			So(candidates[0].AddonName, ShouldEqual, "Torrentio")
		})

		Convey("Accepts an array", func() {
			candidates, err := Decode(strings.NewReader("[" + first + "," + second + "]"))
			So(err, ShouldBeNil)
			So(candidates, ShouldHaveLength, 2)
			So(candidates[1].IsCached(), ShouldBeTrue)
		})

		Convey("Accepts newline-delimited objects", func() {
			candidates, err := Decode(strings.NewReader(first + "\n" + second + "\n"))
			So(err, ShouldBeNil)
			So(candidates, ShouldHaveLength, 2)
			So(candidates[1].AddonName, ShouldEqual, "Comet")
		})

		Convey("Empty input yields nothing", func() {
			candidates, err := Decode(strings.NewReader(" \n "))
			So(err, ShouldBeNil)
			So(candidates, ShouldBeEmpty)
		})

		Convey("Malformed input is an error", func() {
			_, err := Decode(strings.NewReader(first + "\n{oops"))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParsePicker(t *testing.T) {
	candidates := []*stream.Candidate{{AddonName: "a"}, {AddonName: "b"}, {AddonName: "c"}}

	Convey("ParsePicker", t, func() {
		Convey("first and last", func() {
			So(mustPicker(ParsePicker("first"))(candidates).AddonName, ShouldEqual, "a")
			So(mustPicker(ParsePicker("last"))(candidates).AddonName, ShouldEqual, "c")
		})

		Convey("Index is clamped to the last candidate", func() {
			So(mustPicker(ParsePicker("1"))(candidates).AddonName, ShouldEqual, "b")
			So(mustPicker(ParsePicker("10"))(candidates).AddonName, ShouldEqual, "c")
		})

		Convey("Pickers return nil on empty input", func() {
			So(mustPicker(ParsePicker("first"))(nil), ShouldBeNil)
			So(mustPicker(ParsePicker("0"))(nil), ShouldBeNil)
		})

		Convey("Garbage is rejected", func() {
			_, err := ParsePicker("middle")
			So(err, ShouldNotBeNil)
		})
	})
}

func mustPicker(p CandidatePicker, err error) CandidatePicker {
	So(err, ShouldBeNil)
	return p
}

func TestRun(t *testing.T) {
	Convey("Given two candidates", t, func() {
		in := "[" + first + "," + second + "]"

		Convey("Text output separates records with a blank line", func() {
			var out bytes.Buffer
			err := Run(&Options{In: strings.NewReader(in), Out: &out})
			So(err, ShouldBeNil)
			So(out.String(), ShouldEqual, "Torrentio 1080p\n🎥 BluRay\n\n[TB⚡]\nComet 4K\n")
		})

		Convey("JSON output carries the mode and results", func() {
			var out bytes.Buffer
			err := Run(&Options{In: strings.NewReader(in), Out: &out, Json: true, Minimalistic: true})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Minimalistic, ShouldBeTrue)
			So(output.Result, ShouldHaveLength, 2)
			So(output.Result[1].Name, ShouldEqual, "[TB⚡]\nComet 2160p")
		})

		Convey("A picker narrows the batch", func() {
			var out bytes.Buffer
			picker, _ := ParsePicker("last")
			err := Run(&Options{In: strings.NewReader(in), Out: &out, Json: true, Picker: mo.Some(picker)})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 1)
			So(output.Result[0].Name, ShouldEqual, "[TB⚡]\nComet 4K")
		})

		Convey("Wrapping breaks long lines", func() {
			var out bytes.Buffer
			err := Run(&Options{In: strings.NewReader(first), Out: &out, Wrap: 10})
			So(err, ShouldBeNil)
			So(out.String(), ShouldEqual, "Torrentio\n1080p\n🎥 BluRay\n")
		})
	})

	Convey("JSON output of an empty batch has an empty result list", t, func() {
		var out bytes.Buffer
		So(Run(&Options{In: strings.NewReader(""), Out: &out, Json: true}), ShouldBeNil)
		So(out.String(), ShouldEqual, `{"minimalistic":false,"result":[]}`)
	})
}
