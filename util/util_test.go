package util

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(0, "candidate", "candidates"), ShouldEqual, "0 candidates")
		So(Quantify(1, "candidate", "candidates"), ShouldEqual, "1 candidate")
		So(Quantify(2, "candidate", "candidates"), ShouldEqual, "2 candidates")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("english"), ShouldEqual, "English")
		So(Capitalize("dual audio"), ShouldEqual, "Dual audio")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestIgnore(t *testing.T) {
	Convey("Ignore calls the function and drops its error", t, func() {
		called := false
		Ignore(func() error {
			called = true
			return errors.New("boom")
		})
		So(called, ShouldBeTrue)
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
		So(Min(uint64(3), uint64(9)), ShouldEqual, uint64(3))
	})
}
