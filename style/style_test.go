package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamfmt/streamfmt/color"
)

func TestRenderers(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	Convey("Without color support text passes through", t, func() {
		So(Fg(color.Red)("error"), ShouldEqual, "error")
		So(Faint("note"), ShouldEqual, "note")
		So(Bold("key"), ShouldEqual, "key")
	})

	Convey("ErrorTitle pads the text", t, func() {
		So(ErrorTitle("Error"), ShouldEqual, " Error ")
	})
}
