package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/streamfmt/streamfmt/key"
	"github.com/streamfmt/streamfmt/render"
	"github.com/streamfmt/streamfmt/stream"
	"github.com/streamfmt/streamfmt/style"
	"github.com/streamfmt/streamfmt/util"
)

// Upper bound on description lines: cut, quality, tags, size, languages and message.
const maxDescriptionLines = 6

// statefulBubble holds the preview state and its component models.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	previewC list.Model
	helpC    help.Model

	candidates   []*stream.Candidate
	renderer     *render.Renderer
	minimalistic bool
	lastError    error

	width, height int
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// resize propagates terminal dimension changes to the child models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.previewC.SetSize(listWidth, listHeight)
	b.previewC.Help.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

// refresh renders every candidate in the current mode and replaces the list items.
func (b *statefulBubble) refresh() {
	results := b.renderer.RenderAll(b.candidates, b.minimalistic)
	items := lo.Map(results, func(r stream.Result, _ int) *listItem {
		return &listItem{result: r}
	})

	lines := util.Max(lo.Map(items, func(i *listItem, _ int) int { return i.lines() })...)
	delegate := b.delegate(util.Min(lines, maxDescriptionLines))
	b.previewC.SetDelegate(delegate)

	b.previewC.SetItems(lo.Map(items, func(i *listItem, _ int) list.Item { return i }))
	b.previewC.Title = b.title()
}

func (b *statefulBubble) title() string {
	if b.minimalistic {
		return "Streams (minimalistic)"
	}
	return "Streams"
}

func (b *statefulBubble) toggleMode() {
	b.minimalistic = !b.minimalistic
	b.refresh()
}

func (b *statefulBubble) delegate(descriptionLines int) list.DefaultDelegate {
	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
	delegate.ShowDescription = descriptionLines > 0
	delegate.SetHeight(descriptionLines + 1)
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle
	return delegate
}

func newBubble(options *Options) *statefulBubble {
	bubble := statefulBubble{
		keymap:       newStatefulKeymap(),
		candidates:   options.Candidates,
		renderer:     options.Renderer,
		minimalistic: options.Minimalistic,
	}

	if bubble.renderer == nil {
		bubble.renderer = render.New()
	}

	bubble.helpC = help.New()

	listC := list.New([]list.Item{}, bubble.delegate(0), 0, 0)
	listC.KeyMap = bubble.keymap.forList()
	listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
	listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return bubble.keymap.FullHelp()[0]
	}
	listC.Styles.NoItems = paddingStyle
	listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1)
	listC.StatusMessageLifetime = time.Second * 3
	listC.SetStatusBarItemName("stream", "streams")
	bubble.previewC = listC

	bubble.setState(previewState)
	bubble.refresh()

	if len(bubble.candidates) == 0 {
		bubble.raiseError(fmt.Errorf("no candidates to preview"))
	}

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
