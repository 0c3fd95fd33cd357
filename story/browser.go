package story

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/vellum-ui/vellum"
	"github.com/vellum-ui/vellum/layout"
	"github.com/vellum-ui/vellum/ui"
)

const listWidth = 32

var (
	previewBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7F849C")).
			Padding(0, 1)
)

// storyItem adapts a Story to the bubbles list.
type storyItem struct {
	story Story
}

func (i storyItem) Title() string       { return i.story.Name }
func (i storyItem) Description() string { return i.story.Description }
func (i storyItem) FilterValue() string { return i.story.Name }

// Browser is the bubbletea model for the story catalog: a list pane on
// the left, a live-rendered preview of the selected story on the
// right. The preview runs a real engine; terminal mouse events forward
// into it as pointer events, so hover and press styling work in the
// catalog exactly as they would in a host.
type Browser struct {
	registry *Registry
	engine   *vellum.Engine
	list     list.Model
	canvas   *Canvas

	dark    bool
	custom  bool
	width   int
	height  int
	current *Story
	err     error
}

// NewBrowser creates a browser over the registry. The engine is
// configured the same way a host would configure one: default theme
// and rules from the ui kit, the bundled flexbox layout engine.
func NewBrowser(registry *Registry, log zerolog.Logger) (*Browser, error) {
	engine, err := vellum.New(
		vellum.WithTheme(ui.DarkTheme()),
		vellum.WithRules(ui.DefaultRules()),
		vellum.WithLayoutEngine(layout.NewEngine()),
		vellum.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	items := make([]list.Item, 0, registry.Len())
	for _, s := range registry.All() {
		items = append(items, storyItem{story: s})
	}
	l := list.New(items, list.NewDefaultDelegate(), listWidth, 20)
	l.Title = "stories"
	l.SetShowHelp(false)

	b := &Browser{
		registry: registry,
		engine:   engine,
		list:     l,
		canvas:   NewCanvas(40, 20),
		dark:     true,
	}
	if stories := registry.All(); len(stories) > 0 {
		b.selectStory(stories[0])
	}
	return b, nil
}

// UseTheme replaces the browser engine's theme and rule overlay,
// typically from a loaded theme file. Disables the built-in
// dark/light toggle.
func (b *Browser) UseTheme(t *vellum.Theme, rules *vellum.RuleSet) error {
	if err := b.engine.SetTheme(t); err != nil {
		return err
	}
	if rules != nil {
		b.engine.SetRules(rules)
	}
	b.custom = true
	return nil
}

// Run starts the browser's event loop and blocks until quit.
func (b *Browser) Run() error {
	_, err := tea.NewProgram(b, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.list.SetSize(listWidth, msg.Height-1)
		pw := msg.Width - listWidth - 4
		ph := msg.Height - 3
		b.canvas = NewCanvas(max(pw, 0), max(ph, 0))
		return b, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return b, tea.Quit
		case "t":
			b.toggleTheme()
			return b, nil
		case "enter":
			if item, ok := b.list.SelectedItem().(storyItem); ok {
				b.selectStory(item.story)
			}
			return b, nil
		}
		// Named keys pass through to the focused node.
		b.engine.Dispatch(vellum.KeyEvent{Name: msg.String()})

	case tea.MouseMsg:
		b.forwardMouse(msg)
		return b, nil
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	if item, ok := b.list.SelectedItem().(storyItem); ok {
		if b.current == nil || b.current.Name != item.story.Name {
			b.selectStory(item.story)
		}
	}
	return b, cmd
}

// View implements tea.Model.
func (b *Browser) View() string {
	preview := previewBorder.Render(b.renderPreview())
	body := lipgloss.JoinHorizontal(lipgloss.Top, b.list.View(), preview)
	status := statusStyle.Render(b.statusLine())
	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}

func (b *Browser) statusLine() string {
	theme := "dark"
	if !b.dark {
		theme = "light"
	}
	name := "-"
	if b.current != nil {
		name = b.current.Name
	}
	if b.err != nil {
		return fmt.Sprintf("%s · theme:%s · error: %v", name, theme, b.err)
	}
	return fmt.Sprintf("%s · theme:%s · t: toggle theme · q: quit", name, theme)
}

func (b *Browser) selectStory(s Story) {
	b.current = &s
	b.engine.Submit(s.Build())
}

func (b *Browser) toggleTheme() {
	if b.custom {
		return
	}
	b.dark = !b.dark
	if b.dark {
		b.err = b.engine.SetTheme(ui.DarkTheme())
	} else {
		b.err = b.engine.SetTheme(ui.LightTheme())
	}
}

// forwardMouse translates a terminal mouse event inside the preview
// pane into engine pointer events.
func (b *Browser) forwardMouse(msg tea.MouseMsg) {
	// The preview pane sits right of the list, inside a 1-cell border.
	cx := msg.X - listWidth - 1
	cy := msg.Y - 1
	x, y := CellToPixel(cx, cy)

	switch msg.Action {
	case tea.MouseActionMotion:
		b.engine.Dispatch(vellum.PointerMoveEvent{X: x, Y: y})
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			b.engine.Dispatch(vellum.PointerDownEvent{X: x, Y: y, Button: vellum.ButtonPrimary})
		}
	case tea.MouseActionRelease:
		b.engine.Dispatch(vellum.PointerUpEvent{X: x, Y: y, Button: vellum.ButtonPrimary})
		// Click handlers may have changed story state; rebuild from
		// the story's factory. Reconciliation keeps hover/focus.
		if b.current != nil {
			b.engine.Submit(b.current.Build())
		}
	}
}

// renderPreview runs the standard pipeline for the selected story and
// rasterizes the frame onto the canvas.
func (b *Browser) renderPreview() string {
	b.canvas.Reset()
	frame, err := b.engine.RenderFrame(b.canvas.Viewport())
	if err != nil {
		b.err = err
		return ""
	}
	b.canvas.Paint(frame)
	return b.canvas.Render()
}
