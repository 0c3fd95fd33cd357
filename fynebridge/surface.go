package fynebridge

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/vellum-ui/vellum"
)

// Surface is a Fyne widget that renders a vellum component tree and
// routes pointer and keyboard input into the owning engine. All engine
// access happens on the Fyne event goroutine, which satisfies the
// engine's single-goroutine ownership rule.
type Surface struct {
	widget.BaseWidget

	engine *vellum.Engine
	log    zerolog.Logger
}

var (
	_ fyne.Widget       = (*Surface)(nil)
	_ fyne.Focusable    = (*Surface)(nil)
	_ desktop.Hoverable = (*Surface)(nil)
	_ desktop.Mouseable = (*Surface)(nil)
)

// NewSurface wraps an engine in a renderable widget.
func NewSurface(engine *vellum.Engine, log zerolog.Logger) *Surface {
	s := &Surface{engine: engine, log: log}
	s.ExtendBaseWidget(s)
	return s
}

// Engine returns the engine this surface renders.
func (s *Surface) Engine() *vellum.Engine {
	return s.engine
}

// Submit queues a new root descriptor and schedules a repaint.
func (s *Surface) Submit(root *vellum.Descriptor) {
	s.engine.Submit(root)
	s.Refresh()
}

// SetTheme swaps the active theme and schedules a repaint.
func (s *Surface) SetTheme(t *vellum.Theme) error {
	if err := s.engine.SetTheme(t); err != nil {
		return err
	}
	s.Refresh()
	return nil
}

// CreateRenderer implements fyne.Widget.
func (s *Surface) CreateRenderer() fyne.WidgetRenderer {
	return &surfaceRenderer{surface: s}
}

func (s *Surface) MouseIn(ev *desktop.MouseEvent) {
	s.dispatch(vellum.PointerMoveEvent{X: float64(ev.Position.X), Y: float64(ev.Position.Y)})
}

func (s *Surface) MouseMoved(ev *desktop.MouseEvent) {
	s.dispatch(vellum.PointerMoveEvent{X: float64(ev.Position.X), Y: float64(ev.Position.Y)})
}

// MouseOut moves the pointer outside the viewport so hover state clears.
func (s *Surface) MouseOut() {
	s.dispatch(vellum.PointerMoveEvent{X: -1, Y: -1})
}

func (s *Surface) MouseDown(ev *desktop.MouseEvent) {
	s.dispatch(vellum.PointerDownEvent{
		X:      float64(ev.Position.X),
		Y:      float64(ev.Position.Y),
		Button: pointerButton(ev.Button),
	})
}

func (s *Surface) MouseUp(ev *desktop.MouseEvent) {
	s.dispatch(vellum.PointerUpEvent{
		X:      float64(ev.Position.X),
		Y:      float64(ev.Position.Y),
		Button: pointerButton(ev.Button),
	})
}

func (s *Surface) FocusGained() {}

// FocusLost clears the engine's focused node when the widget loses
// window focus.
func (s *Surface) FocusLost() {
	s.dispatch(vellum.FocusEvent{Target: vellum.NoNode})
}

func (s *Surface) TypedRune(r rune) {
	s.dispatch(vellum.KeyEvent{Rune: r})
}

func (s *Surface) TypedKey(ev *fyne.KeyEvent) {
	s.dispatch(vellum.KeyEvent{Name: keyName(ev.Name)})
}

func (s *Surface) dispatch(ev vellum.InputEvent) {
	s.engine.Dispatch(ev)
	s.Refresh()
}

// surfaceRenderer renders frames by rebuilding the canvas object list
// from the engine's paint operations on every layout or refresh.
type surfaceRenderer struct {
	surface *Surface
	objects []fyne.CanvasObject
}

func (r *surfaceRenderer) Layout(size fyne.Size) {
	r.rebuild(size)
}

func (r *surfaceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(64, 64)
}

func (r *surfaceRenderer) Refresh() {
	r.rebuild(r.surface.Size())
	canvas.Refresh(r.surface)
}

func (r *surfaceRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *surfaceRenderer) Destroy() {}

func (r *surfaceRenderer) rebuild(size fyne.Size) {
	viewport := vellum.Size{Width: float64(size.Width), Height: float64(size.Height)}
	frame, err := r.surface.engine.RenderFrame(viewport)
	if err != nil {
		r.surface.log.Error().Err(err).Msg("render frame failed")
		return
	}
	objects := make([]fyne.CanvasObject, 0, len(frame.Ops))
	for _, op := range frame.Ops {
		if obj := paintObject(op); obj != nil {
			objects = append(objects, obj)
		}
	}
	r.objects = objects
}
