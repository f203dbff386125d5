// Package browsertest provides an in-memory browser.Host for tests.
package browsertest

import (
	"fmt"

	"github.com/hulkholden/gowebdom/client/browser"
	"github.com/mokiat/gog/opt"
)

type Option func(*Host)

// WithoutWindow models an execution context with no window, e.g. a worker.
func WithoutWindow() Option {
	return func(h *Host) { h.Win = nil }
}

func WithoutDocument() Option {
	return func(h *Host) {
		if h.Win != nil {
			h.Win.Doc = nil
		}
	}
}

// WithoutBody models a document whose <body> has not been parsed yet.
func WithoutBody() Option {
	return func(h *Host) {
		if h.Win != nil && h.Win.Doc != nil {
			h.Win.Doc.BodyEl = nil
		}
	}
}

// Host is a browser.Host whose object graph is plain Go values. A nil
// link in the Win -> Doc -> BodyEl chain is reported as absent.
type Host struct {
	Win *Window

	lookups int
}

var _ browser.Host = (*Host)(nil)

// NewHost returns a host with a window, a document and an empty <body>.
func NewHost(opts ...Option) *Host {
	h := &Host{
		Win: &Window{
			Doc: &Document{
				BodyEl: NewElement("body"),
			},
		},
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

func (h *Host) Window() opt.T[browser.HTMLWindow] {
	h.lookups++
	if h.Win == nil {
		return opt.Unspecified[browser.HTMLWindow]()
	}
	return opt.V[browser.HTMLWindow](h.Win)
}

// Lookups returns how many times the window has been requested.
func (h *Host) Lookups() int { return h.lookups }

// Flush runs the animation frame callbacks queued so far and returns how
// many ran. Callbacks queued while flushing wait for the next Flush.
func (h *Host) Flush() int {
	if h.Win == nil {
		return 0
	}
	frames := h.Win.frames
	h.Win.frames = nil
	for _, fn := range frames {
		fn()
	}
	return len(frames)
}

type Window struct {
	Doc *Document

	frames []func()
}

func (w *Window) Document() opt.T[browser.HTMLDocument] {
	if w.Doc == nil {
		return opt.Unspecified[browser.HTMLDocument]()
	}
	return opt.V[browser.HTMLDocument](w.Doc)
}

func (w *Window) RequestAnimationFrame(fn func()) {
	w.frames = append(w.frames, fn)
}

// Pending returns the number of queued animation frame callbacks.
func (w *Window) Pending() int { return len(w.frames) }

type Document struct {
	BodyEl *Element
}

func (d *Document) Body() opt.T[browser.HTMLElement] {
	if d.BodyEl == nil {
		return opt.Unspecified[browser.HTMLElement]()
	}
	return opt.V[browser.HTMLElement](d.BodyEl)
}

func (d *Document) CreateElement(tag string) browser.HTMLElement {
	return NewElement(tag)
}

// GetElementByID searches the subtree rooted at the body.
func (d *Document) GetElementByID(id string) opt.T[browser.HTMLElement] {
	if d.BodyEl == nil {
		return opt.Unspecified[browser.HTMLElement]()
	}
	if e := d.BodyEl.find(id); e != nil {
		return opt.V[browser.HTMLElement](e)
	}
	return opt.Unspecified[browser.HTMLElement]()
}

type Element struct {
	Tag      string
	Attrs    map[string]string
	Text     string
	Children []*Element
}

func NewElement(tag string) *Element {
	return &Element{Tag: tag, Attrs: map[string]string{}}
}

func (e *Element) TagName() string { return e.Tag }

func (e *Element) SetAttribute(name, value string) { e.Attrs[name] = value }

func (e *Element) SetTextContent(text string) {
	e.Text = text
	e.Children = nil
}

func (e *Element) AppendChild(child browser.HTMLElement) {
	c, ok := child.(*Element)
	if !ok {
		panic(fmt.Sprintf("browsertest: cannot append %T", child))
	}
	e.Children = append(e.Children, c)
}

func (e *Element) find(id string) *Element {
	if e.Attrs["id"] == id {
		return e
	}
	for _, c := range e.Children {
		if f := c.find(id); f != nil {
			return f
		}
	}
	return nil
}
