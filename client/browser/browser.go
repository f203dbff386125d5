// Package browser provides access to the host page's window, document and
// body.
//
// Window, Document and Body panic when the requested object is missing.
// The Lookup variants return an *AbsentError instead.
package browser

import "github.com/mokiat/gog/opt"

// Host is the binding layer over the browser's global object model.
type Host interface {
	// Window returns the top-level global object, if there is one.
	Window() opt.T[HTMLWindow]
}

// HTMLWindow is a handle to the host's top-level global object.
type HTMLWindow interface {
	// Document returns the document loaded in this window, if any.
	Document() opt.T[HTMLDocument]
	RequestAnimationFrame(fn func())
}

// HTMLDocument is a handle to the page loaded in a window.
type HTMLDocument interface {
	// Body returns the document's <body> element. It is unspecified until
	// the parser reaches it, and for documents which have no body at all.
	Body() opt.T[HTMLElement]
	CreateElement(tag string) HTMLElement
	GetElementByID(id string) opt.T[HTMLElement]
}

// HTMLElement is a handle to an element of a document.
type HTMLElement interface {
	TagName() string
	SetAttribute(name, value string)
	SetTextContent(text string)
	AppendChild(child HTMLElement)
}

var defaultAccessor = NewAccessor(DefaultHost())

// Window returns the host's window. It panics with "window undefined" if
// there is none.
func Window() HTMLWindow { return defaultAccessor.Window() }

// Document returns the page document. It panics with "window undefined" or
// "document undefined".
func Document() HTMLDocument { return defaultAccessor.Document() }

// Body returns the page body. It panics with the message for the first
// missing object, ending with "body undefined".
func Body() HTMLElement { return defaultAccessor.Body() }

func LookupWindow() (HTMLWindow, error)     { return defaultAccessor.LookupWindow() }
func LookupDocument() (HTMLDocument, error) { return defaultAccessor.LookupDocument() }

// LookupBody returns the page body, or an *AbsentError naming the first
// missing object of the window -> document -> body chain.
func LookupBody() (HTMLElement, error) { return defaultAccessor.LookupBody() }
