//go:build js && wasm

package browser

import (
	"fmt"
	"syscall/js"

	"github.com/mokiat/gog/opt"
)

// DefaultHost returns the host backed by the JS global object.
func DefaultHost() Host { return jsHost{} }

type jsHost struct{}

func (jsHost) Window() opt.T[HTMLWindow] {
	v := js.Global().Get("window")
	if absent(v) {
		return opt.Unspecified[HTMLWindow]()
	}
	return opt.V[HTMLWindow](jsWindow{v})
}

type jsWindow struct{ jsValue js.Value }

func (w jsWindow) Document() opt.T[HTMLDocument] {
	v := w.jsValue.Get("document")
	if absent(v) {
		return opt.Unspecified[HTMLDocument]()
	}
	return opt.V[HTMLDocument](jsDocument{v})
}

func (w jsWindow) RequestAnimationFrame(fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	w.jsValue.Call("requestAnimationFrame", cb)
}

type jsDocument struct{ jsValue js.Value }

func (d jsDocument) Body() opt.T[HTMLElement] {
	return element(d.jsValue.Get("body"))
}

func (d jsDocument) CreateElement(tag string) HTMLElement {
	return jsElement{d.jsValue.Call("createElement", tag)}
}

func (d jsDocument) GetElementByID(id string) opt.T[HTMLElement] {
	return element(d.jsValue.Call("getElementById", id))
}

type jsElement struct{ jsValue js.Value }

func (e jsElement) TagName() string                 { return e.jsValue.Get("tagName").String() }
func (e jsElement) SetAttribute(name, value string) { e.jsValue.Call("setAttribute", name, value) }
func (e jsElement) SetTextContent(text string)      { e.jsValue.Set("textContent", text) }

func (e jsElement) AppendChild(child HTMLElement) {
	c, ok := child.(jsElement)
	if !ok {
		panic(fmt.Sprintf("browser: cannot append %T to a JS element", child))
	}
	e.jsValue.Call("appendChild", c.jsValue)
}

func element(v js.Value) opt.T[HTMLElement] {
	if absent(v) {
		return opt.Unspecified[HTMLElement]()
	}
	return opt.V[HTMLElement](jsElement{v})
}

// absent reports whether v is undefined or null.
func absent(v js.Value) bool {
	return v.IsUndefined() || v.IsNull()
}
