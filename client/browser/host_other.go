//go:build !(js && wasm)

package browser

import "github.com/mokiat/gog/opt"

// DefaultHost returns a host with no window. Outside of a browser there is
// no global object model to bind to.
func DefaultHost() Host { return noHost{} }

type noHost struct{}

func (noHost) Window() opt.T[HTMLWindow] { return opt.Unspecified[HTMLWindow]() }
