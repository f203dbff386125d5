package browser

// Accessor retrieves handles from a Host. Nothing is cached: every call
// walks the host's window -> document -> body chain again.
type Accessor struct {
	host Host
}

// NewAccessor returns an Accessor which looks objects up in h.
func NewAccessor(h Host) *Accessor {
	return &Accessor{host: h}
}

func (a *Accessor) LookupWindow() (HTMLWindow, error) {
	w := a.host.Window()
	if !w.Specified || w.Value == nil {
		return nil, &AbsentError{Object: ObjectWindow}
	}
	return w.Value, nil
}

func (a *Accessor) LookupDocument() (HTMLDocument, error) {
	w, err := a.LookupWindow()
	if err != nil {
		return nil, err
	}
	d := w.Document()
	if !d.Specified || d.Value == nil {
		return nil, &AbsentError{Object: ObjectDocument}
	}
	return d.Value, nil
}

// LookupBody returns the body, or an *AbsentError for the first missing
// object in the chain.
func (a *Accessor) LookupBody() (HTMLElement, error) {
	d, err := a.LookupDocument()
	if err != nil {
		return nil, err
	}
	b := d.Body()
	if !b.Specified || b.Value == nil {
		return nil, &AbsentError{Object: ObjectBody}
	}
	return b.Value, nil
}

func (a *Accessor) Window() HTMLWindow     { return must(a.LookupWindow()) }
func (a *Accessor) Document() HTMLDocument { return must(a.LookupDocument()) }
func (a *Accessor) Body() HTMLElement      { return must(a.LookupBody()) }

// must panics with err, so a recovered value prints as the fixed
// diagnostic and can still be matched with errors.As.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
