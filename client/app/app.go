// Package app mounts the client's status view into the page body.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hulkholden/gowebdom/client/browser"
	"github.com/sirupsen/logrus"
)

const (
	StatusID = "status"

	defaultInitialDelay = 50 * time.Millisecond
	defaultMaxDelay     = 2 * time.Second
)

type App struct {
	acc *browser.Accessor
	log logrus.FieldLogger

	initialDelay time.Duration
	maxDelay     time.Duration
	sleep        func(ctx context.Context, d time.Duration) error

	status browser.HTMLElement
	frames int
}

func New(acc *browser.Accessor, log logrus.FieldLogger) *App {
	return &App{
		acc:          acc,
		log:          log,
		initialDelay: defaultInitialDelay,
		maxDelay:     defaultMaxDelay,
		sleep:        sleepContext,
	}
}

// WaitForBody polls until the document has a body. A missing window is
// returned immediately since it will never appear.
func (a *App) WaitForBody(ctx context.Context) (browser.HTMLElement, error) {
	delay := a.initialDelay
	for {
		body, err := a.acc.LookupBody()
		if err == nil {
			return body, nil
		}
		var absent *browser.AbsentError
		if !errors.As(err, &absent) || absent.Object == browser.ObjectWindow {
			return nil, err
		}
		a.log.WithError(err).Debugf("page not ready, retrying in %v", delay)
		if err := a.sleep(ctx, delay); err != nil {
			return nil, fmt.Errorf("waiting for body: %w", err)
		}
		delay = min(delay*2, a.maxDelay)
	}
}

// Mount attaches the status element to the body, reusing one that is
// already on the page.
func (a *App) Mount() error {
	doc, err := a.acc.LookupDocument()
	if err != nil {
		return err
	}
	if existing := doc.GetElementByID(StatusID); existing.Specified {
		a.status = existing.Value
		return nil
	}
	body, err := a.acc.LookupBody()
	if err != nil {
		return err
	}
	status := doc.CreateElement("section")
	status.SetAttribute("id", StatusID)
	status.SetTextContent("Started client!")
	body.AppendChild(status)
	a.status = status
	return nil
}

// ShowError renders err in the status element. Before a successful Mount
// there is nowhere to render it, so it is only logged.
func (a *App) ShowError(err error) {
	if a.status == nil {
		a.log.WithError(err).Error("Cannot show error, status element not mounted")
		return
	}
	a.status.SetAttribute("class", "error")
	a.status.SetTextContent("Run error: " + err.Error())
}

// Start renders a frame counter on every animation frame.
func (a *App) Start() error {
	w, err := a.acc.LookupWindow()
	if err != nil {
		return fmt.Errorf("starting frame loop: %w", err)
	}
	w.RequestAnimationFrame(a.frame)
	return nil
}

func (a *App) Frames() int { return a.frames }

func (a *App) frame() {
	a.frames++
	a.status.SetTextContent(fmt.Sprintf("frame %d", a.frames))
	a.acc.Window().RequestAnimationFrame(a.frame)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
