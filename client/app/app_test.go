package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/hulkholden/gowebdom/client/browser"
	"github.com/hulkholden/gowebdom/client/browser/browsertest"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func newTestApp(h *browsertest.Host) (*App, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return New(browser.NewAccessor(h), logger), hook
}

func TestWaitForBodyPresent(t *testing.T) {
	h := browsertest.NewHost()
	a, _ := newTestApp(h)

	got, err := a.WaitForBody(context.Background())
	if err != nil {
		t.Fatalf("WaitForBody() = %v, want nil error", err)
	}
	if got != h.Win.Doc.BodyEl {
		t.Errorf("WaitForBody() = %v, want %v", got, h.Win.Doc.BodyEl)
	}
}

func TestWaitForBodyBacksOff(t *testing.T) {
	h := browsertest.NewHost(browsertest.WithoutBody())
	a, hook := newTestApp(h)
	a.maxDelay = 150 * time.Millisecond

	var delays []time.Duration
	a.sleep = func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		if len(delays) == 4 {
			h.Win.Doc.BodyEl = browsertest.NewElement("body")
		}
		return nil
	}

	if _, err := a.WaitForBody(context.Background()); err != nil {
		t.Fatalf("WaitForBody() = %v, want nil error", err)
	}
	want := []time.Duration{50 * time.Millisecond, 100 * time.Millisecond, 150 * time.Millisecond, 150 * time.Millisecond}
	if diff := cmp.Diff(want, delays); diff != "" {
		t.Errorf("delays mismatch (-want +got):\n%s", diff)
	}
	if got := len(hook.AllEntries()); got != 4 {
		t.Errorf("logged %d entries, want 4", got)
	}
}

func TestWaitForBodyNoWindow(t *testing.T) {
	a, _ := newTestApp(browsertest.NewHost(browsertest.WithoutWindow()))
	a.sleep = func(context.Context, time.Duration) error {
		t.Fatal("sleep called, want immediate failure")
		return nil
	}

	_, err := a.WaitForBody(context.Background())
	if err == nil || err.Error() != "window undefined" {
		t.Errorf("WaitForBody() = %v, want window undefined", err)
	}
}

func TestWaitForBodyCancelled(t *testing.T) {
	a, _ := newTestApp(browsertest.NewHost(browsertest.WithoutBody()))
	a.initialDelay = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := a.WaitForBody(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("WaitForBody() = %v, want context.Canceled", err)
	}
}

func TestMount(t *testing.T) {
	h := browsertest.NewHost()
	a, _ := newTestApp(h)

	if err := a.Mount(); err != nil {
		t.Fatalf("Mount() = %v, want nil error", err)
	}
	want := []*browsertest.Element{{
		Tag:   "section",
		Attrs: map[string]string{"id": StatusID},
		Text:  "Started client!",
	}}
	if diff := cmp.Diff(want, h.Win.Doc.BodyEl.Children); diff != "" {
		t.Errorf("body children mismatch (-want +got):\n%s", diff)
	}

	// Mounting again reuses the existing element.
	if err := a.Mount(); err != nil {
		t.Fatalf("second Mount() = %v, want nil error", err)
	}
	if got := len(h.Win.Doc.BodyEl.Children); got != 1 {
		t.Errorf("body has %d children after second Mount(), want 1", got)
	}
}

func TestMountWithoutBody(t *testing.T) {
	a, _ := newTestApp(browsertest.NewHost(browsertest.WithoutBody()))

	err := a.Mount()
	var absent *browser.AbsentError
	if !errors.As(err, &absent) || absent.Object != browser.ObjectBody {
		t.Errorf("Mount() = %v, want body undefined", err)
	}
}

func TestShowError(t *testing.T) {
	h := browsertest.NewHost()
	a, _ := newTestApp(h)
	if err := a.Mount(); err != nil {
		t.Fatalf("Mount() = %v, want nil error", err)
	}

	a.ShowError(errors.New("boom"))
	status := h.Win.Doc.BodyEl.Children[0]
	if got, want := status.Text, "Run error: boom"; got != want {
		t.Errorf("status text = %q, want %q", got, want)
	}
	if got, want := status.Attrs["class"], "error"; got != want {
		t.Errorf("status class = %q, want %q", got, want)
	}
}

func TestShowErrorBeforeMount(t *testing.T) {
	h := browsertest.NewHost(browsertest.WithoutBody())
	a, hook := newTestApp(h)

	a.ShowError(errors.New("boom"))
	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("no log entry written")
	}
	if got, want := entry.Level, logrus.ErrorLevel; got != want {
		t.Errorf("log level = %v, want %v", got, want)
	}
	if got := fmt.Sprint(entry.Data[logrus.ErrorKey]); got != "boom" {
		t.Errorf("logged error = %q, want %q", got, "boom")
	}
}

func TestStartRendersFrames(t *testing.T) {
	h := browsertest.NewHost()
	a, _ := newTestApp(h)
	if err := a.Mount(); err != nil {
		t.Fatalf("Mount() = %v, want nil error", err)
	}

	if err := a.Start(); err != nil {
		t.Fatalf("Start() = %v, want nil error", err)
	}
	for i := 0; i < 3; i++ {
		if got := h.Flush(); got != 1 {
			t.Fatalf("Flush() ran %d callbacks, want 1", got)
		}
	}
	if got := a.Frames(); got != 3 {
		t.Errorf("Frames() = %d, want 3", got)
	}
	if got, want := h.Win.Doc.BodyEl.Children[0].Text, "frame 3"; got != want {
		t.Errorf("status text = %q, want %q", got, want)
	}
	if got := h.Win.Pending(); got != 1 {
		t.Errorf("Pending() = %d, want 1", got)
	}
}

func TestStartWithoutWindow(t *testing.T) {
	h := browsertest.NewHost()
	a, _ := newTestApp(h)
	if err := a.Mount(); err != nil {
		t.Fatalf("Mount() = %v, want nil error", err)
	}

	h.Win = nil
	err := a.Start()
	var absent *browser.AbsentError
	if !errors.As(err, &absent) || absent.Object != browser.ObjectWindow {
		t.Errorf("Start() = %v, want window undefined", err)
	}
}
