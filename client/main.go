package main

import (
	"context"
	"time"

	"github.com/hulkholden/gowebdom/client/app"
	"github.com/hulkholden/gowebdom/client/browser"
	"github.com/sirupsen/logrus"
)

const pageLoadTimeout = 30 * time.Second

func main() {
	log := logrus.New()
	log.Info("Started client!")

	a := app.New(browser.NewAccessor(browser.DefaultHost()), log)

	ctx, cancel := context.WithTimeout(context.Background(), pageLoadTimeout)
	_, err := a.WaitForBody(ctx)
	cancel()
	if err != nil {
		log.WithError(err).Error("Page did not load")
		return
	}
	if err := a.Mount(); err != nil {
		log.WithError(err).Error("Mount() failed")
		return
	}
	if err := a.Start(); err != nil {
		log.WithError(err).Error("Start() failed")
		a.ShowError(err)
	}

	<-make(chan bool)
}
