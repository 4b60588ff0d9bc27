package main

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-gmapi/pkg/scripts"
	"github.com/goliatone/go-gmapi/pkg/widget"
)

type widgetCmd struct {
	mapFlags
	Name    string `arg:"--name" default:"map" help:"widget name, used as the element id"`
	Width   int    `arg:"--width" default:"500" help:"width in pixels"`
	Height  int    `arg:"--height" default:"400" help:"height in pixels"`
	Scripts bool   `arg:"--scripts" help:"prepend the loader and jQuery script tags"`
}

func (c *widgetCmd) run(e *env) error {
	m, err := c.build()
	if err != nil {
		return err
	}
	w, err := widget.New(e.settings.WidgetOptions()...)
	if err != nil {
		return err
	}

	if c.Scripts {
		helper, err := scripts.New(e.settings.ScriptOptions()...)
		if err != nil {
			return err
		}
		jsapi, err := helper.JSAPI(nil)
		if err != nil {
			return err
		}
		for _, tag := range []scripts.ScriptTag{jsapi, helper.JQuery(scripts.JQueryRequest{})} {
			html, err := helper.Render(tag)
			if err != nil {
				return err
			}
			fmt.Fprintln(e.stdout, html)
		}
	}

	html, err := w.Render(c.Name, m, widget.Attrs{
		"width":  strconv.Itoa(c.Width),
		"height": strconv.Itoa(c.Height),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.stdout, html)
	return err
}
