package cmd

import (
	"github.com/df07/go-montecarlo-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("raytracer")

// setupLogging maps the global -v/-vv switches to a log level; -vv wins.
func setupLogging(ctx *cli.Context) {
	switch {
	case ctx.GlobalBool("vv"):
		log.SetLevel(log.Debug)
	case ctx.GlobalBool("v"):
		log.SetLevel(log.Info)
	}
}
