package main

import (
	"os"

	"github.com/df07/go-montecarlo-raytracer/cmd"
	"github.com/df07/go-montecarlo-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("main")

func newApp() *cli.App {
	// -v is the verbosity switch, so the version flag keeps only its long name
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render sphere scenes with Monte Carlo ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "list-scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a built-in scene to a plain-text PPM (P3) or PNG image.

Size, sampling and depth default to the values recommended by the scene.
Use "-o -" to stream the image to standard output.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene name (see list-scenes)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width, 0 for the scene default",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height, 0 to follow the camera aspect ratio",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel, 0 for the scene default",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum bounces per path, scene default when omitted (0 renders black)",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "parallel scanline workers, 0 for one per CPU",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "base random seed",
				},
				cli.Float64Flag{
					Name:  "aperture",
					Usage: "override the camera lens diameter",
				},
				cli.Float64Flag{
					Name:  "vfov",
					Usage: "override the vertical field of view in degrees",
				},
				cli.BoolFlag{
					Name:  "normals",
					Usage: "shade by surface normal instead of tracing light",
				},
				cli.StringFlag{
					Name:  "format",
					Value: "ppm",
					Usage: "image format: ppm or png",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output file, - for stdout (default output/<scene>/render_<timestamp>.<format>)",
				},
			},
			Action: cmd.RenderFrame,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
