package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-montecarlo-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes with their recommended settings.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name", "Description", "Size", "Samples/px", "Max depth", "Objects"})
	for _, info := range scene.ListScenes() {
		sc, err := scene.New(info.Name)
		if err != nil {
			return err
		}
		cfg := sc.SamplingConfig
		table.Append([]string{
			info.Name,
			info.Description,
			fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
			fmt.Sprintf("%d", cfg.SamplesPerPixel),
			fmt.Sprintf("%d", cfg.MaxDepth),
			fmt.Sprintf("%d", sc.GetPrimitiveCount()),
		})
	}
	table.Render()

	_, err := fmt.Fprint(ctx.App.Writer, buf.String())
	return err
}
