package cmd

import "github.com/urfave/cli"

// NewApp builds the command line application
func NewApp() *cli.App {
	// -v is the verbose flag, so the version flag keeps only its long name
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render scenes with a Whitted-style ray tracer"
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
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Render a built-in scene, a scene from the scene directory (json:<name>) or a
JSON scene file. Width and height override the scene's camera; the output
format follows --format or the extension of --out.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene id or json:<name>",
				},
				cli.StringFlag{
					Name:  "file, f",
					Usage: "path to a JSON scene file, takes precedence over --scene",
				},
				cli.StringFlag{
					Name:  "dir",
					Value: "scenes",
					Usage: "directory searched for json:<name> scenes",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width (0 keeps the scene default)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height (0 keeps the scene default)",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum number of reflection bounces (default: the scene's setting)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.ppm",
					Usage: "image filename for the rendered frame",
				},
				cli.StringFlag{
					Name:  "format",
					Usage: "ppm or png (default: from the --out extension)",
				},
			},
			Action: RenderFrame,
		},
		{
			Name:  "scenes",
			Usage: "list available scenes",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir",
					Value: "scenes",
					Usage: "directory to scan for JSON scenes",
				},
			},
			Action: ListScenes,
		},
	}

	return app
}
