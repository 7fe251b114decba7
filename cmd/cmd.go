// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// serveCommand runs the MCP server over the configured transport
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the MCP server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.StringFlag{
				Name:    "transport",
				Aliases: []string{"t"},
				Usage:   "Transport to serve over (http or stdio)",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to bind the HTTP transport to",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to bind the HTTP transport to",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Action: r.Serve,
	}
}

// toolsCommand lists the registered tool catalog
func toolsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tools",
		Usage: "List registered tools",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "Disable styling",
			},
		},
		Action: r.Tools,
	}
}

// callCommand invokes a single tool in-process for debugging
func callCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "call",
		Usage: "Invoke a tool and print its result",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "tool",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "args",
				Aliases: []string{"a"},
				Usage:   "Tool arguments as a JSON object",
				Value:   "{}",
			},
		},
		Action: r.Call,
	}
}

// configCommand handles configuration file management
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage configuration",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write an example config file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Destination path",
						Value: "config.toml",
					},
				},
				Action: r.ConfigInit,
			},
		},
	}
}

// versionCommand prints the server version
func versionCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Print the version",
		Action: r.Version,
	}
}
