package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/pdftools/pdf-extract-mcp/internal/config"
	"github.com/pdftools/pdf-extract-mcp/internal/extract"
	"github.com/pdftools/pdf-extract-mcp/internal/mcptools"

	clirender "github.com/pdftools/pdf-extract-mcp/internal/cli"
)

// Version information (set during build)
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveMode := false

	app := &cli.App{
		Name:    "pdf-extract-mcp",
		Usage:   "Extract text and images from PDF files, as a CLI or an MCP server",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate),
		Commands: []*cli.Command{
			textCommand(),
			imagesCommand(),
			allCommand(),
			serveCommand(&serveMode),
			versionCommand(),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		// In serve (stdio) mode stdout and stderr belong to the MCP
		// protocol, so nothing is printed.
		if !serveMode {
			reportError(err)
		}
		os.Exit(1)
	}
}

var (
	outputDirFlag = &cli.StringFlag{
		Name:    "output-dir",
		Aliases: []string{"o"},
		Usage:   "Directory for image files (defaults to the PDF's directory)",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "png",
		Usage:   "Image encoding (png or jpeg)",
	}
	dpiFlag = &cli.IntFlag{
		Name:    "dpi",
		Aliases: []string{"d"},
		Value:   extract.DefaultDPI,
		Usage:   "Rasterization resolution in dots per inch",
	}
	base64Flag = &cli.BoolFlag{
		Name:    "base64",
		Aliases: []string{"b"},
		Usage:   "Return images inline as base64 instead of writing files",
	}
	jsonFlag = &cli.BoolFlag{
		Name:    "json",
		Aliases: []string{"j"},
		Usage:   "Emit pretty-printed JSON instead of the text report",
	}
	pagesFlag = &cli.StringFlag{
		Name:    "pages",
		Aliases: []string{"p"},
		Value:   "all",
		Usage:   "Page selection, e.g. '1-5', '1,3,5' or 'all'",
	}
)

// pdfPathArg returns the required positional PDF path.
func pdfPathArg(c *cli.Context) (string, error) {
	path := c.Args().First()
	if path == "" {
		return "", fmt.Errorf("missing required PDF path argument")
	}
	return path, nil
}

func textCommand() *cli.Command {
	return &cli.Command{
		Name:      "text",
		Usage:     "Extract text and metadata from a PDF",
		ArgsUsage: "<pdf-path>",
		Flags:     []cli.Flag{pagesFlag, jsonFlag},
		Action: func(c *cli.Context) error {
			path, err := pdfPathArg(c)
			if err != nil {
				return err
			}
			extractor := extract.New(config.NewCLILogger())
			result, err := extractor.Text(c.Context, path, c.String("pages"))
			if err != nil {
				return err
			}
			return clirender.NewRenderer(os.Stdout, c.Bool("json")).Text(result)
		},
	}
}

func imagesCommand() *cli.Command {
	return &cli.Command{
		Name:      "images",
		Usage:     "Render PDF pages to images and extract embedded images",
		ArgsUsage: "<pdf-path>",
		Flags:     []cli.Flag{outputDirFlag, formatFlag, dpiFlag, base64Flag, jsonFlag, pagesFlag},
		Action: func(c *cli.Context) error {
			path, err := pdfPathArg(c)
			if err != nil {
				return err
			}
			opts, err := extractOptions(c)
			if err != nil {
				return err
			}
			extractor := extract.New(config.NewCLILogger())
			result, err := extractor.Images(c.Context, path, opts)
			if err != nil {
				return err
			}
			return clirender.NewRenderer(os.Stdout, c.Bool("json")).Images(result)
		},
	}
}

func allCommand() *cli.Command {
	return &cli.Command{
		Name:      "all",
		Usage:     "Extract text and images from a PDF in one pass",
		ArgsUsage: "<pdf-path>",
		Flags:     []cli.Flag{outputDirFlag, formatFlag, dpiFlag, jsonFlag, pagesFlag},
		Action: func(c *cli.Context) error {
			path, err := pdfPathArg(c)
			if err != nil {
				return err
			}
			opts, err := extractOptions(c)
			if err != nil {
				return err
			}
			extractor := extract.New(config.NewCLILogger())
			result, err := extractor.All(c.Context, path, opts)
			if err != nil {
				return err
			}
			return clirender.NewRenderer(os.Stdout, c.Bool("json")).Combined(result)
		},
	}
}

func serveCommand(serveMode *bool) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run as an MCP server over stdio",
		Action: func(c *cli.Context) error {
			*serveMode = true
			logger, closer := config.NewServeLogger()
			if closer != nil {
				defer func() { _ = closer.Close() }()
			}
			logger.WithField("version", Version).Debug("Starting stdio server")
			return mcptools.ServeStdio(logger, Version)
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(c *cli.Context) error {
			fmt.Printf("pdf-extract-mcp version %s\n", Version)
			fmt.Printf("Commit: %s\n", Commit)
			fmt.Printf("Built: %s\n", BuildDate)
			return nil
		},
	}
}

func extractOptions(c *cli.Context) (extract.Options, error) {
	format, err := extract.ParseFormat(c.String("format"))
	if err != nil {
		return extract.Options{}, err
	}
	return extract.Options{
		OutputDir: c.String("output-dir"),
		Format:    format,
		DPI:       c.Int("dpi"),
		Inline:    c.Bool("base64"),
		Pages:     c.String("pages"),
	}, nil
}

// reportError prints the failure to stderr. With PDF_EXTRACT_DEBUG set the
// full wrapped error chain is included.
func reportError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if config.Debug() {
		for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
			fmt.Fprintf(os.Stderr, "  caused by: %v\n", cause)
		}
	}
}
