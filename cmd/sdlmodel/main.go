package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hanpama/sdlmodel/internal/build"
	"github.com/hanpama/sdlmodel/internal/model"
	"github.com/hanpama/sdlmodel/internal/otel"
)

const rootUsage = `sdlmodel — SDL schema model compiler

USAGE:
  sdlmodel <command> [flags]

COMMANDS:
  compile          Parse an SDL file and emit its schema model
  check            Parse an SDL file and report diagnostics
  render           Parse an SDL file and print canonical SDL
  help             Show help for any command
`

const compileUsage = `compile FLAGS:
  -schema <file>          SDL schema file (required)
  -out <file>             Write the model to file (default: stdout)
  -format <json|yaml>     Output format (default: json)
  -pretty                 Pretty-print JSON output
  -otel.endpoint <addr>   OTLP collector endpoint
  -otel.service <name>    OpenTelemetry service name (default: sdlmodel)
`

const checkUsage = `check FLAGS:
  -schema <file>   SDL schema file (required)
  (Exits non-zero with a file:line:column diagnostic on failure)
`

const renderUsage = `render FLAGS:
  -schema <file>   SDL schema file (required)
  -out <file>      Write rendered SDL to file (default: stdout)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("sdlmodel", flag.ContinueOnError)
	global.SetOutput(new(bytes.Buffer)) // silence automatic output
	if err := global.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, rootUsage)
		return err
	}
	remaining := global.Args()
	if len(remaining) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]
	switch cmd {
	case "compile":
		return cmdCompile(cmdArgs)
	case "check":
		return cmdCheck(cmdArgs)
	case "render":
		return cmdRender(cmdArgs)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "compile":
		fmt.Print(compileUsage)
	case "check":
		fmt.Print(checkUsage)
	case "render":
		fmt.Print(renderUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

func cmdCompile(args []string) error {
	schemaFile := ""
	outFile := ""
	format := "json"
	pretty := false
	otelEndpoint := ""
	otelService := "sdlmodel"

	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&schemaFile, "schema", schemaFile, "SDL schema file")
	fs.StringVar(&outFile, "out", outFile, "Write the model to file")
	fs.StringVar(&format, "format", format, "Output format")
	fs.BoolVar(&pretty, "pretty", pretty, "Pretty-print JSON output")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, compileUsage)
		return err
	}
	if schemaFile == "" {
		fmt.Fprint(os.Stderr, compileUsage)
		return fmt.Errorf("-schema is required")
	}

	shutdown, err := otel.Setup(otelEndpoint, otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	m, err := compileSpan(schemaFile)
	if err != nil {
		return err
	}

	var out []byte
	switch format {
	case "json":
		if pretty {
			out, err = json.MarshalIndent(m, "", "  ")
		} else {
			out, err = json.Marshal(m)
		}
		out = append(out, '\n')
	case "yaml":
		out, err = yaml.Marshal(m)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}

	if outFile == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(outFile, out, 0644)
}

func compileSpan(schemaFile string) (*model.Model, error) {
	_, span := otel.Tracer().Start(context.Background(), "sdlmodel.compile")
	defer span.End()
	span.SetAttributes(attribute.String("schema.file", schemaFile))

	m, err := build.Parse(schemaFile)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("schema.types", len(m.Types)))
	return m, nil
}

func cmdCheck(args []string) error {
	schemaFile := ""
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&schemaFile, "schema", schemaFile, "SDL schema file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, checkUsage)
		return err
	}
	if schemaFile == "" {
		fmt.Fprint(os.Stderr, checkUsage)
		return fmt.Errorf("-schema is required")
	}

	m, err := build.Parse(schemaFile)
	if err != nil {
		return err
	}
	log.Printf("%s: ok (%d types)", schemaFile, len(m.Types))
	return nil
}

func cmdRender(args []string) error {
	schemaFile := ""
	outFile := ""
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&schemaFile, "schema", schemaFile, "SDL schema file")
	fs.StringVar(&outFile, "out", outFile, "Write rendered SDL to file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, renderUsage)
		return err
	}
	if schemaFile == "" {
		fmt.Fprint(os.Stderr, renderUsage)
		return fmt.Errorf("-schema is required")
	}

	m, err := build.Parse(schemaFile)
	if err != nil {
		return err
	}
	sdl := model.Render(m)
	if outFile == "" {
		fmt.Print(sdl)
		return nil
	}
	return os.WriteFile(outFile, []byte(sdl), 0644)
}

// reportError prints parse failures as file:line:column diagnostics,
// colorized when stderr is a terminal.
func reportError(err error) {
	var perr *build.ParseError
	if errors.As(err, &perr) && isatty.IsTerminal(os.Stderr.Fd()) {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, perr.Error())
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
