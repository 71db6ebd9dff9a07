package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/sanity-io/litter"

	"github.com/funvibe/sumtype/internal/config"
	"github.com/funvibe/sumtype/internal/diagnostics"
	"github.com/funvibe/sumtype/internal/lint"
	"github.com/funvibe/sumtype/internal/samples"
	"github.com/funvibe/sumtype/pkg/enum"
)

const usage = `Usage: sumtype <command> [flags]

Commands:
  check [-config file] [-format text|json] [packages]
                                    report non-exhaustive type switches over sealed interfaces
  describe [-dump] [name...]        print registered enumerations with their fingerprints
  selfcheck [-v]                    compile every sample matcher and run the dispatch scenario
  version                           print the version
`

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
	log.SetPrefix("sumtype: ")

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return config.ExitUsage
	}

	switch args[0] {
	case "check":
		return handleCheck(args[1:], stdout, stderr)
	case "describe":
		return handleDescribe(args[1:], stdout, stderr)
	case "selfcheck":
		return handleSelfCheck(args[1:], stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "sumtype %s\n", config.Version)
		return config.ExitOK
	case "help", "-help", "--help", "-h":
		fmt.Fprint(stdout, usage)
		return config.ExitOK
	}

	fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
	return config.ExitUsage
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func handleCheck(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("check", stderr)
	configPath := fs.String("config", "", "path to sumtype.yaml (default: searched upwards from the working directory)")
	format := fs.String("format", "", "output format, text or json (default: from the config file)")
	if err := fs.Parse(args); err != nil {
		return config.ExitUsage
	}
	switch *format {
	case "", config.FormatText, config.FormatJSON:
	default:
		fmt.Fprintf(stderr, "invalid value %q for flag -format: want text or json\n", *format)
		fs.Usage()
		return config.ExitUsage
	}

	cfg, dir, err := loadConfig(*configPath)
	if err != nil {
		log.Print(err)
		return config.ExitUsage
	}
	if *format != "" {
		cfg.Output.Format = *format
	}

	patterns := fs.Args()
	if len(patterns) == 0 {
		patterns = cfg.Packages
	}

	pkgs, err := lint.Load(dir, patterns...)
	if err != nil {
		log.Print(err)
		return config.ExitUsage
	}

	found := lint.NewChecker(cfg).Check(pkgs)
	if err := report(stdout, cfg, found); err != nil {
		log.Print(err)
		return config.ExitUsage
	}
	if len(found) > 0 {
		return config.ExitFindings
	}
	return config.ExitOK
}

// loadConfig returns the configuration and the directory packages are
// resolved against.
func loadConfig(path string) (*config.Config, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		path, err = config.FindConfig(wd)
		if err != nil {
			return nil, "", err
		}
		if path == "" {
			return config.Default(), wd, nil
		}
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, filepath.Dir(path), nil
}

type jsonFinding struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func report(w io.Writer, cfg *config.Config, found []*diagnostics.DiagnosticError) error {
	if cfg.Output.Format == config.FormatJSON {
		out := make([]jsonFinding, 0, len(found))
		for _, d := range found {
			out = append(out, jsonFinding{
				File:    d.Pos.Filename,
				Line:    d.Pos.Line,
				Column:  d.Pos.Column,
				Code:    string(d.Code),
				Message: d.Message,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	color := useColor(cfg.Output.Color, w)
	for _, d := range found {
		code := string(d.Code)
		if color {
			code = "\x1b[1;31m" + code + "\x1b[0m"
		}
		if _, err := fmt.Fprintf(w, "%s: %s: %s\n", d.Pos, code, d.Message); err != nil {
			return err
		}
	}
	return nil
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func handleDescribe(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("describe", stderr)
	dump := fs.Bool("dump", false, "dump the variant structure and a sample value of every variant")
	if err := fs.Parse(args); err != nil {
		return config.ExitUsage
	}

	names := fs.Args()
	if len(names) == 0 {
		names = enum.DefaultRegistry.Names()
	}

	status := config.ExitOK
	for _, name := range names {
		e, ok := enum.DefaultRegistry.Lookup(name)
		if !ok {
			log.Printf("no enumeration named %s", name)
			status = config.ExitUsage
			continue
		}
		fmt.Fprintln(stdout, e)
		fmt.Fprintf(stdout, "  fingerprint: %s\n", e.Fingerprint())
		if *dump {
			sq := litter.Options{HidePrivateFields: true}
			fmt.Fprintln(stdout, sq.Sdump(e.Variants()))
			if values := samples.Examples(name); len(values) > 0 {
				fmt.Fprintln(stdout, sq.Sdump(dumpValues(values)))
			}
		}
	}
	return status
}

// dumpedValue is the exported shape litter prints for an enum value.
type dumpedValue struct {
	Tag    string
	Text   string
	Fields []interface{}
}

func dumpValues(values []enum.Value) []dumpedValue {
	out := make([]dumpedValue, 0, len(values))
	for _, v := range values {
		out = append(out, dumpValue(v))
	}
	return out
}

func dumpValue(v enum.Value) dumpedValue {
	d := dumpedValue{Tag: v.Tag(), Text: v.String()}
	for _, f := range v.Fields() {
		if inner, ok := f.(enum.Value); ok {
			f = dumpValue(inner)
		}
		d.Fields = append(d.Fields, f)
	}
	return d
}

func handleSelfCheck(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("selfcheck", stderr)
	verbose := fs.Bool("v", false, "log each step")
	if err := fs.Parse(args); err != nil {
		return config.ExitUsage
	}

	var logger *log.Logger
	if *verbose {
		logger = log.New(stderr, "", 0)
	}
	if err := samples.SelfCheck(logger); err != nil {
		log.Printf("selfcheck failed: %s", err)
		return config.ExitFindings
	}
	fmt.Fprintln(stdout, "selfcheck ok")
	return config.ExitOK
}
