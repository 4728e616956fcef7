// Package cmd implements the clt command line application: vacation pay, thirteenth salary
// and the INSS and IRRF withholdings behind them.
package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	trabalhista "github.com/gildoamaral/o-trabalhante-calculadora-trabalhista"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

// Commands lists every clt subcommand, in the order they are presented.
var Commands = []subcommands.Command{
	&feriasCmd{},
	&decimoCmd{},
	&inssCmd{},
	&irrfCmd{},
	&tabelasCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	taxYear    = flag.Int("ano", trabalhista.DefaultTaxYear, "Tax year whose INSS and IRRF tables apply.")
	tableFile  = flag.String("tabela", "", "Path to a YAML tax year table. Overrides -ano.")
	jsonOutput = flag.Bool("json", false, "Print results as JSON instead of markdown.")
	logLevel   = flag.String("log.level", "warning", "Log level (debug, info, warning, error).")
)

// stdout is where results are printed.
var stdout io.Writer = os.Stdout

// Setup configures the application from the global flags. It must be called after the flags
// are parsed.
func Setup() error {
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	return nil
}

// NewEngine returns the engine for the tables selected by -tabela, or -ano.
func NewEngine() (*trabalhista.Engine, error) {
	if *tableFile == "" {
		log.Debugf("using built-in tables of %d", *taxYear)
		return trabalhista.NewEngineForYear(*taxYear)
	}

	f, err := os.Open(*tableFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open tax table: %w", err)
	}
	defer f.Close()
	ty, err := trabalhista.LoadTaxYear(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", *tableFile, err)
	}
	log.WithFields(log.Fields{"file": *tableFile, "year": ty.Year}).Info("using tax table file")
	return trabalhista.NewEngine(ty)
}

// printMarkdown renders md for the terminal. It falls back to the raw markdown when it cannot
// be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	log.Debugf("cannot render markdown: %v", err)
	fmt.Fprint(stdout, md)
}

func printJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// report prints v as JSON when -json is set, and md otherwise.
func report(md func() string, v any) subcommands.ExitStatus {
	if *jsonOutput {
		if err := printJSON(v); err != nil {
			log.Errorf("cannot encode result: %v", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(md())
	return subcommands.ExitSuccess
}

// fail logs err and returns the exit status matching it: a usage error for invalid inputs,
// a failure otherwise.
func fail(err error) subcommands.ExitStatus {
	log.Error(err)
	if errors.Is(err, trabalhista.ErrPrecondition) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
