package main

import (
	"context"
	"flag"
	"os"
	"path"
	"strconv"

	trabalhista "github.com/gildoamaral/o-trabalhante-calculadora-trabalhista"
	"github.com/gildoamaral/o-trabalhante-calculadora-trabalhista/cmd"
	"github.com/gildoamaral/o-trabalhante-calculadora-trabalhista/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

func main() {
	completion().Complete("clt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	if err := cmd.Setup(); err != nil {
		log.Fatal(err)
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion. It is enabled with
// COMP_INSTALL=1 clt.
func completion() *complete.Command {
	years := predict.Set(lo.Map(trabalhista.TaxYears(), func(y int, _ int) string { return strconv.Itoa(y) }))
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ano":       years,
			"tabela":    predict.Files("*.yaml"),
			"json":      predict.Nothing,
			"log.level": predict.Set{"debug", "info", "warning", "error"},
		},
		Sub: map[string]*complete.Command{
			"ferias": {Flags: map[string]complete.Predictor{
				"salario":     predict.Something,
				"dias":        predict.Something,
				"vender":      predict.Nothing,
				"dependentes": predict.Something,
				"inicio":      predict.Something,
				"fim":         predict.Something,
				"faltas":      predict.Something,
			}},
			"decimo": {Flags: map[string]complete.Predictor{
				"salario":       predict.Something,
				"meses":         predict.Set{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"},
				"dependentes":   predict.Something,
				"admissao":      predict.Something,
				"ate":           predict.Something,
				"parcela-unica": predict.Nothing,
			}},
			"inss": {Flags: map[string]complete.Predictor{
				"base": predict.Something,
			}},
			"irrf": {Flags: map[string]complete.Predictor{
				"base":        predict.Something,
				"inss":        predict.Something,
				"dependentes": predict.Something,
			}},
			"tabelas": {},
			"topic": {
				Flags: map[string]complete.Predictor{"list": predict.Nothing},
				Args:  predict.Set(topics),
			},
		},
	}
}
