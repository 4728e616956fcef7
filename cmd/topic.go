package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/gildoamaral/o-trabalhante-calculadora-trabalhista/docs"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `clt topic [-list] [<topic>...]

Show documentation for the given topics, "*" for all of them.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "List the available topics.")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		topics, err := docs.GetAllTopics()
		if err != nil {
			return fail(err)
		}
		for _, topic := range topics {
			title, err := docs.Title(topic)
			if err != nil {
				return fail(err)
			}
			fmt.Fprintf(stdout, "%-16s %s\n", topic, title)
		}
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		log.Errorf("Error reading doc: %v", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
