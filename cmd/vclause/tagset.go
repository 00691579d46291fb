package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/vclause/tagset"
)

func tagsetCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "tagset",
		Usage: "print the tables of the active tagset",
		Flags: []cli.Flag{tagsetFlag()},
		Action: func(cCtx *cli.Context) error {
			ts, err := loadTagset(cCtx.String("tagset"))
			if err != nil {
				return err
			}

			printTagset(ts.Describe(), ui)
			return nil
		},
	}
}

func printTagset(d tagset.Description, ui UI) {
	fmt.Fprintf(ui.Out, "tagset %s\n", d.Name)

	for _, section := range []struct {
		name  string
		rules []tagset.RuleDescription
	}{
		{"category", d.Categories},
		{"tense", d.Tenses},
		{"aux", d.Auxiliaries},
	} {
		for _, r := range section.rules {
			fmt.Fprintf(ui.Out, "    %-10s %-12s %s\n", section.name, r.Value, r.Pattern)
		}
	}

	rel := d.Relations
	for _, kv := range [][2]string{
		{"subject", rel.Subject},
		{"object", rel.Object},
		{"predicate", rel.Predicate},
		{"root", rel.Root},
		{"verb_chain", rel.VerbChain},
		{"clausal_complement", rel.ClausalComplement},
	} {
		fmt.Fprintf(ui.Out, "    %-10s %-12s %s\n", "relation", kv[0], kv[1])
	}

	fmt.Fprintf(ui.Out, "    do lemma         %s\n", d.DoLemma)
	fmt.Fprintf(ui.Out, "    complementizers  %s\n", strings.Join(d.Complementizers, ","))
	fmt.Fprintf(ui.Out, "    non prepositions %s\n", strings.Join(d.NonPrepositions, ","))
	fmt.Fprintf(ui.Out, "    free choice      %s\n", d.FreeChoice)
}
