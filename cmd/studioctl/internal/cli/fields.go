package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"thirdcoast.systems/studio/pkg/panel"
	"thirdcoast.systems/studio/pkg/utils/markdown"
)

type fieldDoc struct {
	Key         string      `yaml:"key" json:"key"`
	Label       string      `yaml:"label" json:"label"`
	Control     string      `yaml:"control" json:"control"`
	Min         *float64    `yaml:"min,omitempty" json:"min,omitempty"`
	Max         *float64    `yaml:"max,omitempty" json:"max,omitempty"`
	Integer     bool        `yaml:"integer,omitempty" json:"integer,omitempty"`
	Off         any         `yaml:"off,omitempty" json:"off,omitempty"`
	Keyword     string      `yaml:"keyword,omitempty" json:"keyword,omitempty"`
	MinKeyword  string      `yaml:"minKeyword,omitempty" json:"minKeyword,omitempty"`
	Options     []optionDoc `yaml:"options,omitempty" json:"options,omitempty"`
	Conditional bool        `yaml:"conditional,omitempty" json:"conditional,omitempty"`
	Help        string      `yaml:"help,omitempty" json:"help,omitempty"`
}

type optionDoc struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

type groupDoc struct {
	Name   string     `yaml:"name" json:"name"`
	Title  string     `yaml:"title" json:"title"`
	Fields []fieldDoc `yaml:"fields" json:"fields"`
}

type panelDoc struct {
	Name    string     `yaml:"name" json:"name"`
	Title   string     `yaml:"title" json:"title"`
	Surface string     `yaml:"surface" json:"surface"`
	Slot    string     `yaml:"slot" json:"slot"`
	Groups  []groupDoc `yaml:"groups" json:"groups"`
}

func describeField(f panel.Field) fieldDoc {
	d := fieldDoc{
		Key:         f.Key,
		Label:       f.Label,
		Control:     string(f.Control),
		Integer:     f.Integer,
		Off:         f.Off,
		Keyword:     f.Keyword,
		MinKeyword:  f.MinKeyword,
		Conditional: f.When != nil,
		Help:        markdown.PlainText(f.Help),
	}
	if f.Max > f.Min {
		lo, hi := f.Min, f.Max
		d.Min, d.Max = &lo, &hi
	}
	for _, o := range f.Options {
		d.Options = append(d.Options, optionDoc{Value: o.Value, Label: o.Label})
	}
	return d
}

func describePanel(p *panel.Panel) panelDoc {
	doc := panelDoc{Name: p.Name, Title: p.Title, Surface: string(p.Surface), Slot: string(p.Slot)}
	for _, g := range p.Groups {
		gd := groupDoc{Name: g.Name, Title: g.Title}
		for _, f := range g.Fields {
			gd.Fields = append(gd.Fields, describeField(f))
		}
		doc.Groups = append(doc.Groups, gd)
	}
	return doc
}

func newPanelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "panels",
		Short: "List the section panels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSURFACE\tSLOT\tTITLE")
			for _, name := range panel.Names() {
				p, err := panel.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name, p.Surface, p.Slot, p.Title)
			}
			return tw.Flush()
		},
	}
}

func newFieldsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields <panel>",
		Short: "Describe the controls of a panel as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := panel.Lookup(args[0])
			if err != nil {
				return err
			}
			doc := describePanel(p)
			if outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output JSON instead of YAML")
	return cmd
}
