// Package pipeline runs the analysis stages over a loaded table:
// explore → aggregate → render, each finishing before the next starts.
package pipeline

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"irisplot/pkg/aggregate"
	"irisplot/pkg/config"
	"irisplot/pkg/data"
	"irisplot/pkg/explore"
	"irisplot/pkg/render"
)

// Fixed commentary printed with the report.
const (
	LoadedMessage = "Dataset loaded successfully!"
	Observation   = "Observation: Setosa generally has smaller petal dimensions than Versicolor and Virginica."
)

// SummaryObservations closes the report.
var SummaryObservations = []string{
	"- Setosa has smaller petal and sepal sizes.",
	"- Virginica has the largest petal and sepal sizes.",
	"- Scatter plots show clear separation among species.",
	"- The dataset is suitable for classification tasks.",
}

// Pipeline chains the post-load stages.
type Pipeline struct {
	cfg      config.Config
	out      io.Writer
	log      logrus.FieldLogger
	explorer *explore.Explorer
	renderer *render.Renderer

	agg   *aggregate.Aggregate
	paths []string
}

// New wires the stages to cfg, writing the report to out and diagnostics to
// log.
func New(cfg config.Config, out io.Writer, log logrus.FieldLogger) *Pipeline {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{
		cfg:      cfg,
		out:      out,
		log:      log,
		explorer: explore.New(out, cfg),
		renderer: render.New(cfg, log),
	}
}

type step struct {
	name string
	run  func(*data.Table) error
}

// Run executes every stage in order over t and stops at the first failure.
func (p *Pipeline) Run(t *data.Table) error {
	if err := p.cfg.Validate(); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "%s\n\n", LoadedMessage)

	steps := []step{
		{"explore", p.explorer.Report},
		{"aggregate", p.aggregate},
		{"render", p.render},
		{"summary", p.summary},
	}
	for _, s := range steps {
		log := p.log.WithField("stage", s.name)
		log.Debug("stage started")
		if err := s.run(t); err != nil {
			return errors.Wrapf(err, "stage %s", s.name)
		}
		log.Debug("stage finished")
	}
	return nil
}

// Aggregate returns the group means computed by the last Run.
func (p *Pipeline) Aggregate() *aggregate.Aggregate { return p.agg }

// Artifacts returns the chart paths written by the last Run.
func (p *Pipeline) Artifacts() []string { return p.paths }

func (p *Pipeline) aggregate(t *data.Table) error {
	agg, err := aggregate.BySpecies(t)
	if err != nil {
		return err
	}
	p.agg = agg
	if err := p.explorer.GroupMeans(agg); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "%s\n\n", Observation)
	return nil
}

func (p *Pipeline) render(t *data.Table) error {
	paths, err := p.renderer.RenderAll(t, p.agg)
	if err != nil {
		return err
	}
	p.paths = paths
	p.log.WithFields(logrus.Fields{"dir": p.cfg.OutputDir, "charts": len(paths)}).Info("charts written")
	fmt.Fprintf(p.out, "All plots saved in the '%s' folder.\n\n", p.cfg.OutputDir)
	return nil
}

func (p *Pipeline) summary(*data.Table) error {
	fmt.Fprintln(p.out, "Summary of Observations:")
	for _, line := range SummaryObservations {
		fmt.Fprintln(p.out, line)
	}
	_, err := fmt.Fprintln(p.out)
	return err
}
