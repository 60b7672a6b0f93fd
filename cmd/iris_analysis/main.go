package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"irisplot/pkg/config"
	"irisplot/pkg/data"
	"irisplot/pkg/pipeline"
)

// loader produces the table the run works on.
type loader func() (*data.Table, error)

// The program takes no flags or environment: the report goes to stdout,
// charts to ./plots and diagnostics to stderr.
func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	os.Exit(run(config.Default(), data.Load, os.Stdout, logrus.StandardLogger()))
}

// run executes the whole analysis and returns the process exit status: 0 on
// success, 1 when loading or any later stage fails. A load failure prints
// the reason and writes no charts.
func run(cfg config.Config, load loader, out io.Writer, log logrus.FieldLogger) int {
	// ---- Load ----
	table, err := load()
	if err != nil {
		fmt.Fprintln(out, "Error loading dataset:", err)
		log.WithError(err).Error("dataset unavailable, nothing written")
		return 1
	}
	log.WithField("rows", table.Len()).Debug("dataset loaded")

	// ---- Explore, aggregate, render ----
	if err := pipeline.New(cfg, out, log).Run(table); err != nil {
		log.Errorf("%+v", err)
		return 1
	}
	return 0
}
