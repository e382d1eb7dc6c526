// Package main implements a converter between raw binary memory images
// and the Intel HEX file format
package main

import (
	"errors"
	"os"

	"github.com/retroenv/ihexgo/internal/cli"
	"github.com/retroenv/ihexgo/internal/config"
	"github.com/retroenv/ihexgo/internal/fileprocessor"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, err := cli.ParseFlags()
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	for _, file := range files {
		opts.Input = file
		if err := fileprocessor.ProcessFile(logger, opts); err != nil {
			logger.Error("Conversion failed", log.Err(err))
		}
	}
}
