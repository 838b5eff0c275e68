// Command aotjsongen generates aotjson converters for struct types.
//
// Typical use from a go:generate directive:
//
//	//go:generate go run github.com/viant/aotjson/cmd/aotjsongen -type=Location,Event -output=model_aotjson.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/viant/aotjson/internal/gen"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "aotjsongen:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("aotjsongen", flag.ContinueOnError)
	dir := flags.String("dir", ".", "package directory")
	typeNames := flags.String("type", "", "comma-separated list of struct type names")
	output := flags.String("output", "", "output file name; default <package>_aotjson.go")
	caseFormat := flags.String("case", "", "case format for untagged fields (lowerCamel, lowerUnderscore, upperCamel, none, ...)")
	configPath := flags.String("config", "", "YAML config file")
	debug := flags.Bool("debug", false, "verbose logging and plan dump")
	if err := flags.Parse(args); err != nil {
		return err
	}

	config := &gen.Config{}
	if *configPath != "" {
		loaded, err := gen.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		config = loaded
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			config.Dir = *dir
		case "type":
			config.Types = strings.Split(*typeNames, ",")
		case "output":
			config.Output = *output
		case "case":
			config.CaseFormat = *caseFormat
		case "debug":
			config.Debug = *debug
		}
	})

	logger, err := newLogger(config.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	generator, err := gen.New(config, gen.WithLogger(logger))
	if err != nil {
		return err
	}
	_, err = generator.Generate()
	return err
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
