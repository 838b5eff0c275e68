package gen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
)

const filePerm = 0o644

// Generator writes converter source for the configured types.
type Generator struct {
	config *Config
	logger *zap.Logger
	// dump receives the plan when Debug is set.
	dump io.Writer
}

// Option customizes a Generator.
type Option func(g *Generator)

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithDumpWriter sets where the debug plan dump is written; the default is stderr.
func WithDumpWriter(w io.Writer) Option {
	return func(g *Generator) {
		g.dump = w
	}
}

// New creates a generator; config is initialized and validated.
func New(config *Config, opts ...Option) (*Generator, error) {
	config.Init()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{config: config, logger: zap.NewNop(), dump: os.Stderr}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Plan loads the package and plans its converters.
func (g *Generator) Plan() (*Plan, error) {
	g.logger.Info("loading package", zap.String("dir", g.config.Dir))
	pkg, err := LoadPackage(g.config.Dir)
	if err != nil {
		return nil, err
	}
	plan, err := Analyze(pkg, g.config.Types, g.config.caseFormat(), g.logger)
	if err != nil {
		return nil, err
	}
	if g.config.Debug {
		spew.Fdump(g.dump, plan)
	}
	return plan, nil
}

// Generate renders the plan and writes the output file. It returns the file path.
func (g *Generator) Generate() (string, error) {
	plan, err := g.Plan()
	if err != nil {
		return "", err
	}
	src, err := Render(plan)
	if err != nil {
		return "", err
	}
	output := g.outputPath(plan)
	if err = os.WriteFile(output, src, filePerm); err != nil {
		return "", fmt.Errorf("writing file %s: %w", output, err)
	}
	g.logger.Info("generated converters",
		zap.String("package", plan.PkgPath),
		zap.Int("types", len(plan.Types)),
		zap.String("output", output))
	return output, nil
}

func (g *Generator) outputPath(plan *Plan) string {
	output := g.config.Output
	if output == "" {
		output = plan.Package + "_aotjson.go"
	}
	if filepath.IsAbs(output) {
		return output
	}
	return filepath.Join(g.config.Dir, output)
}
