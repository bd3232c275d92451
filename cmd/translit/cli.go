package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/translit"
	"github.com/dmitrymomot/translit/middlewares"
	"github.com/dmitrymomot/translit/pkg/config"
	"github.com/dmitrymomot/translit/pkg/cyrillic"
	"github.com/dmitrymomot/translit/pkg/logger"
	"github.com/dmitrymomot/translit/pkg/urlsegment"
)

const (
	cmdConvert = "convert"
	cmdFiles   = "files"
	cmdServe   = "serve"

	asciiSuffix = ".ascii"
)

func cli(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := appEnv{stdin: stdin, stdout: stdout, stderr: stderr}
	if err := app.fromArgs(args); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, "translit:", err)
		}
		return 2
	}

	if err := app.run(ctx); err != nil {
		fmt.Fprintln(stderr, "translit:", err)
		return 1
	}
	return 0
}

type appEnv struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cmd        string
	configPath string
	config     *config.Config
	segment    bool
	id         int64
	jobs       int
	operands   []string

	// Set only when the matching flag was given on the command line.
	system *cyrillic.System
	iconv  *bool
}

func (app *appEnv) fromArgs(args []string) error {
	app.cmd = cmdConvert
	if len(args) > 0 && (args[0] == cmdFiles || args[0] == cmdServe) {
		app.cmd, args = args[0], args[1:]
	}

	fl := flag.NewFlagSet("translit "+app.cmd, flag.ContinueOnError)
	fl.SetOutput(app.stderr)

	var (
		system string
		iconv  bool
	)
	fl.StringVar(&app.configPath, "config", "", "YAML configuration file")
	fl.StringVar(&system, "system", "", "transliteration system: "+joinSystems())
	fl.BoolVar(&iconv, "iconv", false, "fold through the external ASCII normalizer")

	switch app.cmd {
	case cmdConvert:
		fl.BoolVar(&app.segment, "segment", false, "print URL segments instead of ASCII text")
		fl.Int64Var(&app.id, "id", 0, "record id used for fallback segments")
	case cmdFiles:
		fl.IntVar(&app.jobs, "j", 4, "number of files converted concurrently")
	}

	if err := fl.Parse(args); err != nil {
		return err
	}
	app.operands = fl.Args()

	if app.cmd == cmdFiles && len(app.operands) == 0 {
		return errors.New("files: at least one FILE is required")
	}
	if app.cmd == cmdServe && len(app.operands) > 0 {
		return fmt.Errorf("serve: unexpected arguments %q", app.operands)
	}
	if app.jobs < 0 {
		return fmt.Errorf("files: -j must not be negative, got %d", app.jobs)
	}

	var flagErr error
	fl.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "system":
			s, err := cyrillic.ParseSystem(system)
			if err != nil {
				flagErr = err
				return
			}
			app.system = &s
		case "iconv":
			app.iconv = &iconv
		}
	})
	return flagErr
}

// loadConfig reads file and environment settings, then applies flag overrides.
func (app *appEnv) loadConfig() error {
	cfg, err := config.Load(app.configPath)
	if err != nil {
		return err
	}
	if app.system != nil {
		cfg.Translit.System = *app.system
	}
	if app.iconv != nil {
		cfg.Translit.UseIconv = *app.iconv
	}
	app.config = cfg
	return nil
}

func (app *appEnv) run(ctx context.Context) error {
	if err := app.loadConfig(); err != nil {
		return err
	}

	switch app.cmd {
	case cmdFiles:
		return app.convertFiles(ctx)
	case cmdServe:
		return app.serve(ctx)
	default:
		return app.convert(ctx)
	}
}

// convert handles arguments, or stdin line by line when there are none.
func (app *appEnv) convert(ctx context.Context) error {
	tr := cyrillic.New(app.config.Translit)

	var gen *urlsegment.Generator
	if app.segment {
		gen = urlsegment.New(tr)
	}

	out := bufio.NewWriter(app.stdout)
	emit := func(line string) {
		if gen != nil {
			fmt.Fprintln(out, gen.Generate(ctx, app.id, line))
			return
		}
		fmt.Fprintln(out, tr.ToASCII(line))
	}

	if len(app.operands) > 0 {
		for _, arg := range app.operands {
			emit(arg)
		}
		return out.Flush()
	}

	sc := bufio.NewScanner(app.stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		emit(sc.Text())
	}
	if err := sc.Err(); err != nil {
		_ = out.Flush()
		return fmt.Errorf("read stdin: %w", err)
	}
	return out.Flush()
}

// convertFiles writes FILE.ascii for every operand, at most app.jobs at a time.
func (app *appEnv) convertFiles(ctx context.Context) error {
	tr := cyrillic.New(app.config.Translit)

	g, ctx := errgroup.WithContext(ctx)
	if app.jobs > 0 {
		g.SetLimit(app.jobs)
	}

	for _, path := range app.operands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return convertFile(tr, path)
		})
	}
	return g.Wait()
}

func convertFile(tr *cyrillic.Transliterator, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := os.WriteFile(path+asciiSuffix, []byte(tr.ToASCII(string(data))), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path+asciiSuffix, err)
	}
	return nil
}

func (app *appEnv) serve(ctx context.Context) error {
	cfg := app.config
	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())

	if !cfg.Translit.System.Valid() {
		log.Warn("unknown transliteration system, text will pass through unchanged",
			slog.String("system", cfg.Translit.System.String()),
		)
	}

	srv := translit.New(
		translit.WithContext(ctx),
		translit.WithLogger(log),
		translit.WithAddress(cfg.Server.Address),
		translit.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		translit.WithTransliterator(cfg.Translit),
		translit.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Logger(log),
			middlewares.Recover(log),
			middlewares.Timeout(cfg.Server.RequestTimeout, log),
		),
	)

	return srv.Run()
}

func joinSystems() string {
	systems := cyrillic.Systems()
	names := make([]string, len(systems))
	for i, s := range systems {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}
