package configuration

import (
	"github.com/pkg/errors"

	"github.com/nickbooties/logfan"
	"github.com/nickbooties/logfan/core"
	"github.com/nickbooties/logfan/formatters"
	"github.com/nickbooties/logfan/writers"
)

// WriterFactory creates a writer from its configuration arguments.
type WriterFactory func(args map[string]any) (core.Writer, error)

// FormatterFactory creates a formatter from its name.
type FormatterFactory func() core.Formatter

// Builder turns a Config into a ready dispatcher. The built-in writer
// and formatter factories can be extended or replaced per name.
type Builder struct {
	writerFactories    map[string]WriterFactory
	formatterFactories map[string]FormatterFactory
}

// NewBuilder creates a builder with the built-in factories
// registered: Console, ConsoleStdout, File, SMTP and Memory writers;
// Text, JSON and Detail formatters.
func NewBuilder() *Builder {
	b := &Builder{
		writerFactories:    make(map[string]WriterFactory),
		formatterFactories: make(map[string]FormatterFactory),
	}

	b.RegisterWriter("Console", func(map[string]any) (core.Writer, error) {
		return writers.NewConsole(), nil
	})
	b.RegisterWriter("ConsoleStdout", func(map[string]any) (core.Writer, error) {
		return writers.NewConsoleStdout(), nil
	})
	b.RegisterWriter("File", createFileWriter)
	b.RegisterWriter("SMTP", createSMTPWriter)
	b.RegisterWriter("Memory", func(map[string]any) (core.Writer, error) {
		return writers.NewMemory(), nil
	})

	b.RegisterFormatter("Text", func() core.Formatter { return formatters.NewText() })
	b.RegisterFormatter("JSON", func() core.Formatter { return formatters.NewJSON() })
	b.RegisterFormatter("Detail", func() core.Formatter { return formatters.NewDetail() })

	return b
}

// RegisterWriter adds or replaces a writer factory.
func (b *Builder) RegisterWriter(name string, factory WriterFactory) {
	b.writerFactories[name] = factory
}

// RegisterFormatter adds or replaces a formatter factory.
func (b *Builder) RegisterFormatter(name string, factory FormatterFactory) {
	b.formatterFactories[name] = factory
}

// Build constructs a dispatcher with every configured writer
// registered. All configuration errors surface here, before any event
// flows.
func (b *Builder) Build(cfg *Config) (*logfan.Dispatcher, error) {
	d := logfan.New()
	for i := range cfg.Writers {
		if err := b.addWriter(d, &cfg.Writers[i]); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (b *Builder) addWriter(d *logfan.Dispatcher, wc *WriterConfig) error {
	factory, ok := b.writerFactories[wc.Type]
	if !ok {
		return errors.Errorf("unknown writer type %q", wc.Type)
	}
	w, err := factory(wc.Args)
	if err != nil {
		return errors.Wrapf(err, "create %s writer", wc.Type)
	}

	if wc.Formatter != "" {
		ff, ok := b.formatterFactories[wc.Formatter]
		if !ok {
			return errors.Errorf("unknown formatter %q for %s writer", wc.Formatter, wc.Type)
		}
		w.SetFormatter(ff())
	}

	if wc.Priority == "" {
		d.AddWriter(w)
		return nil
	}

	threshold, err := core.ParseSeverity(wc.Priority)
	if err != nil {
		return errors.Wrapf(err, "%s writer priority", wc.Type)
	}
	symbol := wc.Comparison
	if symbol == "" {
		symbol = "="
	}
	op, err := core.ParseComparison(symbol)
	if err != nil {
		return errors.Wrapf(err, "%s writer comparison", wc.Type)
	}
	return d.AddWriterWithPriority(w, threshold, op)
}

func createFileWriter(args map[string]any) (core.Writer, error) {
	path := GetString(args, "path", "")
	if path == "" {
		return nil, errors.New("file writer requires a path argument")
	}
	return writers.NewFile(path)
}

func createSMTPWriter(args map[string]any) (core.Writer, error) {
	return writers.NewSMTP(writers.SMTPOptions{
		Addr:    GetString(args, "addr", ""),
		From:    GetString(args, "from", ""),
		To:      GetStrings(args, "to"),
		Subject: GetString(args, "subject", ""),
	})
}
