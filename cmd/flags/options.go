package flags

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sboehler/atm/lib/config"
	"github.com/sboehler/atm/lib/ledger"
)

// Options manages the flags shared by all commands.
type Options struct {
	configPath string
	file       string
	encoding   EncodingFlag
	color      bool
	level      LevelFlag
}

// Setup registers the flags as persistent flags of cmd.
func (o *Options) Setup(cmd *cobra.Command) {
	def := config.Default()
	cmd.PersistentFlags().StringVar(&o.configPath, "config", "", "configuration file (yaml)")
	cmd.PersistentFlags().StringVarP(&o.file, "file", "f", def.File, "ledger file")
	cmd.PersistentFlags().Var(&o.encoding, "encoding", "character encoding of the ledger file (utf-8, latin1, windows-1252)")
	cmd.PersistentFlags().BoolVar(&o.color, "color", def.Color, "print output in color")
	cmd.PersistentFlags().Var(&o.level, "log-level", "log level (debug, info, warn, error)")
}

// Config returns the configuration file, overridden by the flags given on
// the command line.
func (o *Options) Config(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}
	fs := cmd.Flags()
	if fs.Changed("file") {
		cfg.File = o.file
	}
	if fs.Changed("encoding") {
		cfg.Encoding = string(o.encoding.Value())
	}
	if fs.Changed("color") {
		cfg.Color = o.color
	}
	if o.level.IsSet() {
		cfg.LogLevel = o.level.String()
	}
	return cfg, nil
}

// Encoding returns the ledger file encoding of cfg.
func Encoding(cfg config.Config) (ledger.Encoding, error) {
	return ledger.ParseEncoding(cfg.Encoding)
}

// Logger creates a logger writing to the error stream of cmd.
func Logger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// LoadLedger loads the ledger file of cfg.
func LoadLedger(cfg config.Config, logger *slog.Logger) (*ledger.Ledger, error) {
	enc, err := Encoding(cfg)
	if err != nil {
		return nil, err
	}
	l, err := ledger.LoadFile(cfg.File, enc)
	if err != nil {
		return nil, err
	}
	logger.Info("ledger loaded", slog.String("file", cfg.File), slog.Int("accounts", l.Len()))
	return l, nil
}

// SaveLedger writes l to the ledger file of cfg.
func SaveLedger(cfg config.Config, logger *slog.Logger, l *ledger.Ledger) error {
	enc, err := Encoding(cfg)
	if err != nil {
		return err
	}
	if err := l.SaveFile(cfg.File, enc); err != nil {
		return err
	}
	logger.Info("ledger saved", slog.String("file", cfg.File), slog.Int("accounts", l.Len()))
	return nil
}
