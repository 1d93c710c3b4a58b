package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"schack/src"
	"schack/src/logx"
	clic "schack/ui/cli"
	"schack/ui/gui"
	"schack/ui/gui/gbase"
	"schack/ui/gui/gbase/gconf"
	"schack/ui/gui/tools/lang"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const logfile string = "schack.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

// loadConfig reads the config file and lets flags override it.
func loadConfig(c *cli.Command) (*gconf.Config, error) {
	cfg, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("assets") {
		cfg.AssetsDir = c.String("assets")
	}
	if c.IsSet("mode") {
		if err := cfg.SetClickMode(c.String("mode")); err != nil {
			return nil, err
		}
	}
	if c.IsSet("variant") {
		if err := cfg.SetVariant(c.String("variant")); err != nil {
			return nil, err
		}
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	cfg.Correct()
	if c.Bool("save-config") {
		if err := cfg.Save(); err != nil {
			return nil, fmt.Errorf("error save config: %w", err)
		}
	}
	return cfg, nil
}

func newGame(c *cli.Command, l logx.Logger) (*src.GameBuilder, error) {
	gb := src.NewBuilderBoard(l)
	if fen := c.String("fen"); fen != "" {
		if _, err := gb.CreateFromFEN(fen); err != nil {
			return nil, err
		}
		return gb, nil
	}
	gb.CreateClassic()
	return gb, nil
}

func RunGUI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error open logfile: %w", err)
	}
	defer file.Close()
	l := GetLogger(file, c)
	defer l.Sync()

	cfg, err := loadConfig(c)
	if err != nil {
		l.Errorf("config: %v", err)
		return err
	}
	gb, err := newGame(c, l)
	if err != nil {
		l.Errorf("game: %v", err)
		return err
	}
	g, err := gui.NewGUI(gb, cfg, l)
	if err != nil {
		l.Errorf("assets: %v", err)
		return err
	}
	if err := g.Run(); err != nil && !errors.Is(err, gbase.ErrExit) {
		l.Errorf("gui stopped: %v", err)
		return err
	}
	return nil
}

func RunCLI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error open logfile: %w", err)
	}
	defer file.Close()
	l := GetLogger(file, c)
	defer l.Sync()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	gb, err := newGame(c, l)
	if err != nil {
		return err
	}
	lw, err := lang.NewGUILangWorker(lang.LangFromString(cfg.Lang))
	if err != nil {
		return err
	}

	color := term.IsTerminal(int(os.Stdout.Fd()))
	if color {
		clic.EnableANSI()
	}
	cl := clic.NewCLI(gb, cfg.Mode(), lw, l, os.Stdin, os.Stdout, color)
	if err := cl.RunLineMode(); err != nil {
		l.Errorf("console stopped: %v", err)
		return err
	}
	return nil
}

// RunSchack parses the command line. Flags are declared once on the root
// command and inherited by both subcommands.
func RunSchack() error {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: gconf.DefaultFile,
			Usage: "path to YAML config",
		},
		&cli.StringFlag{
			Name:  "assets",
			Usage: "resource directory with sprites and icon",
		},
		&cli.StringFlag{
			Name:  "mode",
			Usage: "click on a non-candidate square: cancel or reselect",
		},
		&cli.StringFlag{
			Name:  "variant",
			Usage: "board frame: bordered or compact",
		},
		&cli.StringFlag{
			Name:  "fen",
			Usage: "string FEN format",
		},
		&cli.BoolFlag{
			Name:  "save-config",
			Usage: "write the effective config back to the config file",
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
			Usage:   "enable debug mod",
		},
		&cli.StringFlag{
			Name:    "level",
			Aliases: []string{"l"},
			Value:   "info",
			Usage:   "logger level",
		},
		&cli.BoolFlag{
			Name:    "console",
			Aliases: []string{"c"},
			Usage:   "console logger encoding",
		},
	}

	return (&cli.Command{
		Name:  "schack",
		Usage: "chess board for two players on one screen",
		Flags: flags,
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Usage: "open the board window",
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunGUI(c)
				},
			},
			{
				Name:  "cli",
				Usage: "play in the terminal",
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunCLI(c)
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return RunGUI(c)
		},
	}).Run(context.Background(), os.Args)
}
