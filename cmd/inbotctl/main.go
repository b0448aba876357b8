package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"

	"inbot/internal/config"
	"inbot/internal/database"
	"inbot/internal/database/migration"
	"inbot/internal/extract"
	"inbot/internal/llm"
	"inbot/internal/logging"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "inbotctl",
		Usage:  "Maintenance commands for the inbot API",
		Writer: out,
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "Apply the database schema",
				Action: migrateCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Run every step even when the schema already exists",
					},
				},
			},
			{
				Name:      "extract",
				Usage:     "Print the text the API would extract from a PDF or TXT file",
				ArgsUsage: "<file>",
				Action:    extractCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "stats",
						Usage: "Print character and translation window counts instead of the text",
					},
				},
			},
		},
	}
}

func migrateCommand(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(c.App.ErrWriter, cfg.Location(), cfg.LogLevel)

	ctx := context.Background()
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if c.Bool("force") {
		return migration.Run(ctx, db, logger, cfg.Database.Host)
	}
	return migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host)
}

func extractCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("extract requires exactly one file argument")
	}
	path := c.Args().First()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	text, err := extract.Text(filepath.Base(path), data)
	if err != nil {
		return err
	}

	if c.Bool("stats") {
		_, err = fmt.Fprintf(c.App.Writer, "characters: %d\nwindows: %d\n",
			utf8.RuneCountInString(text), len(llm.ChunkText(text, llm.TranslationChunkSize)))
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, text)
	return err
}
