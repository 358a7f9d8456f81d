// Command hangman plays rounds in the terminal. The profile is kept in the
// same SQLite database the server uses, under a local owner.
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/assets"
	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/db"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/profile"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	owner := flag.String("owner", "local", "profile owner key")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	bank, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word catalog")
	}
	sqlDB, err := db.OpenMigrated(cfg.DBPath, assets.Migrations())
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer sqlDB.Close()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "hangman> ",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start readline")
	}
	defer rl.Close()

	sh := &shell{
		in:     rl,
		out:    rl.Stdout(),
		engine: game.NewEngine(bank),
		kv:     profile.NewSQLite(sqlDB).For(*owner),
		hints:  bank.HintFor,
	}
	if err := sh.run(context.Background()); err != nil && !errors.Is(err, errQuit) {
		log.Error().Err(err).Msg("hangman exited")
	}
}
