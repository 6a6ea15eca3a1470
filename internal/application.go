package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-grid/internal/ai"
	"github.com/rocketscienceinc/tictactoe-grid/internal/config"
	"github.com/rocketscienceinc/tictactoe-grid/internal/console"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/player"
	"github.com/rocketscienceinc/tictactoe-grid/internal/repository"
	"github.com/rocketscienceinc/tictactoe-grid/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-grid/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-grid/internal/usecase"
)

// RunApp - plays one game on the console.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	err := run(ctx, logger, conf, os.Stdin, os.Stdout)
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		log.Info("game aborted", "reason", err)
		return nil
	}

	return err
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	reader := console.NewReader(in, out)
	defer reader.Close()

	size := conf.GridSize
	if size < 1 {
		var err error
		if size, err = reader.ReadGridSize(ctx); err != nil {
			return fmt.Errorf("failed to read grid size: %w", err)
		}
	}

	game, err := tictactoe.NewGameController(size,
		tictactoe.WithLogger(logger),
		tictactoe.WithRenderer(console.NewRenderer(out, conf.ClearScreen)),
		tictactoe.WithMoveTimeout(conf.MoveTimeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	players, err := buildPlayers(conf, reader)
	if err != nil {
		return err
	}

	if err = game.AddPlayers(players...); err != nil {
		return fmt.Errorf("failed to add players: %w", err)
	}

	if err = chooseStartPlayer(ctx, reader, conf.Players, game); err != nil {
		return err
	}

	var results repository.ResultRepository
	if conf.Redis.Enabled {
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		results = repository.NewResultRepository(redisStorage)
	}

	manager := usecase.NewMatchManager(logger, results, game)

	played, err := manager.Play(ctx)
	if err != nil {
		return err
	}

	recorded, err := manager.Recorded(ctx, played.ID)
	if err != nil {
		log.Error("could not read recorded result", "game_id", played.ID, "error", err)
		return nil
	}

	printRecorded(out, recorded)

	standings, err := manager.Standings(ctx)
	if err != nil {
		log.Error("could not read standings", "error", err)
		return nil
	}

	printStandings(out, standings)

	return nil
}

func buildPlayers(conf *config.Config, reader *console.Reader) ([]player.Player, error) {
	players := make([]player.Player, 0, len(conf.Players))

	for _, pc := range conf.Players {
		switch pc.Kind {
		case config.KindHuman:
			players = append(players, player.NewHuman(pc.Name, pc.SymbolRune(), reader))
		case config.KindRandom:
			players = append(players, player.NewAI(pc.Name, pc.SymbolRune(), ai.NewRandom(nil)))
		case config.KindHeuristic:
			controller := ai.NewHeuristic(conf.AI.MyStreakMultiplier, conf.AI.EnemyStreakMultiplier)
			players = append(players, player.NewAI(pc.Name, pc.SymbolRune(), controller))
		default:
			return nil, fmt.Errorf("%w: %q", config.ErrUnknownPlayerKind, pc.Kind)
		}
	}

	return players, nil
}

// chooseStartPlayer - asks whether the first human begins; any answer but no keeps them first,
// otherwise the next player in the roster starts. Without humans player 0 starts.
func chooseStartPlayer(ctx context.Context, reader *console.Reader, roster []config.Player, game *tictactoe.GameController) error {
	human := -1
	for i, pc := range roster {
		if pc.Kind == config.KindHuman {
			human = i
			break
		}
	}

	if human < 0 {
		return game.SetStartPlayerIndex(0)
	}

	begin, err := reader.Confirm(ctx, "Should "+roster[human].Name+" begin")
	if err != nil {
		return fmt.Errorf("failed to read start player: %w", err)
	}

	start := human
	if !begin {
		start = (human + 1) % len(roster)
	}

	return game.SetStartPlayerIndex(start)
}

func printRecorded(out io.Writer, result *entity.Result) {
	if result == nil {
		return
	}

	outcome := "tie"
	if !result.IsTie() {
		outcome = result.Winner + " won"
	}

	fmt.Fprintf(out, "Recorded game %s: %s\n", result.ID, outcome)
}

func printStandings(out io.Writer, standings map[string]int) {
	if len(standings) == 0 {
		return
	}

	names := make([]string, 0, len(standings))
	for name := range standings {
		names = append(names, name)
	}

	sort.Strings(names)

	fmt.Fprintln(out, "Standings:")

	for _, name := range names {
		label := name
		if name == entity.PlayerTie {
			label = "ties"
		}

		fmt.Fprintf(out, "   %s: %d\n", label, standings[name])
	}
}
