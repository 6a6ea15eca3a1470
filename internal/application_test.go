package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-grid/internal/config"
	"github.com/rocketscienceinc/tictactoe-grid/internal/console"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/tictactoe"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun(t *testing.T) {
	t.Run("Computer players finish a game without input", func(t *testing.T) {
		// Given: two heuristic players on a fixed 3x3 grid
		conf := &config.Config{
			GridSize: 3,
			AI:       config.AI{MyStreakMultiplier: 1, EnemyStreakMultiplier: 1},
			Players: []config.Player{
				{Name: "Alpha", Symbol: "A", Kind: config.KindHeuristic},
				{Name: "Beta", Symbol: "B", Kind: config.KindHeuristic},
			},
		}

		var out bytes.Buffer

		// When: the app runs
		err := run(context.Background(), discardLogger(), conf, strings.NewReader(""), &out)

		// Then: the final screen is drawn
		require.NoError(t, err)
		assert.True(t, strings.Contains(out.String(), "WON!") || strings.Contains(out.String(), "TIE!"))
	})

	t.Run("Human loses input mid game", func(t *testing.T) {
		// Given: a bad grid size, a 3x3 grid, the computer begins and the human types one move
		conf := &config.Config{
			AI:      config.AI{MyStreakMultiplier: 1, EnemyStreakMultiplier: 1},
			Players: config.DefaultPlayers(),
		}

		in := strings.NewReader("0\n3\nn\n1,1\n")

		var out bytes.Buffer

		// When: the app runs
		err := run(context.Background(), discardLogger(), conf, in, &out)

		// Then: the game ends on the closed input
		require.ErrorIs(t, err, io.EOF)
		assert.Contains(t, out.String(), "How do you expect to play with 0 cells?")
		assert.Contains(t, out.String(), "Should Human begin [Y/n]? ")
	})

	t.Run("Fails to reach redis", func(t *testing.T) {
		conf := &config.Config{
			GridSize: 3,
			Players:  config.DefaultPlayers(),
			Redis:    config.Redis{Enabled: true, Host: "127.0.0.1", Port: "1"},
		}

		err := run(context.Background(), discardLogger(), conf, strings.NewReader("y\n"), io.Discard)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not connect to redis storage")
	})
}

func TestChooseStartPlayer(t *testing.T) {
	roster := config.DefaultPlayers()

	tests := []struct {
		name   string
		answer string
		want   string
	}{
		{name: "Human begins by default", answer: "\n", want: "Human"},
		{name: "Human begins on yes", answer: "yes\n", want: "Human"},
		{name: "Computer begins on no", answer: "No\n", want: "Computer - Better"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: the default roster
			reader := console.NewReader(strings.NewReader(tt.answer), io.Discard)

			players, err := buildPlayers(&config.Config{Players: roster}, reader)
			require.NoError(t, err)

			game, err := tictactoe.NewGameController(3)
			require.NoError(t, err)
			require.NoError(t, game.AddPlayers(players...))

			// When: asking who begins
			require.NoError(t, chooseStartPlayer(context.Background(), reader, roster, game))

			// Then: the answered player is the start player
			assert.Equal(t, tt.want, players[game.StartPlayer()].Name())
		})
	}
}

func TestPrintRecorded(t *testing.T) {
	t.Run("Prints the winner", func(t *testing.T) {
		var out bytes.Buffer

		printRecorded(&out, &entity.Result{ID: "game-1", Winner: "Human", WinnerID: 0})

		assert.Equal(t, "Recorded game game-1: Human won\n", out.String())
	})

	t.Run("Prints a tie", func(t *testing.T) {
		var out bytes.Buffer

		printRecorded(&out, &entity.Result{ID: "game-2", WinnerID: entity.NoWinner})

		assert.Equal(t, "Recorded game game-2: tie\n", out.String())
	})

	t.Run("Prints nothing without a record", func(t *testing.T) {
		var out bytes.Buffer

		printRecorded(&out, nil)

		assert.Empty(t, out.String())
	})
}
