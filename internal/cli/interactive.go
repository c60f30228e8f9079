package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hogsim/hog/internal/factory"
	"github.com/hogsim/hog/internal/model"
	"github.com/hogsim/hog/internal/services/turn"
)

func newRollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roll",
		Short: "Interactively resolve a single dice roll",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(func(p *Prompter) error {
				numRolls, err := p.Int("Number of rolls: ", 1)
				if err != nil {
					return err
				}
				fmt.Println("Turn total:", turn.RollDice(numRolls, p.Dice()))
				return nil
			})
		},
	}
}

func newTurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "turn",
		Short: "Interactively resolve a single turn",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(func(p *Prompter) error {
				numRolls, err := p.Int("Number of rolls: ", 0)
				if err != nil {
					return err
				}
				opponentScore, err := p.Int("Opponent score: ", 0)
				if err != nil {
					return err
				}
				fmt.Println("Turn total:", turn.TakeTurn(numRolls, opponentScore, p.Dice()))
				return nil
			})
		},
	}
}

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Interactively play a full game",
		Long: `Play a full game of Hog, prompting each player for a roll count every
turn. Dice are rolled by the simulator; the Hog wild rule decides which
kind is in play.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory.New(factory.Config{
				Seed:   cfg.Seed,
				Logger: logger,
			})
			if err != nil {
				return err
			}

			return runInteractive(func(p *Prompter) error {
				result := app.Engine.Play(
					p.Strategy(model.Player0),
					p.Strategy(model.Player1),
				)
				fmt.Println("Final scores:", result.Score0, "to", result.Score1)
				return nil
			})
		},
	}
}

// runInteractive runs fn with a prompter on stdin, turning a closed input
// stream or an interrupt into a clean reported exit.
func runInteractive(fn func(p *Prompter) error) (err error) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		fmt.Println("\nQuitting interactive session")
		os.Exit(0)
	}()

	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !errors.Is(e, model.ErrSessionClosed) {
				panic(r)
			}
			fmt.Println("\nQuitting interactive session")
			err = nil
		}
	}()

	if err := fn(NewPrompter(os.Stdin, os.Stdout)); err != nil {
		if errors.Is(err, model.ErrSessionClosed) {
			fmt.Println("\nQuitting interactive session")
			return nil
		}
		return err
	}
	return nil
}
