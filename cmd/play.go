/*
Copyright © 2026 Lucas Chan
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/data"
	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/engine"
	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play <your-roster> <opponent-roster>",
	Short: "Play a battle interactively against a policy",
	Long: `Starts an interactive battle where you control the first roster and a
random policy controls the second. Rosters can be YAML files or team
export pastes.
Usage:
	> move 1
	> switch 2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetUint64("seed")
		format, _ := cmd.Flags().GetString("format")
		maxTurns, _ := cmd.Flags().GetInt("max_turns")

		dex, err := loadDex()
		if err != nil {
			return err
		}
		var rosters [2]*data.Roster
		for i, path := range args {
			r, err := loadRoster(path)
			if err != nil {
				return fmt.Errorf("roster %d: %w", i+1, err)
			}
			rosters[i] = r
		}

		b, err := engine.NewBattle(dex, engine.Config{
			Seed:     seed,
			Format:   format,
			MaxTurns: maxTurns,
		}, rosters)
		if err != nil {
			return err
		}

		in := bufio.NewScanner(os.Stdin)
		randomPick := engine.RandomReplacementPicker(b.RNG)
		b.ReplacementPicker = func(bt *engine.Battle, side int) int {
			if side != 0 {
				return randomPick(bt, side)
			}
			return promptReplacement(in, bt)
		}

		s := session.New(b, 0, engine.NewRandomPolicy(seed*2+2))
		fmt.Println(session.RenderEntries(b.Log))
		fmt.Println("\nYour turn. Type help for commands.")

		for !s.Done() {
			fmt.Print("> ")
			if !in.Scan() {
				break
			}
			out, err := s.Execute(in.Text())
			if err == session.ErrQuit {
				return nil
			}
			if err != nil {
				fmt.Println(err)
				continue
			}
			if out != "" {
				fmt.Println(out)
			}
		}
		if s.Done() {
			fmt.Printf("Result: %s after %d turns\n", s.Result(), b.Turn)
		}
		return nil
	},
}

// promptReplacement asks the player which teammate comes in after a
// faint or a pivot move.
func promptReplacement(in *bufio.Scanner, b *engine.Battle) int {
	side := b.Sides[0]
	choices := side.Replacements()
	fmt.Println("Choose a replacement:")
	for _, idx := range choices {
		c := side.Team[idx]
		fmt.Printf("  %d. %s %d/%d HP\n", idx+1, c.Name, c.HP, c.MaxHP)
	}
	for {
		fmt.Print("switch> ")
		if !in.Scan() {
			return choices[0]
		}
		n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err == nil {
			for _, idx := range choices {
				if idx == n-1 {
					return idx
				}
			}
		}
		fmt.Println("pick one of the listed slots")
	}
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().Uint64("seed", 1, "RNG seed")
	playCmd.Flags().String("format", "gen9ou", "battle format")
	playCmd.Flags().Int("max_turns", 0, "turn cap before a forced tie (0 uses the format's cap)")
}
