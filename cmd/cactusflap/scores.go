package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cactusflap/internal/platform/tui"
	"github.com/vovakirdan/cactusflap/internal/storage"
)

const (
	scoresGameID = "cactusflap"
	scoresTitle  = "Cactus Flap"
	scoresLimit  = 10
)

var (
	flagInteractive bool
	flagMine        bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores.

With --interactive a scrollable table opens instead; press Tab there to
switch between all scores and your own.

Examples:
  cactusflap scores
  cactusflap scores --mine
  cactusflap scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagMine, "mine", false, "Only show scores of --player")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	player := playerName()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, scoresGameID, scoresTitle, player, width, height); err != nil {
			store.Close()
			fail("running scoreboard: %v", err)
		}
		return
	}

	var scores []storage.ScoreEntry
	if flagMine {
		scores, err = store.PlayerScores(scoresGameID, player, scoresLimit)
	} else {
		scores, err = store.TopScores(scoresGameID, scoresLimit)
	}
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", scoresTitle)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'cactusflap play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-8d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}

	// Show totals
	fmt.Println()
	if stats, err := store.GameStats(scoresGameID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Players: %d  Average: %.1f\n",
			stats.HighScore, stats.GamesCount, stats.Players, stats.AvgScore)
	}
}
