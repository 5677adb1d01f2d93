package ui

import (
	"fmt"
	"strings"
	"time"

	"snake-term/engine"
)

var gameOver = []string{
	`  ____                       ___`,
	` / ___| __ _ _ __ ___   ___ / _ \__   _____ _ __`,
	"| |  _ / _` | '_ ` _ \\ / _ \\ | | \\ \\ / / _ \\ '__|",
	`| |_| | (_| | | | | | |  __/ |_| |\ V /  __/ |`,
	` \____|\__,_|_| |_| |_|\___|\___/  \_/ \___|_|`,
}

// GameOverBanner is printed after a loss.
func GameOverBanner() string {
	return strings.Join(gameOver, lineBreak) + lineBreak
}

// Summary reports the final score and play time.
func Summary(r engine.Result) string {
	return fmt.Sprintf("Score: %d  Time: %s  Ticks: %d%s",
		r.Score, r.Elapsed.Round(100*time.Millisecond), r.Ticks, lineBreak)
}

// Epilogue is everything printed once the loop has ended.
func Epilogue(r engine.Result) string {
	if r.Reason == engine.ReasonLost {
		return GameOverBanner() + Summary(r)
	}
	return Summary(r)
}
