package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the difficulty curriculum",
	Long:  `Shows which equation types each level generates.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	levels := []struct {
		num  int
		desc string
	}{
		{1, "Addition and subtraction, operands up to 20"},
		{2, "Adds multiplication (times tables to 13), sums to 98"},
		{3, "Adds division with whole-number answers"},
	}

	fmt.Println("Difficulty levels:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-5s  %s\n", "Level", "Equations")
	fmt.Printf("  %-5s  %s\n", "-----", "---------")

	// Print levels
	for _, l := range levels {
		fmt.Printf("  %-5d  %s\n", l.num, l.desc)
	}

	fmt.Println()
	fmt.Println("Run 'skyover play --level <n>' to start at a specific level.")
	fmt.Println("Subtraction stays non-negative unless --allow-negative is set.")
}
