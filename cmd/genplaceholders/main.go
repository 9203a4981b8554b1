package main

import (
	"fmt"
	"os"

	"chosenoffset.com/endofdayz/internal/placeholders"
)

func main() {
	fmt.Println("EndOfDayz Placeholder Sprite Generator")
	fmt.Println("======================================")
	fmt.Println()

	dir := "assets"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := placeholders.GenerateAndSave(dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Set world.atlas in endofdayz.yaml to use the generated atlas:")
	fmt.Printf("  atlas: %s/sprites.json\n", dir)
}
