package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/mcalc/internal/suite"
	"github.com/DjordjeVuckovic/mcalc/pkg/schema"
)

func main() {
	var (
		outputDir = flag.String("output", "configs/schema", "Output directory for generated schemas")
		baseID    = flag.String("base-id", "https://schemas.mcalc.dev", "Base URI for schema $id")
	)
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	data, err := schema.NewGenerator(*baseID).GenerateJSON(suite.Suite{})
	if err != nil {
		log.Fatalf("Failed to generate suite schema: %v", err)
	}

	out := filepath.Join(*outputDir, "suite-v1.json")
	if err := os.WriteFile(out, data, 0o644); err != nil {
		log.Fatalf("Failed to write schema: %v", err)
	}

	fmt.Printf("Generated JSON schema: %s\n", out)
}
