package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gopipes/pkg/catalog"
)

var pipesCmd = &cobra.Command{
	Use:   "pipes [catalog]",
	Short: "List every pipe with its mapped 3D centerline",
	Long: `Map each catalog record into world coordinates and list the
resulting centerline segments: endpoints, radius and run length.`,
	Args: cobra.ExactArgs(1),
	Run:  runPipes,
}

func init() {
	rootCmd.AddCommand(pipesCmd)
}

func runPipes(cmd *cobra.Command, args []string) {
	filename := args[0]
	logger := newLogger()
	cfg := loadConfig(logger)
	mapper := cfg.NewMapper()

	network, err := catalog.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Mapped Centerlines")
	fmt.Println("==================")

	for _, record := range network.Records {
		seg, err := mapper.Segment(record)
		if err != nil {
			logger.Warn("skipping pipe", "id", record.ID, "err", err)
			continue
		}

		fmt.Printf("\n%s", record.ID)
		if record.Material != "" {
			fmt.Printf(" (%s)", record.Material)
		}
		fmt.Println()
		fmt.Printf("  Start: %s\n", formatVector(seg.Start))
		fmt.Printf("  End: %s\n", formatVector(seg.End))
		fmt.Printf("  Radius: %.3f m\n", seg.Radius)
		fmt.Printf("  Length: %.3f m\n", seg.Length())
	}
}
