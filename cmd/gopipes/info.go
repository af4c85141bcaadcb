package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gopipes/pkg/catalog"
)

var infoCmd = &cobra.Command{
	Use:   "info [catalog]",
	Short: "Display general information about a pipe catalog",
	Long:  "Show network statistics including pipe count, plan extent, total run length, materials and depth range.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]
	logger := newLogger()

	network, err := catalog.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("catalog loaded", "pipes", network.Count())

	fmt.Println("Pipe Catalog Information")
	fmt.Println("========================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Network Statistics:")
	fmt.Printf("  Pipes: %d\n", network.Count())
	fmt.Printf("  Total run length: %.3f m\n\n", network.PlanLength())

	bounds := network.PlanBounds()
	fmt.Println("Plan Extent:")
	fmt.Printf("  Min: (%.3f, %.3f)\n", bounds.Min.X(), bounds.Min.Y())
	fmt.Printf("  Max: (%.3f, %.3f)\n", bounds.Max.X(), bounds.Max.Y())
	fmt.Printf("  Size: %.3f x %.3f m\n\n", bounds.Max.X()-bounds.Min.X(), bounds.Max.Y()-bounds.Min.Y())

	if min, max, ok := network.DepthRange(); ok {
		fmt.Println("Depth Range:")
		fmt.Printf("  Shallowest: %.1f cm\n", min)
		fmt.Printf("  Deepest: %.1f cm\n\n", max)
	}

	materials := network.Materials()
	if len(materials) > 0 {
		names := make([]string, 0, len(materials))
		for name := range materials {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Println("Materials:")
		for _, name := range names {
			fmt.Printf("  %s: %d\n", name, materials[name])
		}
	}
}
