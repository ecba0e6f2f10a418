package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-ski/internal/registry"
	"github.com/vovakirdan/penguin-ski/internal/ski"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels and the trick catalog",
	Long:  `Shows every level with its speed curve, followed by the tricks you can queue in the air.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	levels := registry.List()

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %-6s  %-5s  %-17s  %s\n", maxIDLen, "ID", "Start", "Accel", "Cap", "Cruise (T/N/S)", "Title")
	fmt.Printf("  %-*s  %-6s  %-6s  %-5s  %-17s  %s\n", maxIDLen, "--", "-----", "-----", "---", "--------------", "-----")

	for _, l := range levels {
		level, _ := ski.ParseLevel(l.ID)
		p := ski.Profile(level)
		cruise := fmt.Sprintf("%.0f/%.0f/%.0f",
			ski.CruiseSpeed(p.Cap, ski.PostureTuck),
			ski.CruiseSpeed(p.Cap, ski.PostureNeutral),
			ski.CruiseSpeed(p.Cap, ski.PostureSpread))
		fmt.Printf("  %-*s  %-6.0f  %-6.2f  %-5.0f  %-17s  %s\n", maxIDLen, l.ID, p.Start, p.Accel, p.Cap, cruise, l.Title)
	}

	fmt.Println()
	fmt.Println("Slope mix by difficulty tier (ramps spawn on their own timer):")
	fmt.Println()
	fmt.Printf("  %-4s  %-7s  %s\n", "Tier", "Hazards", "Objects")
	fmt.Printf("  %-4s  %-7s  %s\n", "----", "-------", "-------")
	for tier := ski.Tier(0); tier <= ski.MaxTier; tier++ {
		fmt.Printf("  %-4d  %-7s  %s\n", tier, fmt.Sprintf("%.0f%%", hazardShare(tier)*100), slopeMix(tier))
	}

	fmt.Println()
	fmt.Println("Tricks (queue while airborne, each once per jump):")
	fmt.Println()
	fmt.Printf("  %-10s  %-12s  %s\n", "ID", "Name", "Points")
	fmt.Printf("  %-10s  %-12s  %s\n", "--", "----", "------")
	for _, t := range ski.Tricks() {
		fmt.Printf("  %-10s  %-12s  %d\n", t.ID, t.Name, t.Points)
	}

	fmt.Println()
	fmt.Println("Run 'penguinski play <id>' to ski a level.")
}

// hazardShare is the fraction of spawned obstacles that cost a life.
func hazardShare(t ski.Tier) float64 {
	share := 0.0
	for typ, w := range ski.SpawnWeights(t) {
		if typ.IsHazard() {
			share += w
		}
	}
	return share
}

// slopeMix lists each obstacle type with its spawn share, most common first.
func slopeMix(t ski.Tier) string {
	weights := ski.SpawnWeights(t)
	types := make([]ski.ObjectType, 0, len(weights))
	for typ, w := range weights {
		if w > 0 {
			types = append(types, typ)
		}
	}
	sort.Slice(types, func(i, j int) bool {
		if weights[types[i]] != weights[types[j]] {
			return weights[types[i]] > weights[types[j]]
		}
		return types[i] < types[j]
	})

	parts := make([]string, len(types))
	for i, typ := range types {
		parts[i] = fmt.Sprintf("%s %.0f%%", typ, weights[typ]*100)
	}
	return strings.Join(parts, ", ")
}
