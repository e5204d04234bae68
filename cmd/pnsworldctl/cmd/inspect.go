package cmd

import (
	"fmt"
	"sort"

	"github.com/OpenTraceLab/pcbworld/pkg/kicad/pcb"
	"github.com/OpenTraceLab/pcbworld/pkg/kicad/pnsload"
	"github.com/OpenTraceLab/pcbworld/pkg/pnsworld"
	"github.com/spf13/cobra"
)

var inspectNet string

var inspectCmd = &cobra.Command{
	Use:   "inspect <board_file>",
	Short: "Load a board into the world model and report its structure",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectNet, "net", "", "restrict the report to a single net name")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	filename := args[0]

	board, err := pcb.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("error parsing board: %w", err)
	}

	world, err := pnsload.LoadBoard(board, pnsworld.Config{})
	if err != nil {
		return fmt.Errorf("error loading world: %w", err)
	}

	if verbose {
		fmt.Println(world.DebugString())
	}

	if inspectNet != "" {
		return reportNet(board, world, inspectNet)
	}
	reportSummary(board, world)
	return nil
}

func reportSummary(board *pcb.Board, world *pnsworld.World) {
	fmt.Printf("Board: %d layers, %d nets, %d footprints, %d tracks, %d vias\n",
		len(board.Layers), len(board.Nets), len(board.Footprints), len(board.Tracks), len(board.Vias))
	fmt.Println(world.DebugString())

	netNames := board.GetAllNetNames()
	sort.Strings(netNames)

	fmt.Printf("\n%-30s %8s\n", "Net Name", "Items")
	for _, name := range netNames {
		net := board.GetNet(name)
		if net == nil {
			continue
		}
		items := world.AllItemsInNet(net.Number)
		if len(items) == 0 {
			continue
		}
		fmt.Printf("%-30s %8d\n", name, len(items))
	}
}

func reportNet(board *pcb.Board, world *pnsworld.World, netName string) error {
	info := board.GetNetInfo(netName)
	if info == nil {
		return fmt.Errorf("net %q not found", netName)
	}
	net := info.Net

	items := world.AllItemsInNet(net.Number)
	fmt.Printf("Net: %s (number %d), %d items (%d pads, %d tracks, %d vias from the board)\n\n",
		net.Name, net.Number, len(items), len(info.Pads), len(info.Tracks), len(info.Vias))

	seen := make(map[*pnsworld.Item]bool)
	for _, it := range items {
		if it.Kind != pnsworld.KindSegment || seen[it] {
			continue
		}
		line, originIndex := world.AssembleLine(it, false)
		for _, seg := range line.Segments {
			seen[seg] = true
		}
		fmt.Printf("  line: %d segments, %d vertices, seed at index %d\n",
			len(line.Segments), len(line.Chain.Points), originIndex)
	}
	return nil
}
