// Package pnsload builds a pnsworld.World from a parsed KiCad board:
// tracks become segments, vias become vias, and footprint pads become
// solids, with net and layer identifiers resolved through the board's
// own NetMap/LayerMap.
package pnsload

import (
	"fmt"
	"log"
	"math"

	"github.com/OpenTraceLab/pcbworld/pkg/kicad/pcb"
	"github.com/OpenTraceLab/pcbworld/pkg/pnsgeom"
	"github.com/OpenTraceLab/pcbworld/pkg/pnsworld"
)

// LoadBoard populates a new World (per cfg) with every track, via, and pad
// on board. An unrecognized layer does not fail the whole load: a track on
// such a layer, or an undrilled pad with no resolvable layer, is skipped
// with a log message, while a via or a drilled pad is placed on the full
// copper span instead.
func LoadBoard(board *pcb.Board, cfg pnsworld.Config) (*pnsworld.World, error) {
	if board == nil {
		return nil, fmt.Errorf("pnsload: nil board")
	}

	lm := pcb.NewLayerMap(board.Layers)
	copperMax := copperLayerMax(lm, board.Layers)
	world := pnsworld.NewWorld(cfg)

	for i := range board.Tracks {
		track := &board.Tracks[i]
		layer, ok := lm.GetByName(track.Layer)
		if !ok {
			log.Printf("pnsload: track on unknown layer %q skipped", track.Layer)
			continue
		}
		seg := pnsworld.NewSegment(
			vecNM(track.Start), vecNM(track.End),
			netNumber(track.Net), layer.Number, nm(track.Width), track,
		)
		world.Add(seg)
	}

	for i := range board.Vias {
		via := &board.Vias[i]
		layers, ok := layerRangeFor(lm, via.Layers, copperMax)
		if !ok {
			layers = pnsworld.LayerRange{Start: 0, End: copperMax}
		}
		v := pnsworld.NewVia(vecNM(via.Position), netNumber(via.Net), layers, nm(via.Size)/2, via)
		world.Add(v)
	}

	for i := range board.Footprints {
		fp := &board.Footprints[i]
		for j := range fp.Pads {
			pad := &fp.Pads[j]
			layers, ok := layerRangeFor(lm, pad.Layers, copperMax)
			if !ok {
				if pad.Drill > 0 {
					layers = pnsworld.LayerRange{Start: 0, End: copperMax}
				} else {
					log.Printf("pnsload: pad %q on footprint %q has no resolvable layer, skipped", pad.Number, fp.Reference)
					continue
				}
			}
			pos := vecNM(fp.TransformPosition(pad.Position))
			radius := nm(math.Max(pad.Size.Width, pad.Size.Height)) / 2
			shape := pnsgeom.CircleShape{Center: pos, Radius: radius}
			world.Add(pnsworld.NewSolid(pos, netNumber(pad.Net), layers, shape, pad))
		}
	}

	return world, nil
}

func nm(mm float64) int64 {
	return int64(math.Round(mm * pcb.MMToNanometers))
}

func vecNM(p pcb.Position) pnsgeom.Vec {
	return pnsgeom.Vec{X: nm(p.X), Y: nm(p.Y)}
}

func netNumber(n *pcb.Net) int {
	if n == nil {
		return pnsworld.UnassignedNet
	}
	return n.Number
}

// copperLayerMax returns the highest ordinal among the board's copper
// layers, used to resolve "*.Cu"-style wildcard layer sets.
func copperLayerMax(lm *pcb.LayerMap, layers []pcb.Layer) int {
	max := 0
	for _, l := range layers {
		if lm.IsCopperLayer(l.Name) && l.Number > max {
			max = l.Number
		}
	}
	return max
}

// layerRangeFor resolves a pad or via's layer set into the ordinal range
// the world indexes by. A wildcard copper entry (as KiCad writes for
// through-hole pads and vias) spans the whole copper stack.
func layerRangeFor(lm *pcb.LayerMap, names pcb.LayerSet, copperMax int) (pnsworld.LayerRange, bool) {
	lo, hi := -1, -1
	for _, name := range names {
		if name == "*.Cu" || name == "F&B.Cu" {
			return pnsworld.LayerRange{Start: 0, End: copperMax}, true
		}
		layer, ok := lm.GetByName(name)
		if !ok {
			continue
		}
		if lo == -1 || layer.Number < lo {
			lo = layer.Number
		}
		if hi == -1 || layer.Number > hi {
			hi = layer.Number
		}
	}
	if lo == -1 {
		return pnsworld.LayerRange{}, false
	}
	return pnsworld.LayerRange{Start: lo, End: hi}, true
}
