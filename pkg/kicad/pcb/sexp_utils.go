package pcb

import (
	"fmt"

	"github.com/OpenTraceLab/pcbworld/pkg/kicad/sexp"
	"github.com/OpenTraceLab/pcbworld/pkg/kicad/sexp/kicadsexp"
)

// S-expression navigation and typed value extraction live in the shared
// kicad/sexp package; pcb only adds the board-specific layer-set decoding
// below.

func findNode(s kicadsexp.Sexp, key string) (kicadsexp.Sexp, bool) { return sexp.FindNode(s, key) }

func findAllNodes(s kicadsexp.Sexp, key string) []kicadsexp.Sexp { return sexp.FindAllNodes(s, key) }

func getListItems(s kicadsexp.Sexp) []kicadsexp.Sexp { return sexp.GetListItems(s) }

func getString(s kicadsexp.Sexp, index int) (string, error) { return sexp.GetString(s, index) }

func getFloat(s kicadsexp.Sexp, index int) (float64, error) { return sexp.GetFloat(s, index) }

func getInt(s kicadsexp.Sexp, index int) (int, error) { return sexp.GetInt(s, index) }

func getQuotedString(s kicadsexp.Sexp, index int) (string, error) {
	return sexp.GetQuotedString(s, index)
}

func hasSymbol(s kicadsexp.Sexp, symbol string) bool { return sexp.HasSymbol(s, symbol) }

func getNodeName(s kicadsexp.Sexp) (string, error) { return sexp.GetNodeName(s) }

// getLayers extracts layer specifications
// Format: (layer "F.Cu") or (layers "F.Cu" "B.Cu" "*.Mask")
func getLayers(s kicadsexp.Sexp) (LayerSet, error) {
	if s.IsLeaf() {
		return nil, fmt.Errorf("expected layer list")
	}

	// Get the keyword (layer or layers)
	keyword, err := getString(s, 0)
	if err != nil {
		return nil, err
	}

	var layers LayerSet

	if keyword == "layer" {
		// Single layer: (layer "F.Cu")
		layer, err := getString(s, 1)
		if err != nil {
			return nil, err
		}
		layers = LayerSet{layer}
	} else if keyword == "layers" {
		// Multiple layers: (layers "F.Cu" "B.Cu")
		items := getListItems(s)
		for _, item := range items {
			if sym, ok := item.(kicadsexp.Symbol); ok {
				layers = append(layers, string(sym))
			}
		}
	} else {
		return nil, fmt.Errorf("expected 'layer' or 'layers', got %q", keyword)
	}

	return layers, nil
}
