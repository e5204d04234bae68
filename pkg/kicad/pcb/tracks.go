package pcb

import (
	"fmt"

	"github.com/OpenTraceLab/pcbworld/pkg/kicad/sexp/kicadsexp"
)

// parseTrackPoint reads the X,Y pair out of an (start|end|at x y) node.
// Board files already carry track and via coordinates in mm, same as
// width/size/drill, so no unit conversion happens here.
func parseTrackPoint(s kicadsexp.Sexp) (Position, error) {
	x, err := getFloat(s, 1)
	if err != nil {
		return Position{}, fmt.Errorf("failed to parse X: %w", err)
	}
	y, err := getFloat(s, 2)
	if err != nil {
		return Position{}, fmt.Errorf("failed to parse Y: %w", err)
	}
	return Position{X: x, Y: y}, nil
}

// parseSegment extracts a single copper track segment.
// Expected format: (segment (start x y) (end x y) (width w) (layer "layer") (net n) ...)
func parseSegment(node kicadsexp.Sexp, netMap *NetMap) (*Track, error) {
	if node.IsLeaf() {
		return nil, fmt.Errorf("expected segment list, got leaf")
	}

	track := &Track{
		Width: 0.15, // Default width
	}

	startNode, found := findNode(node, "start")
	if !found {
		return nil, fmt.Errorf("missing required 'start' position")
	}
	start, err := parseTrackPoint(startNode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start position: %w", err)
	}
	track.Start = start

	endNode, found := findNode(node, "end")
	if !found {
		return nil, fmt.Errorf("missing required 'end' position")
	}
	end, err := parseTrackPoint(endNode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse end position: %w", err)
	}
	track.End = end

	if widthNode, found := findNode(node, "width"); found {
		width, err := getFloat(widthNode, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to parse width: %w", err)
		}
		track.Width = width
	}

	layerNode, found := findNode(node, "layer")
	if !found {
		return nil, fmt.Errorf("missing required 'layer' field")
	}
	layer, err := getQuotedString(layerNode, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layer: %w", err)
	}
	track.Layer = layer

	if netNode, found := findNode(node, "net"); found {
		if netNum, err := getInt(netNode, 1); err == nil && netMap != nil {
			if net, ok := netMap.GetByNumber(netNum); ok {
				track.Net = net
			}
		}
	}

	if _, found := findNode(node, "locked"); found {
		track.Locked = true
	}

	return track, nil
}

// parseVia extracts a via definition.
// Expected format: (via (at x y) (size d) (drill d) (layers "L1" "L2") (net n) ...)
func parseVia(node kicadsexp.Sexp, netMap *NetMap) (*Via, error) {
	if node.IsLeaf() {
		return nil, fmt.Errorf("expected via list, got leaf")
	}

	via := &Via{}

	atNode, found := findNode(node, "at")
	if !found {
		return nil, fmt.Errorf("missing required 'at' position")
	}
	pos, err := parseTrackPoint(atNode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse position: %w", err)
	}
	via.Position = pos

	sizeNode, found := findNode(node, "size")
	if !found {
		return nil, fmt.Errorf("missing required 'size' field")
	}
	size, err := getFloat(sizeNode, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse size: %w", err)
	}
	via.Size = size

	drillNode, found := findNode(node, "drill")
	if !found {
		return nil, fmt.Errorf("missing required 'drill' field")
	}
	drill, err := getFloat(drillNode, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse drill: %w", err)
	}
	via.Drill = drill

	layersNode, found := findNode(node, "layers")
	if !found {
		return nil, fmt.Errorf("missing required 'layers' field")
	}
	layers, err := getLayers(layersNode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layers: %w", err)
	}
	via.Layers = layers

	if netNode, found := findNode(node, "net"); found {
		if netNum, err := getInt(netNode, 1); err == nil && netMap != nil {
			if net, ok := netMap.GetByNumber(netNum); ok {
				via.Net = net
			}
		}
	}

	if _, found := findNode(node, "locked"); found {
		via.Locked = true
	}

	return via, nil
}

// parseTracks extracts every (segment ...) node under root into a Track.
func parseTracks(root kicadsexp.Sexp, netMap *NetMap) ([]Track, error) {
	if root.IsLeaf() {
		return nil, fmt.Errorf("expected root list")
	}

	segmentNodes := findAllNodes(root, "segment")
	if len(segmentNodes) == 0 {
		return []Track{}, nil
	}

	tracks := make([]Track, 0, len(segmentNodes))
	for _, segmentNode := range segmentNodes {
		track, err := parseSegment(segmentNode, netMap)
		if err != nil {
			return nil, fmt.Errorf("failed to parse segment: %w", err)
		}
		tracks = append(tracks, *track)
	}

	return tracks, nil
}

// parseVias extracts every (via ...) node under root.
func parseVias(root kicadsexp.Sexp, netMap *NetMap) ([]Via, error) {
	if root.IsLeaf() {
		return nil, fmt.Errorf("expected root list")
	}

	viaNodes := findAllNodes(root, "via")
	if len(viaNodes) == 0 {
		return []Via{}, nil
	}

	vias := make([]Via, 0, len(viaNodes))
	for _, viaNode := range viaNodes {
		via, err := parseVia(viaNode, netMap)
		if err != nil {
			return nil, fmt.Errorf("failed to parse via: %w", err)
		}
		vias = append(vias, *via)
	}

	return vias, nil
}
