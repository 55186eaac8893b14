package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

var errBadPosition = errors.New("pathviz: position must look like row,col")

// parsePosition reads "row,col", the format grid.Position prints.
func parsePosition(s string) (grid.Position, error) {
	rs, cs, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return grid.Position{}, fmt.Errorf("%w: %q", errBadPosition, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return grid.Position{}, fmt.Errorf("%w: %q", errBadPosition, s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return grid.Position{}, fmt.Errorf("%w: %q", errBadPosition, s)
	}

	return grid.Position{Row: r, Col: c}, nil
}

func parsePositions(raw []string) ([]grid.Position, error) {
	out := make([]grid.Position, 0, len(raw))
	for _, s := range raw {
		p, err := parsePosition(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
