package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/arborlab/morpho/neuron"
	"github.com/arborlab/morpho/units"
)

// readSWC parses a skeleton from an SWC file: whitespace-separated columns
// "id type x y z radius parent", with # comments. The neuron name defaults to
// the file basename.
func readSWC(path string, u units.Quantity) (*neuron.Skeleton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var nodes []neuron.Node
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 7 {
			return nil, errors.Newf("%s:%d: expected 7 columns, got %d", path, lineNo, len(fields))
		}

		var n neuron.Node
		var perr error
		parse := func(s string) float64 {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil && perr == nil {
				perr = err
			}
			return v
		}
		n.ID = int64(parse(fields[0]))
		n.X = parse(fields[2])
		n.Y = parse(fields[3])
		n.Z = parse(fields[4])
		n.Radius = parse(fields[5])
		n.Parent = int64(parse(fields[6]))
		if perr != nil {
			return nil, errors.Wrapf(perr, "%s:%d", path, lineNo)
		}
		nodes = append(nodes, n)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if len(nodes) == 0 {
		return nil, errors.Newf("%s: no nodes", path)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return neuron.NewSkeleton(neuron.Meta{Name: name, Units: u}, nodes), nil
}
