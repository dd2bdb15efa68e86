package cmd

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/vlsi-tools/layerarith/geom"
	"github.com/vlsi-tools/layerarith/segtree"
)

// dumpNode is the YAML shape of one segment-tree node in the -ps
// visualization: its range and its per-layer status right after Build,
// before the sweep has touched it.
type dumpNode struct {
	SegB  int        `yaml:"segB"`
	SegE  int        `yaml:"segE"`
	SegM  int        `yaml:"segM"`
	Poly  string     `yaml:"polysilicon"`
	Diff  string     `yaml:"diffusion"`
	Left  *dumpNode  `yaml:"left,omitempty"`
	Right *dumpNode  `yaml:"right,omitempty"`
}

func dumpTree(n *segtree.Node) *dumpNode {
	if n == nil {
		return nil
	}
	return &dumpNode{
		SegB:  n.SegB,
		SegE:  n.SegE,
		SegM:  n.SegM,
		Poly:  n.PolyStat.String(),
		Diff:  n.DiffStat.String(),
		Left:  dumpTree(n.Left),
		Right: dumpTree(n.Right),
	}
}

// dumpSegmentTree builds the segment tree over polys' Y-coordinates and
// writes its YAML visualization to path. It is an external collaborator to
// the core: no sweeping happens, only Build.
func dumpSegmentTree(polys []geom.Polygon, path string) error {
	root := segtree.Build(geom.YCoordinates(polys))
	data, err := yaml.Marshal(dumpTree(root))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
