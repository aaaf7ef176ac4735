package config

import "github.com/namsral/flag"

type Config struct {
	NumVertices int
	BadSubgraph string
	BadSizes    string
	NumThreads  int
	Seed        uint64
	MaxSteps    int
	Quiet       bool
	Save        bool
	SaveDir     string
	Debug       bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("ramsey", flag.ContinueOnError)
	fs.IntVar(&c.NumVertices, "num-vertices", 0, "the number of vertices in the edge-colored graph to be constructed")
	fs.StringVar(&c.BadSubgraph, "bad-subgraph", "books", "the forbidden monochromatic subgraphs: books or wheels")
	fs.StringVar(&c.BadSizes, "bad-sizes", "", "comma-separated vertex counts of the forbidden subgraph per color, e.g. 4,5")
	fs.IntVar(&c.NumThreads, "num-threads", 1, "number of searches to run in parallel")
	fs.Uint64Var(&c.Seed, "seed", 0, "random seed; 0 picks one at random")
	fs.IntVar(&c.MaxSteps, "max-steps", 0, "restart a search after this many steps; 0 means never")
	fs.BoolVar(&c.Quiet, "quiet", false, "print only the final construction, not intermediate record scores")
	fs.BoolVar(&c.Save, "save", false, "save the final construction in a .txt file")
	fs.StringVar(&c.SaveDir, "save-dir", ".", "directory for saved constructions")
	fs.BoolVar(&c.Debug, "debug", false, "debug logging")
	err := fs.Parse(args)
	return err
}
