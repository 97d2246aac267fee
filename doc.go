// Package ppin compares protein-protein interaction networks across species.
//
// An interolog is an interaction A-B in one species whose orthologous
// counterpart A'-B' is also an interaction in another species. ppin finds
// them and classifies how well the neighbourhood of a protein is conserved.
//
// Packages:
//
//	core/       Node, Pair, the Network contract and the sparse backend
//	matrix/     DenseNetwork, the boolean-matrix backend
//	mapping/    bidirectional many-to-many identifier maps and a per-species cache
//	orthology/  the cross-species ortholog store with lazy pair loading
//	interolog/  interolog discovery and neighbour classification
//	tsv/        readers for network, name and ortholog tables
//	sqlstore/   SQLite-backed ortholog source
//	config/     environment and .env settings
//	logger/     zap logger construction
//	workspace/  everything above wired over one data directory
//
// Typical use:
//
//	cfg, err := config.Load()
//	log, err := logger.New(cfg.LogLevel)
//	w, err := workspace.Open(cfg, workspace.WithLogger(log))
//	defer w.Close()
//	res, err := w.Interologs(ctx, "H.sapiens", "M.musculus")
//	for _, e := range res.Edges() {
//		fmt.Println(e, res.Interologs[e].Sorted())
//	}
package ppin
