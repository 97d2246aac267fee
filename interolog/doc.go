// Package interolog finds conserved interactions between the protein
// interaction networks of two species.
//
// An edge a-b of network1 is an interolog candidate when both a and b have
// orthologs (resolved by protein name) among the vertices of network2. For
// every combination (a', b') of those orthologs, the network2 pair is filed
// under the network1 edge as an interolog if a' and b' interact in
// network2, and as a non-interolog otherwise.
//
// Each undirected edge of network1 is visited exactly once: a neighbour b of
// a is only considered when a's name sorts strictly before b's. Self-loops
// are therefore never candidates.
//
// The same ortholog walk also classifies the neighbours of a pair of query
// proteins (see ClassifyNeighbours): each neighbour is matched, unmatched or
// unmatchable, and the three sets partition the neighbourhood.
package interolog
