// Package join implements the Join & Pareto Builder (C6): it Cartesian-
// combines surviving forward and backward labels at every Meeting Node into
// full-path Candidates, then reduces the combined set according to the
// active routing mode (spec.md §4.6).
//
// Overview:
//
//	Build fans the combination work out across meeting nodes with
//	golang.org/x/sync/errgroup (bounded via SetLimit, mirroring
//	vanderheijden86/beadwork's loadReposParallel), since Label Sets are
//	read-only once the Driver has quiesced (spec.md §5 "Label Sets are
//	read-only in Join"). Reduce then applies the per-mode output policy of
//	spec.md §4.6.
package join
