// Package keydrift scores keyboard layouts against an n-gram corpus and
// searches the permutation space for better ones.
//
// 🚀 What is keydrift?
//
//	A library for corpus-driven layout optimization, organized as a
//	pipeline of small packages:
//		• Ingest: stream text into mono/bi/tri/quad-gram and skipgram counts
//		• Normalize: turn raw counts into percentage frequency tables
//		• Statistics: declare weighted key-pattern statistics, then freeze them
//		• Evaluate: score a layout as the weighted sum of its statistics
//		• Search: simulated annealing and hill climbing over key swaps
//		• Rank: keep every accepted candidate in a sorted ledger
//
// ✨ Why choose keydrift?
//
//   - Deterministic – seeded RNG streams make every search reproducible
//   - Parallel – one candidate layout per worker, barrier-synchronized rounds
//   - Explicit errors – sentinel errors everywhere, no panics on bad input
//   - Extensible – statistics are data, not code; define your own sets
//
// Under the hood, everything is organized under focused subpackages:
//
//	keyspace/ — grid geometry and the flattened n-gram/skipgram index codec
//	corpus/   — count and frequency containers plus normalization
//	stats/    — statistic defs, the build→trim→clean→materialize pipeline
//	layout/   — the Layout value object: lifecycle, scoring, diffing
//	eval/     — the frequency × statistic evaluator
//	rank/     — the descending-sorted ranking ledger
//	anneal/   — the annealing/hill-climbing search engine
//	ingest/   — text ingestion and the on-disk corpus count cache
//
// Quick ASCII example:
//
//	    q w e r t y u i o p
//	    a s d f g h j k l ;
//	    z x c v b n m , . /
//
//	a 3×10 grid of 30 key ordinals, folded row-major as row*Cols+col.
//
// Dive into cmd/keydrift for a complete corpus→search→report driver.
//
//	go get github.com/keydrift/keydrift
package keydrift
