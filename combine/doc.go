// Package combine merges two configuration node trees into one according to
// a fixed policy.
//
// A Combiner consumes two already-built trees and produces a third tree of
// view nodes. The inputs are never mutated, so the same source tree can feed
// several independent combinations (layering three sources pairwise, for
// example). Output nodes carry a Reference back to the source node they
// stand for; for a combined pair the reference points at the first tree's
// node.
//
// Three policies are provided:
//
//   - OverrideCombiner: the first tree wins value and attribute conflicts
//     while nested structure is still merged recursively.
//   - UnionCombiner: both sides survive; only valueless structural nodes
//     unique by name on both sides are merged.
//   - MergeCombiner: override-style, but a child pair must also carry
//     compatible attributes to be merged.
//
// All policies share the list-node registry of BaseCombiner: a node whose
// name is registered as a list node is never matched across the two trees;
// every occurrence from both sides survives as a separate sibling. This
// models configuration constructs where repeated same-named elements mean
// "append to a list" rather than "override a singleton".
package combine
