// Package contextpack fits project file contents into a prompt token budget.
//
// Given a set of candidate files and a budget, Optimize estimates each file's
// token count (a 4-characters-per-token heuristic, not a real tokenizer),
// ranks files by a data-driven priority table (manifests and agent
// instructions first, tests and prose last), and greedily packs them. When a
// file almost fits it is truncated at a newline boundary; otherwise it is
// dropped and reported.
//
// Every call is independent and total: an empty file list, a zero budget, or
// a reserve exceeding the budget all produce a well-formed (possibly empty)
// Result rather than an error.
package contextpack
