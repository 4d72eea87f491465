// Package tags derives the tag index of a site and the pages built from it.
//
// Given the page collection of one build it produces:
//
//   - the tag cloud: every distinct tag token, sorted with locale collation,
//     each paired with the href of its overview page (BuildIndex);
//   - one overview page per tag listing the pages that carry it, newest
//     first (Synthesize, FindTagged);
//   - a tagLinks list on every page, in the order its tags were written
//     (Annotate).
//
// Everything here is a pure, synchronous function of its inputs: no I/O,
// no package state, and input pages are never modified. A Pass computes the
// index once and serves both host entry points from it. Hosts that call
// ComputeAppData and ComputeMetaData separately must hand both the same
// configuration value; reloading configuration between the two calls makes
// the tag cloud and the overview pages disagree.
package tags
