// Package coordinator orchestrates the request/response/state pipeline.
//
// # Overview
//
// A coordinator method is the middle of every user-initiated operation: it
// issues the API call(s), interprets the normalized outcome, and returns the
// batch of state actions describing what happened. It holds no store and no
// mutable state of its own, which keeps orchestration testable against a
// fake API without a live UI.
//
// # Operation Shape
//
// Every operation follows the same five phases:
//
//  1. The caller applies state.OpStarted (and, for list fetches, the
//     fetch-started action that reserves a generation) so the loading
//     indicator appears before any I/O.
//  2. The method issues one API call — or, for composite mutations, the
//     mutation followed by a full list refresh, strictly in order.
//  3. On success it returns the update actions for the affected slices.
//  4. On failure it returns the error message; when the failure carries
//     HTTP 401 it additionally forces logout. That logout append in fail()
//     is the only cross-cutting failure policy in the program.
//  5. Every return path ends in state.OpDone, so the lifecycle always
//     reaches a terminal status regardless of branch.
//
// Errors never escape a coordinator as Go errors; the UI observes failures
// only through the request slice.
//
// # Composite Mutations
//
// CreatePack, DeletePack and RenamePack await the mutation and then await a
// list refresh before reporting success, so the visible list is never stale
// relative to a completed mutation. A mid-composite failure surfaces the
// error and leaves the previous list untouched.
package coordinator
