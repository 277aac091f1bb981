// Package handlingunit contains the HandlingUnit aggregate and its
// supporting types for the packing workflow.
//
// A HandlingUnit groups item lines that are packed together. The aggregate
// owns the workflow state machine (Status), the item lines (Item) and the
// line location model (ItemLocation). Items outside any unit live in the
// unassigned pool; attaching and detaching moves them between the pool and
// a unit while keeping line numbers unique within the unit.
//
// Verification is line based: a packer scans each physical item, the
// matching line is marked verified with optional attribute corrections, and
// the unit transitions to Verified as soon as no unverified line remains.
package handlingunit
