// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package compare

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/redblack/counter"
	"github.com/bitmark-inc/redblack/fault"
	"github.com/bitmark-inc/redblack/set"
)

// Phase - one timed step of a run
type Phase int

// the phases in the order they run
const (
	InsertAscending Phase = iota
	RemoveAscending Phase = iota
	InsertRandom    Phase = iota
	RemoveRandom    Phase = iota
	phaseCount            = iota
)

func (p Phase) String() string {
	switch p {
	case InsertAscending:
		return "insert ascending"
	case RemoveAscending:
		return "remove ascending"
	case InsertRandom:
		return "insert random"
	case RemoveRandom:
		return "remove random"
	default:
		return "unknown"
	}
}

// Options - sizes of a run
type Options struct {
	Ascending int    // keys 0 to Ascending inserted in order
	Random    int    // number of random keys
	Seed      uint64 // random key source
	Verify    bool   // call Verify after every phase
}

// PhaseResult - outcome of one phase on one set
type PhaseResult struct {
	Phase   Phase
	Keys    int           // keys offered
	Changed uint64        // inserts or removes that returned true
	Elapsed time.Duration // wall time of the phase
	Valid   bool          // Verify result, true when not checked
}

// Result - all phases of one set kind
type Result struct {
	Kind   string
	Phases [phaseCount]PhaseResult
}

// Valid - true if every phase left a valid set
func (r Result) Valid() bool {
	for _, p := range r.Phases {
		if !p.Valid {
			return false
		}
	}
	return true
}

// Run - time each set kind in turn
//
// all kinds see the same random keys; the error is
// fault.ErrVerifyFailed when any set failed its own check, the
// results are returned in either case
func Run(log *logger.L, kinds []string, options Options) ([]Result, error) {
	if options.Ascending < 0 || options.Random < 0 {
		return nil, fault.ErrInvalidCount
	}

	random := Keys(options.Random, options.Seed)
	ascending := make([]int, options.Ascending+1)
	for i := range ascending {
		ascending[i] = i
	}

	results := make([]Result, 0, len(kinds))
	var err error
	for _, kind := range kinds {
		s, e := set.Make(kind)
		if nil != e {
			return nil, e
		}
		log.Infof("%s: start: ascending: %d  random: %d", kind, len(ascending), len(random))

		result := Result{Kind: kind}
		result.Phases[InsertAscending] = timePhase(log, kind, InsertAscending, s, ascending, s.Insert, options.Verify)
		result.Phases[RemoveAscending] = timePhase(log, kind, RemoveAscending, s, ascending, s.Remove, options.Verify)
		result.Phases[InsertRandom] = timePhase(log, kind, InsertRandom, s, random, s.Insert, options.Verify)
		result.Phases[RemoveRandom] = timePhase(log, kind, RemoveRandom, s, random, s.Remove, options.Verify)

		if !result.Valid() {
			log.Criticalf("%s: verification failed", kind)
			err = fault.ErrVerifyFailed
		}
		if 0 != s.Count() {
			log.Criticalf("%s: %d keys remain after removal", kind, s.Count())
			err = fault.ErrVerifyFailed
		}
		results = append(results, result)
	}
	return results, err
}

// internal: apply op to every key and time it
func timePhase(log *logger.L, kind string, phase Phase, s set.Set[int], keys []int, op func(int) bool, verify bool) PhaseResult {
	var changed counter.Counter

	start := time.Now()
	for _, key := range keys {
		changed.CountIf(op(key))
	}
	elapsed := time.Since(start)

	valid := true
	if verify {
		valid = s.Verify()
	}

	log.Infof("%s: %s: keys: %d  changed: %d  elapsed: %s  valid: %v", kind, phase, len(keys), changed.Uint64(), elapsed, valid)

	return PhaseResult{
		Phase:   phase,
		Keys:    len(keys),
		Changed: changed.Uint64(),
		Elapsed: elapsed,
		Valid:   valid,
	}
}
