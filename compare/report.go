// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package compare

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"
)

// Ratio - describe which of two timings is faster
func Ratio(nameA string, a time.Duration, nameB string, b time.Duration) string {
	if a <= 0 || b <= 0 {
		return "no measurable time"
	}
	ratio := float64(a) / float64(b)
	if 1 == round(ratio, 5) {
		return "there was no difference"
	}
	if a > b {
		return fmt.Sprintf("%s was %.2f times faster than %s", nameB, ratio, nameA)
	}
	return fmt.Sprintf("%s was %.2f times faster than %s", nameA, 1/ratio, nameB)
}

func round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}

// Report - write a table of all phases, then compare each kind
// against the first one
func Report(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "kind\tphase\tkeys\tchanged\telapsed\tvalid")
	for _, r := range results {
		for _, p := range r.Phases {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%v\n", r.Kind, p.Phase, p.Keys, p.Changed, p.Elapsed, p.Valid)
		}
	}
	if err := tw.Flush(); nil != err {
		return err
	}

	if len(results) < 2 {
		return nil
	}
	base := results[0]
	for _, r := range results[1:] {
		for i, p := range r.Phases {
			_, err := fmt.Fprintf(w, "%s: %s\n", p.Phase, Ratio(base.Kind, base.Phases[i].Elapsed, r.Kind, p.Elapsed))
			if nil != err {
				return err
			}
		}
	}
	return nil
}
