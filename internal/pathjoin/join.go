// Package pathjoin joins path segments into a single slash-separated path.
package pathjoin

import "strings"

// Separator is placed between every pair of adjacent segments.
const Separator = "/"

// SegmentTrace records how a single input segment was normalized.
type SegmentTrace struct {
	Index    int    `json:"index"`
	Raw      string `json:"raw"`
	Stripped string `json:"stripped"`
}

// Strip removes the leading and trailing runs of '/' from segment.
// Interior slashes are kept, so "//a//b//" becomes "a//b".
func Strip(segment string) string {
	return strings.TrimRight(strings.TrimLeft(segment, Separator), Separator)
}

// Join strips boundary slashes from each segment and joins the results with
// a single '/'. Empty segments keep their position: Join("a/", "", "/b")
// returns "a//b". Join() returns "".
func Join(segments ...string) string {
	stripped := make([]string, len(segments))
	for i, s := range segments {
		stripped[i] = Strip(s)
	}
	return strings.Join(stripped, Separator)
}

// JoinBase joins base followed by segments.
func JoinBase(base string, segments ...string) string {
	all := make([]string, 0, len(segments)+1)
	all = append(all, base)
	all = append(all, segments...)
	return Join(all...)
}

// Explain returns the per-segment strip results in input order.
func Explain(segments ...string) []SegmentTrace {
	traces := make([]SegmentTrace, len(segments))
	for i, s := range segments {
		traces[i] = SegmentTrace{Index: i, Raw: s, Stripped: Strip(s)}
	}
	return traces
}
