// Package compare builds selector maps from parsed stylesheets and computes
// differences between them.
//
// Build flattens selector lists so every selector is its own key, later
// groups overwrite earlier ones for the same selector. Diff classifies keys
// into three disjoint lists: present only in the first map, present only in
// the second map, present in both with unequal declarations. Keys present in
// both with equal declarations are not reported.
package compare
