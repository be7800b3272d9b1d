// Package css reads CSS stylesheets into an ordered list of groups, each a
// selector list (or at-rule prelude) with its declarations.
//
// Parsing is done with github.com/tdewolff/parse/v2 grammar parser. Only one
// level of nesting is kept: rules inside at-rule blocks (and nested rules)
// are flattened into "header { property }" declaration names of the
// enclosing group.
package css
