// Package textio reads "annotated" text: line-oriented input decorated with
// trailing comments, blank lines, and backslash continuations, of the kind
// found in simple `key = value # comment` configuration files.
//
// ReadLine assembles logical lines: comments are stripped, surrounding
// whitespace is trimmed, blank and comment-only lines are skipped, and a
// trailing backslash joins the next logical line with a single space.
// CountLines counts logical (or raw physical) lines and always leaves the
// stream rewound to the start.
package textio
