// Package render turns a project record into HTML by literal placeholder
// substitution over a page template.
//
// The template is plain text containing tokens such as {{title}} and
// {{canonical}}. There are no loops, conditionals or pipelines: each token is
// replaced everywhere it occurs with a value computed from the record. Text
// values are HTML-escaped; markup values (tag chips, link buttons, the
// thumbnail data URI) are produced already safe by the helpers in this
// package.
package render
