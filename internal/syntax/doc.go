// Package syntax defines a small host-neutral syntax tree used by divzero rules.
//
// Hosts (go/ast, tree-sitter) convert their own trees into [Node] values. Rules only read
// these nodes: kind, ordered children, source span and, for literal leaves, the token text
// exactly as it was written in source.
package syntax
