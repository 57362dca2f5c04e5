package model

// Token is one category-normalized lexical unit. Identifiers, numeric
// literals and string literals collapse to the VAR/NUM/STR categories;
// keywords, operators and punctuation keep their literal text so that
// renamed-but-equal program shapes still align.
type Token string

const (
	// TokenVar is the category for identifiers.
	TokenVar Token = "VAR"
	// TokenNum is the category for numeric literals.
	TokenNum Token = "NUM"
	// TokenStr is the category for string and character literals.
	TokenStr Token = "STR"
)
