package util

import "strings"

// LikeEscapeChar is the escape character paired with the patterns built here.
const LikeEscapeChar = `\`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLikePattern escapes LIKE wildcards so s matches literally.
func EscapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern builds a case-folded LIKE pattern matching s anywhere in a value.
// Use with LOWER(column) and ESCAPE LikeEscapeChar.
func ContainsPattern(s string) string {
	return "%" + EscapeLikePattern(strings.ToLower(s)) + "%"
}
