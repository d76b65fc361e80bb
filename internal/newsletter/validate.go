package newsletter

import "regexp"

// Same syntactic check the intake forms use: one "@", no whitespace,
// a dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
