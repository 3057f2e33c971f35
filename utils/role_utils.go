package utils

import "strings"

// Role hierarchy: an operator may only manage accounts of a strictly lower
// rank than their own.
var roleRank = map[string]int{
	"operador":   1,
	"gerente":    2,
	"superadmin": 3,
}

// ValidateAndNormalizeRole validates and normalizes a role string.
// Returns the normalized role (lowercase) and a boolean indicating if it's valid.
func ValidateAndNormalizeRole(role string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(role))
	_, ok := roleRank[normalized]
	return normalized, ok
}

// IsValidRole checks if a role is valid without normalizing it
func IsValidRole(role string) bool {
	_, ok := roleRank[strings.ToLower(role)]
	return ok
}

// RoleOutranks reports whether manager's role is strictly above target's.
func RoleOutranks(manager, target string) bool {
	return roleRank[strings.ToLower(manager)] > roleRank[strings.ToLower(target)]
}
