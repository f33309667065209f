package service

import (
	"errors"
	"log"
	"regexp"
)

var (
	ErrMalformedIdentifier = errors.New("malformed restaurant identifier")
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrMenuItemNotFound    = errors.New("menu item not found")
)

var uuidPattern = regexp.MustCompile(
	`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// legacyAliases maps short restaurant slugs kept for old deep links to their
// canonical ids.
var legacyAliases = map[string]string{
	"restaurant1": "550e8400-e29b-41d4-a716-446655440001",
	"restaurant2": "550e8400-e29b-41d4-a716-446655440002",
	"restaurant3": "550e8400-e29b-41d4-a716-446655440003",
}

// Resolve canonicalizes a restaurant identifier. UUID v1-v5 strings pass
// through untouched; known legacy aliases are substituted with a warning;
// anything else is a malformed identifier, which is a different failure than
// the restaurant not existing.
func Resolve(identifier string) (string, error) {
	if uuidPattern.MatchString(identifier) {
		return identifier, nil
	}

	if canonical, ok := legacyAliases[identifier]; ok {
		log.Printf("[catalog-svc] legacy alias %q resolved to %s", identifier, canonical)
		return canonical, nil
	}

	return "", ErrMalformedIdentifier
}
