package services

import (
	"strings"

	"github.com/google/uuid"
)

// LegacyUserIDPrefix marks client-generated ids from before user ids were
// UUIDs. The prefix match is exact and case-sensitive.
const LegacyUserIDPrefix = "user_"

// UserIDPolicy decides whether a user id must be replaced before it is
// persisted
type UserIDPolicy struct {
	NewID func() string
}

// NewUserIDPolicy returns the policy that replaces legacy ids with random
// version 4 UUIDs
func NewUserIDPolicy() UserIDPolicy {
	return UserIDPolicy{NewID: uuid.NewString}
}

// IsLegacyUserID reports whether id uses the old format
func IsLegacyUserID(id string) bool {
	return strings.HasPrefix(id, LegacyUserIDPrefix)
}

// Migrate returns the id to store the user under and whether it differs
// from the one supplied.
func (p UserIDPolicy) Migrate(id string) (string, bool) {
	if !IsLegacyUserID(id) {
		return id, false
	}
	return p.NewID(), true
}
