package iso20022

import "github.com/google/uuid"

// NewUETR returns a fresh unique end-to-end transaction reference. UETRs are
// lowercase version-4 UUIDs, matching PatternUETR.
func NewUETR() string {
	return uuid.NewString()
}
