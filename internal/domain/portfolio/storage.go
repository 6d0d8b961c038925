package portfolio

import (
	"context"
	"errors"
)

const (
	// SlotAllProfiles holds the current multi-profile document.
	SlotAllProfiles = "portfolio_all_profiles"
	// SlotLegacy holds the pre-profiles single-portfolio document. Read only.
	SlotLegacy = "portfolio_data"
	// SlotQuarantine receives an undecodable current document before it is replaced.
	SlotQuarantine = "portfolio_all_profiles.corrupt"
)

var ErrSlotNotFound = errors.New("storage slot is empty")

// Storage is a string-keyed slot store. Get returns ErrSlotNotFound for an
// empty slot.
type Storage interface {
	Get(ctx context.Context, slot string) (string, error)
	Set(ctx context.Context, slot string, value string) error
	// Name identifies the backend in logs and metrics.
	Name() string
}
