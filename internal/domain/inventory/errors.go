package inventory

import "github.com/storemap/backend/internal/domain/shared"

var (
	errInvalidMapBounds = shared.NewDomainError("INVALID_INPUT", "Map width and height must be positive")
	errNegativeQuantity = shared.NewDomainError("INVALID_INPUT", "Item quantity cannot be negative")
	errInvalidZoneSpan  = shared.NewDomainError("INVALID_INPUT", "Zone width and height must be positive")
)
