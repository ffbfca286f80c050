package inventory

// DefaultAisleLabel is used when an item carries no explicit aisle and no
// zone contains its coordinates.
const DefaultAisleLabel = "Corredor"

// ResolveAisle determines the display aisle for an item. An explicit aisle
// field wins verbatim; otherwise the first zone in list order containing
// the item's grid point supplies its label. Overlapping zones resolve by
// list order, not area or z-order.
func ResolveAisle(it Item, zones []Zone, fallback string) string {
	if it.Aisle != "" {
		return it.Aisle
	}
	if fallback == "" {
		fallback = DefaultAisleLabel
	}
	for _, z := range zones {
		if z.Contains(it.X, it.Y) {
			if z.Label != "" {
				return z.Label
			}
			return fallback
		}
	}
	return fallback
}
