package services

// CalcElevationCost walks the elevation price ladder, consuming count units
// tier by tier. Each tier's capacity is the gap between its cumulative
// MaxCount and the previous tier's; a MaxCount of 0 marks the final,
// unbounded tier. Counts at or below zero price at 0.
func CalcElevationCost(count int, tiers []ElevationTier) float64 {
	if count <= 0 || len(tiers) == 0 {
		return 0
	}

	var total float64
	remaining := count
	prevMax := 0

	for _, tier := range tiers {
		if remaining <= 0 {
			break
		}

		capacity := remaining // unbounded tier takes everything left
		if tier.MaxCount > 0 {
			capacity = tier.MaxCount - prevMax
			prevMax = tier.MaxCount
		}
		if capacity <= 0 {
			continue
		}

		units := remaining
		if units > capacity {
			units = capacity
		}
		total += float64(units) * tier.Rate
		remaining -= units
	}

	// Counts past a bounded final tier bill at that tier's rate.
	if remaining > 0 {
		total += float64(remaining) * tiers[len(tiers)-1].Rate
	}

	return total
}
