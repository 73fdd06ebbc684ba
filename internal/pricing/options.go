package pricing

import "context"

// OptionAggregator sums the surcharges of the options a customer selected.
// Every selected id counts exactly once, even when two ids share a name; the
// name-level dedup users see in option listings is a listing concern and must
// never run here.
type OptionAggregator struct {
	options OptionReader
}

func NewOptionAggregator(options OptionReader) *OptionAggregator {
	return &OptionAggregator{options: options}
}

// TotalOptionPrice returns the summed add price of the given option ids.
// AddPrice may be negative, so the total may be too. No selection means 0.
func (a *OptionAggregator) TotalOptionPrice(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	options, err := a.options.GetByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, option := range options {
		total += option.AddPrice
	}
	return total, nil
}
