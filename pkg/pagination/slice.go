package pagination

// PageSlice cuts the requested page out of an in-memory slice.
func PageSlice[T any](items []T, req OffsetRequest) *OffsetResult[T] {
	_ = req.Validate()

	total := len(items)
	start := max(req.Offset(), 0)
	if start > total {
		start = total
	}
	end := start + req.Size
	if end > total {
		end = total
	}

	page := make([]T, end-start)
	copy(page, items[start:end])

	return NewOffsetResult(page, int64(total), req.Page, req.Size)
}
