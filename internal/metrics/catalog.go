package metrics

// WindowRendered records the shape of a rendered pagination window.
func WindowRendered(shape string) {
	PaginationWindows.WithLabelValues(shape).Inc()
}
