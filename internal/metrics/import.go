package metrics

import "time"

// RecordImported records a catalog record written by an import.
func RecordImported(kind string) {
	ImportRecordsTotal.WithLabelValues(kind, "imported").Inc()
}

// RecordRejected records a catalog record an import skipped.
func RecordRejected(kind string) {
	ImportRecordsTotal.WithLabelValues(kind, "rejected").Inc()
}

// ImportFinished records the run time of one import.
func ImportFinished(duration time.Duration) {
	ImportDuration.Observe(duration.Seconds())
}
