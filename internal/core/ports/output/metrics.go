package ports

// MetricsRecorder receives counters produced by the core services.
type MetricsRecorder interface {
	RecordPeriodicTasksPurged(count int64)
	RecordLookup(entity string, found bool)
}
