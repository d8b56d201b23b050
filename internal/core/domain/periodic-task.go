package domain

// PeriodicTaskTable is the scheduler's task store. Its schema belongs to the
// scheduler, not to this service.
const PeriodicTaskTable = "django_celery_beat_periodictask"

type PeriodicTask struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Task    string `json:"task"`
	Enabled bool   `json:"enabled"`
}
