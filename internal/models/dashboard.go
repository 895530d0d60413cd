package models

// DashboardSummary is the admin landing-page snapshot. Every figure is
// computed fresh from the store on each request.
type DashboardSummary struct {
	TotalPeriodsThisYear int64 `json:"total_period_per_year"`
	HealthWorkerCount    int64 `json:"health_worker_count"`
	UserCount            int64 `json:"users_count"`
	InactiveCount        int64 `json:"inactive_count"`
	InactiveWorkerCount  int64 `json:"inactive_hw_count"`
	InactiveFeminine     int64 `json:"inactive_user_count"`
}

// PieSlice is one nonzero feminine-status bucket.
type PieSlice struct {
	Value    int64  `json:"value"`
	Category string `json:"category"`
}

// MonthCount is one month of the period histogram; the series always carries
// all twelve months, zeros included.
type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// AssignedFeminine is one row of a worker's monitoring list.
type AssignedFeminine struct {
	ID                          uint   `json:"id"`
	FeminineHealthWorkerGroupID uint   `json:"feminine_health_worker_group_id"`
	FullName                    string `json:"full_name"`
}

// FeminineOption is a selectable feminine user in the assign dialog.
type FeminineOption struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
}
