package models

// HealthStatus is the /api/health response body.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Uptime  string `json:"uptime"`
}
