// ABOUTME: Response DTOs for operational endpoints
// ABOUTME: Covers liveness probes and collection trigger acknowledgements

package responses

// HealthResponse reports process liveness
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// CollectResponse acknowledges a queued collection run
type CollectResponse struct {
	Status string `json:"status"`
}
