package dto

import "sort"

// Health probe states.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// LivenessResponse is the body of the liveness probe.
type LivenessResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse reports each dependency check by name.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
	Failed []string          `json:"failed,omitempty"`
}

// Ready reports whether every check passed.
func (r ReadinessResponse) Ready() bool {
	return r.Status == HealthReady
}

// ToReadinessResponse folds checker results into a probe body. Failed lists
// the names of failing checks in sorted order.
func ToReadinessResponse(results map[string]error) ReadinessResponse {
	resp := ReadinessResponse{
		Status: HealthReady,
		Checks: make(map[string]string, len(results)),
	}
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Failed = append(resp.Failed, name)
			continue
		}
		resp.Checks[name] = HealthOK
	}
	if len(resp.Failed) > 0 {
		sort.Strings(resp.Failed)
		resp.Status = HealthNotReady
	}
	return resp
}
