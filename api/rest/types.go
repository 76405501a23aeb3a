package rest

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// EvaluateRequest represents an evaluation request.
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResult is the data of a successful evaluation.
type EvaluateResult struct {
	ID         string `json:"id"`
	Expression string `json:"expression"`
	Result     int64  `json:"result"`
}

// EvaluateFailure is the data of a rejected expression.
type EvaluateFailure struct {
	ID         string `json:"id"`
	Expression string `json:"expression"`
	Kind       string `json:"kind"`
	Stage      string `json:"stage"`
	Position   int    `json:"position"`
}

// LatencySummary holds evaluation latencies in microseconds.
type LatencySummary struct {
	Count int64   `json:"count"`
	Min   int64   `json:"min"`
	Max   int64   `json:"max"`
	Mean  float64 `json:"mean"`
	P50   int64   `json:"p50"`
	P90   int64   `json:"p90"`
	P99   int64   `json:"p99"`
}

// StatsResponse represents the evaluation statistics.
type StatsResponse struct {
	Successes int64            `json:"successes"`
	Failures  map[string]int64 `json:"failures"`
	LatencyUS LatencySummary   `json:"latency_us"`
}
