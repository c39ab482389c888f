package models

// PredictRequest is the body of POST /api/v1/predict.
type PredictRequest struct {
	Player  string      `json:"player" validate:"required"`
	Context GameContext `json:"game_context"`
}

// BatchPredictRequest is the body of POST /api/v1/predict/batch.
type BatchPredictRequest struct {
	Requests []PredictRequest `json:"requests" validate:"required,min=1,max=100,dive"`
}

// BatchPredictResponse wraps batch results, preserving input order.
type BatchPredictResponse struct {
	Results []PredictionResult `json:"results"`
}

// HistoryResponse is the body of GET /api/v1/history.
type HistoryResponse struct {
	Entries []PredictionRecord `json:"entries"`
}

// PlayersResponse lists the quick-select player names for the dashboard.
type PlayersResponse struct {
	Players []string `json:"players"`
}
