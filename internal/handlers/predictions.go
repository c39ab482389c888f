package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/nbaclutch/clutch-api/internal/models"
)

// historyDisplayCap bounds how many history entries one request may fetch.
const historyDisplayCap = 10

// popularPlayers is the dashboard quick-select list.
var popularPlayers = []string{
	"LeBron James", "Stephen Curry", "Kevin Durant", "Damian Lillard",
	"Kawhi Leonard", "Jimmy Butler", "Kyrie Irving", "Paul George",
	"James Harden", "Russell Westbrook", "Jayson Tatum", "Luka Doncic",
	"Giannis Antetokounmpo", "Joel Embiid", "Devin Booker",
}

// PostPredict returns a clutch performance prediction for one player
// @Summary Predict Clutch Performance
// @Tags Predictions
// @Accept json
// @Produce json
// @Param body body models.PredictRequest true "Player and game context"
// @Success 200 {object} models.PredictionResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /predict [post]
func (h *Handler) PostPredict(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	result := h.engine.Predict(r.Context(), req.Player, req.Context)
	h.record(req, result)

	h.jsonResponse(w, http.StatusOK, result)
}

// PostPredictBatch returns predictions for multiple players, preserving order
// @Summary Batch Predict Clutch Performance
// @Tags Predictions
// @Accept json
// @Produce json
// @Param body body models.BatchPredictRequest true "Players and game contexts"
// @Success 200 {object} models.BatchPredictResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /predict/batch [post]
func (h *Handler) PostPredictBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.BatchPredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	results := h.engine.PredictBatch(r.Context(), req.Requests)
	for i, result := range results {
		h.record(req.Requests[i], result)
	}

	h.jsonResponse(w, http.StatusOK, models.BatchPredictResponse{Results: results})
}

// GetModelInfo reports the state of the loaded model artifacts
// @Summary Get Model Info
// @Tags Predictions
// @Produce json
// @Success 200 {object} models.ModelInfo
// @Router /model [get]
func (h *Handler) GetModelInfo(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.engine.Info())
}

// GetHistory returns the most recent predictions, newest first
// @Summary Get Prediction History
// @Tags Predictions
// @Produce json
// @Param limit query int false "Max entries (1-10, default 10)"
// @Success 200 {object} models.HistoryResponse
// @Router /history [get]
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit := historyDisplayCap
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		if n < limit {
			limit = n
		}
	}

	entries, err := h.history.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Errorw("Failed to read prediction history", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to read history")
		return
	}
	if entries == nil {
		entries = []models.PredictionRecord{}
	}

	h.jsonResponse(w, http.StatusOK, models.HistoryResponse{Entries: entries})
}

// GetPlayers returns the quick-select player list for the dashboard
// @Summary List Popular Players
// @Tags Predictions
// @Produce json
// @Success 200 {object} models.PlayersResponse
// @Router /players [get]
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, models.PlayersResponse{Players: popularPlayers})
}

// record queues a successful prediction for history persistence. Error
// results are still returned to the caller but are not recorded.
func (h *Handler) record(req models.PredictRequest, result models.PredictionResult) {
	predictionsTotal.WithLabelValues(result.Method).Inc()
	if result.IsError() {
		return
	}
	rec := models.PredictionRecord{
		ID:               uuid.NewString(),
		Context:          req.Context,
		PredictionResult: result,
	}
	if !h.pool.Enqueue(rec) {
		h.logger.Warnw("History queue full, dropping record", "player", req.Player)
	}
}
