package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nbaclutch/clutch-api/internal/engine"
	"github.com/nbaclutch/clutch-api/internal/history"
	"github.com/nbaclutch/clutch-api/internal/models"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

var predictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "clutch_predictions_total",
	Help: "Total number of predictions served, by method",
}, []string{"method"})

// HistoryQueue defines the interface for the async history writer pool
type HistoryQueue interface {
	Enqueue(record models.PredictionRecord) bool
	QueueDepth() int
}

type Config struct {
	Engine  engine.Service
	History history.Store
	Pool    HistoryQueue
	Redis   *redis.Client // nil when history is in-memory
	Logger  *zap.Logger
}

type Handler struct {
	engine   engine.Service
	history  history.Store
	pool     HistoryQueue
	redis    *redis.Client
	logger   *zap.SugaredLogger
	validate *validator.Validate
}

func New(cfg Config) *Handler {
	return &Handler{
		engine:   cfg.Engine,
		history:  cfg.History,
		pool:     cfg.Pool,
		redis:    cfg.Redis,
		logger:   cfg.Logger.Sugar(),
		validate: validator.New(),
	}
}
