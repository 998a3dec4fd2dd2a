package models

import (
	"encoding/json"
	"time"
)

// ProductionRequest represents an incoming production request
type ProductionRequest struct {
	Recipe  string      `json:"recipe"`
	Batches json.Number `json:"batches"`
}

// Shortage is the per-ingredient deficit of a failed feasibility check
type Shortage struct {
	Ingredient string `json:"ingredient"`
	Required   int64  `json:"required"`
	Available  int64  `json:"available"`
	Deficit    int64  `json:"deficit"`
}

// ProductionRun represents a committed production
type ProductionRun struct {
	ID         string           `json:"id"`
	Recipe     string           `json:"recipe"`
	Batches    int64            `json:"batches"`
	Consumed   map[string]int64 `json:"consumed"`
	ProducedAt time.Time        `json:"producedAt"`
}

// ProductionPlan describes what a production would consume without committing it
type ProductionPlan struct {
	Recipe    string           `json:"recipe"`
	Batches   int64            `json:"batches"`
	Required  map[string]int64 `json:"required"`
	Feasible  bool             `json:"feasible"`
	Shortages []Shortage       `json:"shortages,omitempty"`
}
