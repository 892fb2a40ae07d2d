package dto

import "github.com/SscSPs/product_transactions/internal/core/domain"

// SeedSuccessMessage is returned after the dataset has been replaced.
const SeedSuccessMessage = "Database initialized with seed data."

// SeedResponse reports a completed seed.
type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// ToSeedResponse converts a seed result to its API shape.
func ToSeedResponse(r *domain.SeedResult) SeedResponse {
	return SeedResponse{Message: SeedSuccessMessage, Count: r.Count}
}
