package dto

import "donorhub/internal/domain"

type StatsDTO struct {
	TotalRegistrations int64   `json:"totalRegistrations" example:"12"`
	TotalDonations     float64 `json:"totalDonations" example:"1250"`
	PendingCount       int64   `json:"pendingCount" example:"3"`
}

func NewStatsDTO(stats *domain.Stats) StatsDTO {
	return StatsDTO{
		TotalRegistrations: stats.TotalRegistrations,
		TotalDonations:     stats.TotalDonations,
		PendingCount:       stats.PendingCount,
	}
}
