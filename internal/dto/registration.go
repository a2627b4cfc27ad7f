package dto

import (
	"time"

	"donorhub/internal/domain"
)

// Persisted record shapes: field names and types are fixed for compatibility
// with existing exports, timestamps travel as RFC3339 strings.

type CreateRegistrationRequestDTO struct {
	FullName     string `json:"fullName" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	CampaignName string `json:"campaignName" validate:"required"`
}

type DonationDTO struct {
	ID        string  `json:"id"`
	Amount    float64 `json:"amount" example:"75"`
	Status    string  `json:"status" example:"PENDING"`
	Timestamp string  `json:"timestamp" example:"2024-11-02T16:09:57Z"`
}

type RegistrationDTO struct {
	ID           string      `json:"id"`
	UserID       string      `json:"userId" example:"user-1"`
	FullName     string      `json:"fullName" example:"Jane Doe"`
	Phone        string      `json:"phone" example:"555-0000"`
	CampaignName string      `json:"campaignName" example:"Education for All"`
	Timestamp    string      `json:"timestamp" example:"2024-11-02T16:09:57Z"`
	Donation     DonationDTO `json:"donation"`
}

func NewRegistrationDTO(reg *domain.Registration) RegistrationDTO {
	return RegistrationDTO{
		ID:           reg.ID,
		UserID:       reg.UserID,
		FullName:     reg.FullName,
		Phone:        reg.Phone,
		CampaignName: reg.CampaignName,
		Timestamp:    reg.CreatedAt.Format(time.RFC3339),
		Donation: DonationDTO{
			ID:        reg.Donation.ID,
			Amount:    reg.Donation.Amount,
			Status:    reg.Donation.Status,
			Timestamp: reg.Donation.UpdatedAt.Format(time.RFC3339),
		},
	}
}

func NewRegistrationListDTO(regs []domain.Registration) []RegistrationDTO {
	out := make([]RegistrationDTO, 0, len(regs))
	for i := range regs {
		out = append(out, NewRegistrationDTO(&regs[i]))
	}
	return out
}
