package dto

type PayRequestDTO struct {
	Amount     float64 `json:"amount" example:"75"`
	CardName   string  `json:"cardName" example:"Jane Doe"`
	CardNumber string  `json:"cardNumber" example:"4539148803436467"`
	Expiry     string  `json:"expiry" example:"12/27"`
	CVC        string  `json:"cvc" example:"123"`
}

type AttemptStatusDTO struct {
	State      string  `json:"state" example:"PROCESSING"`
	Phase      string  `json:"phase,omitempty" example:"Contacting bank..."`
	Amount     float64 `json:"amount,omitempty" example:"75"`
	NavigateTo string  `json:"navigateTo,omitempty" example:"/dashboard"`
	Error      string  `json:"error,omitempty"`
}
