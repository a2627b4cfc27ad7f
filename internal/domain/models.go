package domain

import "time"

const (
	RoleAdmin string = "admin"
	RoleUser  string = "user"
)

// GuestOwnerID marks registrations created without an authenticated session.
const GuestOwnerID = "guest"

const (
	// DonationPending is the status every donation is born with.
	DonationPending string = "PENDING"
	// DonationSuccess is terminal; a successful donation is never re-finalized.
	DonationSuccess string = "SUCCESS"
	// DonationFailed allows a later retry that overwrites it.
	DonationFailed string = "FAILED"
)

type User struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	Role      string    `db:"role"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type Donation struct {
	ID        string    `db:"donation_id"`
	Amount    float64   `db:"donation_amount"`
	Status    string    `db:"donation_status"`
	UpdatedAt time.Time `db:"donation_updated_at"`
}

// Registration always carries its donation; the two are created in one write.
type Registration struct {
	Seq          int64     `db:"seq"`
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	FullName     string    `db:"full_name"`
	Phone        string    `db:"phone"`
	CampaignName string    `db:"campaign_name"`
	CreatedAt    time.Time `db:"created_at"`
	Donation     Donation
}

type Stats struct {
	TotalRegistrations int64
	TotalDonations     float64
	PendingCount       int64
}
