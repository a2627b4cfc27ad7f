package registrationrepo

import (
	"context"

	"donorhub/internal/domain"
	"donorhub/internal/pg"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const registrationColumns = `seq, id, user_id, full_name, phone, campaign_name, created_at,
               donation_id, donation_amount, donation_status, donation_updated_at`

func scanRegistration(row pgx.Row, reg *domain.Registration) error {
	return row.Scan(
		&reg.Seq, &reg.ID, &reg.UserID, &reg.FullName, &reg.Phone, &reg.CampaignName, &reg.CreatedAt,
		&reg.Donation.ID, &reg.Donation.Amount, &reg.Donation.Status, &reg.Donation.UpdatedAt,
	)
}

// Save writes the registration and its donation in a single insert, so the
// registration intent is durable no matter what the payment later does.
func (r *Repository) Save(ctx context.Context, reg *domain.Registration) error {
	query := `
        INSERT INTO registrations (id, user_id, full_name, phone, campaign_name, created_at,
                                   donation_id, donation_amount, donation_status, donation_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING seq
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query,
			reg.ID, reg.UserID, reg.FullName, reg.Phone, reg.CampaignName, reg.CreatedAt,
			reg.Donation.ID, reg.Donation.Amount, reg.Donation.Status, reg.Donation.UpdatedAt,
		).Scan(&reg.Seq)
		if err != nil {
			zap.L().Error("can't save registration", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `
        SELECT ` + registrationColumns + `
        FROM registrations
        WHERE id = $1
    `
	var reg domain.Registration
	err := scanRegistration(r.db.QueryRow(ctx, query, id), &reg)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find registration", zap.Error(err))
		return nil, err
	}
	return &reg, nil
}

// FindByUserID returns the owner's registrations in insertion order.
func (r *Repository) FindByUserID(ctx context.Context, userID string) ([]domain.Registration, error) {
	query := `
        SELECT ` + registrationColumns + `
        FROM registrations
        WHERE user_id = $1
        ORDER BY seq ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get registrations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectRegistrations(rows)
}

// FindAll returns every registration in insertion order.
func (r *Repository) FindAll(ctx context.Context) ([]domain.Registration, error) {
	query := `
        SELECT ` + registrationColumns + `
        FROM registrations
        ORDER BY seq ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get all registrations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectRegistrations(rows)
}

func collectRegistrations(rows pgx.Rows) ([]domain.Registration, error) {
	var regs []domain.Registration
	for rows.Next() {
		var reg domain.Registration
		if err := scanRegistration(rows, &reg); err != nil {
			zap.L().Error("can't scan registration row", zap.Error(err))
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, nil
}

// UpdateDonation finalizes the nested donation in place. Amount, status and
// timestamp move together; identity fields stay untouched. Returns the number
// of rows written so callers can tell a missing registration apart.
func (r *Repository) UpdateDonation(ctx context.Context, donation *domain.Donation, regID string) (int64, error) {
	query := `
        UPDATE registrations
        SET donation_amount = $1, donation_status = $2, donation_updated_at = $3
        WHERE id = $4
    `
	var affected int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, donation.Amount, donation.Status, donation.UpdatedAt, regID)
		if err != nil {
			zap.L().Error("failed to update donation", zap.Error(err))
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM registrations").Scan(&count)
	if err != nil {
		zap.L().Error("can't count registrations", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountByDonationStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM registrations WHERE donation_status = $1", status).Scan(&count)
	if err != nil {
		zap.L().Error("can't count registrations by donation status", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) SumDonationsByStatus(ctx context.Context, status string) (float64, error) {
	var sum float64
	err := r.db.QueryRow(ctx, "SELECT COALESCE(SUM(donation_amount), 0) FROM registrations WHERE donation_status = $1", status).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum donations by status", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
