package purchases

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/presale/internal/dbx"
	"github.com/dmitrijs2005/presale/internal/server/models"
)

// UnknownEmail stands in for the owner of a purchase whose account is gone.
const UnknownEmail = "Unknown"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Purchase) (*models.Purchase, error) {

	query :=
		`INSERT INTO purchases (id, user_id, crypto_type, amount_crypto, amount_usd, tokens_purchased, wallet_address, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		p.ID, p.UserID, p.CryptoType, p.AmountCrypto, p.AmountUSD, p.TokensPurchased, p.WalletAddress, p.Status,
	).Scan(&p.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

// ListByUser returns up to limit of the user's purchases, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Purchase, error) {
	query :=
		`SELECT id, user_id, crypto_type, amount_crypto, amount_usd, tokens_purchased, wallet_address, status, created_at
		 FROM purchases
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Purchase{}
	for rows.Next() {
		var p models.Purchase
		if err := scanPurchase(rows, &p); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Totals aggregates every purchase on record.
func (r *PostgresRepository) Totals(ctx context.Context) (*models.Totals, error) {
	query :=
		`SELECT COUNT(*), COALESCE(SUM(amount_usd), 0), COALESCE(SUM(tokens_purchased), 0)
		 FROM purchases
		 `

	t := &models.Totals{}
	if err := r.db.QueryRowContext(ctx, query).Scan(&t.Count, &t.AmountUSD, &t.Tokens); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

// Recent returns up to limit purchases across all users, newest first, each
// with its owner's email.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]models.AdminPurchase, error) {
	query :=
		`SELECT p.id, p.user_id, p.crypto_type, p.amount_crypto, p.amount_usd, p.tokens_purchased,
		        p.wallet_address, p.status, p.created_at, u.email
		 FROM purchases p
		 LEFT JOIN users u ON u.id = p.user_id
		 ORDER BY p.created_at DESC
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.AdminPurchase{}
	for rows.Next() {
		var (
			ap    models.AdminPurchase
			email sql.NullString
		)
		if err := scanPurchase(rows, &ap.Purchase, &email); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ap.UserEmail = UnknownEmail
		if email.Valid {
			ap.UserEmail = email.String
		}
		result = append(result, ap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func scanPurchase(rows *sql.Rows, p *models.Purchase, extra ...any) error {
	dest := []any{
		&p.ID, &p.UserID, &p.CryptoType, &p.AmountCrypto, &p.AmountUSD, &p.TokensPurchased,
		&p.WalletAddress, &p.Status, &p.CreatedAt,
	}
	return rows.Scan(append(dest, extra...)...)
}
