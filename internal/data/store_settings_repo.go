package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/makka/storefront-api/internal/data/pgxutil"
	"github.com/makka/storefront-api/internal/domain/model"
)

// StoreSettingsRepo provides database operations for per-store settings.
type StoreSettingsRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewStoreSettingsRepo creates a new StoreSettingsRepo.
func NewStoreSettingsRepo(db *sql.DB) *StoreSettingsRepo {
	return &StoreSettingsRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const storeSettingsColumns = `store_id, payment_cod_enabled, payment_qris_enabled,
	shipping_courier_enabled, shipping_pickup_enabled, shipping_fee_flat,
	shipping_fee_type, pickup_address, updated_at`

// GetByStoreID retrieves settings for a store.
func (r *StoreSettingsRepo) GetByStoreID(ctx context.Context, storeID string) (*model.StoreSettings, error) {
	var out model.StoreSettings
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+storeSettingsColumns+`
			FROM store_settings
			WHERE store_id = $1`, storeID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.StoreSettings])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStoreSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get store settings: %w", err)
	}
	return &out, nil
}

// Update applies the requested changes and bumps updated_at.
func (r *StoreSettingsRepo) Update(
	ctx context.Context,
	storeID string,
	req model.UpdateStoreSettingsRequest,
) (*model.StoreSettings, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 8)
	args := make([]any, 0, 9)
	nextIdx := func() int { return len(args) + 1 }

	if req.PaymentCODEnabled != nil {
		setParts = append(setParts, fmt.Sprintf("payment_cod_enabled = $%d", nextIdx()))
		args = append(args, *req.PaymentCODEnabled)
	}
	if req.PaymentQRISEnabled != nil {
		setParts = append(setParts, fmt.Sprintf("payment_qris_enabled = $%d", nextIdx()))
		args = append(args, *req.PaymentQRISEnabled)
	}
	if req.ShippingCourierEnabled != nil {
		setParts = append(setParts, fmt.Sprintf("shipping_courier_enabled = $%d", nextIdx()))
		args = append(args, *req.ShippingCourierEnabled)
	}
	if req.ShippingPickupEnabled != nil {
		setParts = append(setParts, fmt.Sprintf("shipping_pickup_enabled = $%d", nextIdx()))
		args = append(args, *req.ShippingPickupEnabled)
	}
	if req.ShippingFeeFlat != nil {
		setParts = append(setParts, fmt.Sprintf("shipping_fee_flat = $%d", nextIdx()))
		args = append(args, *req.ShippingFeeFlat)
	}
	if req.ShippingFeeType != nil {
		setParts = append(setParts, fmt.Sprintf("shipping_fee_type = $%d", nextIdx()))
		args = append(args, *req.ShippingFeeType)
	}
	if req.PickupAddress != nil {
		setParts = append(setParts, fmt.Sprintf("pickup_address = $%d", nextIdx()))
		args = append(args, *req.PickupAddress)
	}

	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	args = append(args, storeID)
	query := "UPDATE store_settings SET " + strings.Join(setParts, ", ") +
		" WHERE store_id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + storeSettingsColumns

	var out model.StoreSettings
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.StoreSettings])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStoreSettingsNotFound
		}
		return nil, fmt.Errorf("failed to update store settings: %w", err)
	}
	return &out, nil
}
