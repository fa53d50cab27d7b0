package machine_repo

import (
	"context"
	"errors"
	"fmt"

	"pachislot_analytics/internal/model"
	"pachislot_analytics/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table      = "machines"
	colID      = "id"
	colStoreID = "store_id"
	colName    = "name"
	colSpecKey = "spec_key"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewMachineRepository(dbc *pgxpool.Pool) repository.MachineRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// BuildGetQuery Запрос одного автомата, колонки id, store_id, name, spec_key
func BuildGetQuery(id int64) sq.SelectBuilder {
	return selectMachines().Where(sq.Eq{colID: id})
}

func selectMachines() sq.SelectBuilder {
	return sq.Select(colID, colStoreID, colName, "COALESCE("+colSpecKey+", '')").
		From(table).
		PlaceholderFormat(sq.Dollar)
}

// GetMachine - возвращает автомат по ID.
// Если записи нет - model.ErrMachineNotFound
func (r *repo) GetMachine(ctx context.Context, id int64) (*model.Machine, error) {
	sqlStr, args, err := BuildGetQuery(id).ToSql()
	if err != nil {
		return nil, err
	}

	var m model.Machine
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).
		QueryRow(ctx, sqlStr, args...).
		Scan(&m.ID, &m.StoreID, &m.Name, &m.SpecKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", model.ErrMachineNotFound, id)
		}
		return nil, err
	}

	return &m, nil
}

// ListMachines - все автоматы, отсортированные по магазину и имени
func (r *repo) ListMachines(ctx context.Context) ([]model.Machine, error) {
	query := selectMachines().
		OrderBy(colStoreID, colName, colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	machines := make([]model.Machine, 0)
	for rows.Next() {
		var m model.Machine
		if err := rows.Scan(&m.ID, &m.StoreID, &m.Name, &m.SpecKey); err != nil {
			return nil, err
		}
		machines = append(machines, m)
	}

	return machines, rows.Err()
}
