package event_repo

import (
	"context"
	"time"

	"pachislot_analytics/internal/repository"
	"pachislot_analytics/pkg/jst"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table      = "event_days"
	colStoreID = "store_id"
	colDate    = "date"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewEventDayRepository(dbc *pgxpool.Pool) repository.EventDayRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// ListEventDates - дни мероприятий магазина за период (границы включительно)
func (r *repo) ListEventDates(ctx context.Context, storeID int64, from, to *time.Time) ([]time.Time, error) {
	// Формируем запрос
	query := sq.Select(colDate).
		From(table).
		Where(sq.Eq{colStoreID: storeID}).
		OrderBy(colDate).
		PlaceholderFormat(sq.Dollar)

	if from != nil {
		query = query.Where(sq.GtOrEq{colDate: jst.Format(*from)})
	}
	if to != nil {
		query = query.Where(sq.LtOrEq{colDate: jst.Format(*to)})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	return dates, rows.Err()
}
