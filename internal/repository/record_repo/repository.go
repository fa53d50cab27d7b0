package record_repo

import (
	"context"

	"pachislot_analytics/internal/model"
	"pachislot_analytics/internal/repository"
	"pachislot_analytics/pkg/jst"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "daily_records"
	colID        = "id"
	colDate      = "date"
	colMachineID = "machine_id"
	colMachineNo = "machine_no"
	colDiff      = "diff"
	colBig       = "big"
	colReg       = "reg"
	colGames     = "games"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewRecordRepository(dbc *pgxpool.Pool) repository.RecordRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// ListRecords - записи автомата за период (границы включительно).
// Отбор по наличию игр здесь не делается, это решает сервис.
func (r *repo) ListRecords(ctx context.Context, filter model.RecordFilter) ([]model.DailyRecord, error) {
	sqlStr, args, err := BuildListQuery(filter).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]model.DailyRecord, 0)
	for rows.Next() {
		var rec model.DailyRecord
		err := rows.Scan(
			&rec.ID,
			&rec.Date,
			&rec.MachineID,
			&rec.MachineNo,
			&rec.Diff,
			&rec.Big,
			&rec.Reg,
			&rec.Games,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// BuildListQuery Запрос записей по фильтру. Колонки в порядке
// id, date, machine_id, machine_no, diff, big, reg, games.
// Используется и репозиторием, и утилитой investigate.
func BuildListQuery(filter model.RecordFilter) sq.SelectBuilder {
	query := sq.Select(colID, colDate, colMachineID, colMachineNo, colDiff, colBig, colReg, colGames).
		From(table).
		Where(sq.Eq{colMachineID: filter.MachineID}).
		OrderBy(colDate, colMachineNo).
		PlaceholderFormat(sq.Dollar)

	if filter.MachineNo != nil {
		query = query.Where(sq.Eq{colMachineNo: *filter.MachineNo})
	}
	// Даты передаем строкой, чтобы Postgres сравнивал календарные дни без часового пояса
	if filter.From != nil {
		query = query.Where(sq.GtOrEq{colDate: jst.Format(*filter.From)})
	}
	if filter.To != nil {
		query = query.Where(sq.LtOrEq{colDate: jst.Format(*filter.To)})
	}

	return query
}
