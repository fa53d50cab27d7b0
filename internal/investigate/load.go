package investigate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pachislot_analytics/internal/model"
	"pachislot_analytics/internal/repository/machine_repo"
	"pachislot_analytics/internal/repository/record_repo"
)

// LoadMachine Автомат и все его записи, без фильтров.
// Запросы те же, что у репозиториев сервиса, выполняются через database/sql.
func LoadMachine(ctx context.Context, db *sql.DB, machineID int64) (*model.Machine, []model.DailyRecord, error) {
	var m model.Machine
	err := machine_repo.BuildGetQuery(machineID).
		RunWith(db).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.StoreID, &m.Name, &m.SpecKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("%w: id %d", model.ErrMachineNotFound, machineID)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("select machine: %w", err)
	}

	rows, err := record_repo.BuildListQuery(model.RecordFilter{MachineID: machineID}).
		RunWith(db).
		QueryContext(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("select records: %w", err)
	}
	defer rows.Close()

	records := make([]model.DailyRecord, 0)
	for rows.Next() {
		var (
			rec             model.DailyRecord
			big, reg, games sql.NullInt64
		)
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.MachineID, &rec.MachineNo, &rec.Diff, &big, &reg, &games); err != nil {
			return nil, nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Big, rec.Reg, rec.Games = nullInt(big), nullInt(reg), nullInt(games)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("read records: %w", err)
	}

	return &m, records, nil
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
