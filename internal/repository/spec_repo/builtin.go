package spec_repo

import "pachislot_analytics/internal/model"

// HokutoTensei2Key Ключ встроенной спецификации "北斗の拳 転生の章2"
const HokutoTensei2Key = "hokuto-tensei2"

// DefaultSpecs Встроенные спецификации. Сигнал - первое попадание в AT (учитывается как REG).
func DefaultSpecs() []model.MachineSpec {
	return []model.MachineSpec{
		{
			Key:     HokutoTensei2Key,
			Name:    "スマスロ北斗の拳 転生の章2",
			Aliases: []string{"北斗の拳 転生の章2", "北斗転生2", "転生の章2", "Hokuto no Ken Tensei no Sho 2"},
			Signal:  model.SignalReg,
			Settings: []model.SettingSpec{
				{Setting: 1, RegProb: 1 / 366.0, PayoutRate: 97.6},
				{Setting: 2, RegProb: 1 / 357.0, PayoutRate: 98.4},
				{Setting: 3, RegProb: 1 / 336.3, PayoutRate: 100.7},
				{Setting: 4, RegProb: 1 / 298.7, PayoutRate: 106.2},
				{Setting: 5, RegProb: 1 / 283.2, PayoutRate: 111.1},
				{Setting: 6, RegProb: 1 / 273.1, PayoutRate: 114.9},
			},
		},
	}
}
