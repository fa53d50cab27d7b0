package model

type Machine struct {
	ID      int64
	StoreID int64
	Name    string
	SpecKey string // ключ спецификации, пустой - ищем по имени
}
