package req

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode разбирает JSON тело запроса в T. Неизвестные поля - ошибка.
func Decode[T any](body io.Reader) (T, error) {
	var v T
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("decode request: %w", err)
	}
	return v, nil
}
