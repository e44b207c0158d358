package repositories

import (
	"database/sql"
	"errors"
)

// ensureRowsAffected возвращает ошибку, если UPDATE/DELETE не затронул ни одной строки.
func ensureRowsAffected(res sql.Result, notFoundMsg string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return nil
	}
	if n == 0 {
		return errors.New(notFoundMsg)
	}
	return nil
}

// nullifyEmpty возвращает nil при пустой строке
func nullifyEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullifyZero - 0 как NULL, для id сообщений
func nullifyZero[T int | int64](v T) any {
	if v == 0 {
		return nil
	}
	return v
}
