package repositories

import (
	"errors"
	"net/http"

	apperrors "equipment-registry/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// translateError переводит низкоуровневые ошибки хранилища в ошибки приложения:
// отсутствие строки и нарушения ограничений - ошибки клиента, остальное
// уходит наверх как есть и отвечается 500.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503": // foreign_key_violation
			return apperrors.NewHttpError(http.StatusBadRequest, "запись ссылается на несуществующие данные", err, nil)
		case "23505": // unique_violation
			return apperrors.NewHttpError(http.StatusBadRequest, "запись с такими данными уже существует", err, nil)
		}
	}

	return err
}
