package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/quimicos-inventario/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isCheckViolation verifica si el error viene de un CHECK (23514) con el nombre de constraint dado.
func isCheckViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23514" && (constraint == "" || pgErr.ConstraintName == constraint)
	}
	return false
}

// isOutOfRange 22003 numeric_value_out_of_range (p. ej. stock + delta fuera de INTEGER).
func isOutOfRange(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22003"
}

// isStringTooLong 22001 string_data_right_truncation (texto más largo que el VARCHAR).
func isStringTooLong(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22001"
}

// isInvalidID 22P02 invalid_text_representation: un id que no es UUID no puede existir.
func isInvalidID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}

// dataError traduce excepciones de datos de PostgreSQL a errores de validación; nil si err no lo es.
func dataError(err error, field string) error {
	switch {
	case isOutOfRange(err):
		return &domain.ValidationError{Field: field, Reason: "valor fuera del rango permitido"}
	case isStringTooLong(err):
		return &domain.ValidationError{Field: field, Reason: "texto demasiado largo"}
	}
	return nil
}

// likePattern escapa comodines de LIKE y envuelve s en %...%.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
