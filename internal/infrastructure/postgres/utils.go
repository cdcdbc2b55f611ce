package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// likeEscaper neutraliza los metacaracteres de LIKE/ILIKE. El carácter de
// escape por defecto de PostgreSQL es la barra invertida.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike prepara un término de búsqueda para usarse dentro de un patrón
// ILIKE: "100%" busca el texto literal, no todas las filas.
func escapeLike(q string) string {
	return likeEscaper.Replace(q)
}

// isForeignKeyViolation verifica si un error es una violación de FK (23503).
// Las escrituras referenciales verifican FKs antes de insertar, pero una
// cascada concurrente puede colarse entre la verificación y el insert.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return strings.Contains(err.Error(), "23503")
}
