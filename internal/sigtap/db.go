package sigtap

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/msaude/bpagen/internal/sql"
)

// DB resolves unit values from the sigtap.unit_values catalog table for a
// fixed competence. Query failures other than no-rows degrade to unknown with
// a warning; a broken catalog must not abort a remittance run.
type DB struct {
	pool        *pgxpool.Pool
	ctx         context.Context
	log         zerolog.Logger
	competencia string
}

// NewDB builds a catalog-backed resolver pinned to one competence.
func NewDB(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, competencia string) *DB {
	return &DB{pool: pool, ctx: ctx, log: log, competencia: competencia}
}

func (d *DB) UnitValueCents(code string) (int64, bool) {
	var cents int64
	err := d.pool.QueryRow(d.ctx, embedsql.UnitValueCents, code, d.competencia).Scan(&cents)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			d.log.Warn().Err(err).Str("procedimento", code).Msg("unit value lookup failed")
		}
		return 0, false
	}
	return cents, true
}
