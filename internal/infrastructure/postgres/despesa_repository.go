package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rafaelmp/gestao-loja-api/internal/domain"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/entity"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/repository"
)

var _ repository.DespesaRepository = (*DespesaRepo)(nil)

// DespesaRepo implementação sobre PostgreSQL.
type DespesaRepo struct {
	q Querier
}

func NewDespesaRepository(q Querier) *DespesaRepo {
	return &DespesaRepo{q: q}
}

func (r *DespesaRepo) Create(despesa *entity.Despesa) error {
	if despesa.ID == "" {
		despesa.ID = uuid.New().String()
	}
	query := `
		INSERT INTO despesas (id, descricao, valor, data_despesa, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		despesa.ID, despesa.Descricao, despesa.Valor, despesa.DataDespesa, despesa.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create despesa: %w", err)
	}
	return nil
}

func (r *DespesaRepo) GetByID(id string) (*entity.Despesa, error) {
	query := `
		SELECT id, descricao, valor, data_despesa, created_at
		FROM despesas WHERE id = $1`
	var d entity.Despesa
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Descricao, &d.Valor, &d.DataDespesa, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get despesa: %w", err)
	}
	return &d, nil
}

// List devolve despesas mais recentes primeiro.
func (r *DespesaRepo) List(limit, offset int) ([]*entity.Despesa, error) {
	query := `
		SELECT id, descricao, valor, data_despesa, created_at
		FROM despesas
		ORDER BY data_despesa DESC, created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list despesas: %w", err)
	}
	defer rows.Close()
	var despesas []*entity.Despesa
	for rows.Next() {
		var d entity.Despesa
		if err := rows.Scan(&d.ID, &d.Descricao, &d.Valor, &d.DataDespesa, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan despesa: %w", err)
		}
		despesas = append(despesas, &d)
	}
	return despesas, rows.Err()
}

func (r *DespesaRepo) Update(despesa *entity.Despesa) error {
	query := `
		UPDATE despesas SET descricao = $2, valor = $3, data_despesa = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		despesa.ID, despesa.Descricao, despesa.Valor, despesa.DataDespesa,
	)
	if err != nil {
		return fmt.Errorf("update despesa: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DespesaRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM despesas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete despesa: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
