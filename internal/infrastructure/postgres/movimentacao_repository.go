package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/entity"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/repository"
)

var _ repository.MovimentacaoEstoqueRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação sobre PostgreSQL (usável com pool ou tx).
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Create persiste uma movimentação de estoque.
func (r *MovimentacaoRepo) Create(mov *entity.MovimentacaoEstoque) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimentacoes_estoque (id, produto_id, tipo, quantidade, motivo, data_movimentacao, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	motivo := (*string)(nil)
	if mov.Motivo != "" {
		motivo = &mov.Motivo
	}
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.ProdutoID, mov.Tipo, mov.Quantidade, motivo,
		mov.DataMovimentacao, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movimentação: %w", err)
	}
	return nil
}

// GetByID obtém uma movimentação por ID.
func (r *MovimentacaoRepo) GetByID(id string) (*entity.MovimentacaoEstoque, error) {
	query := `
		SELECT id, produto_id, tipo, quantidade, motivo, data_movimentacao, created_at
		FROM movimentacoes_estoque WHERE id = $1`
	var m entity.MovimentacaoEstoque
	var motivo *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProdutoID, &m.Tipo, &m.Quantidade, &motivo, &m.DataMovimentacao, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimentação: %w", err)
	}
	if motivo != nil {
		m.Motivo = *motivo
	}
	return &m, nil
}

// Update atualiza tipo, quantidade e motivo de uma movimentação.
func (r *MovimentacaoRepo) Update(mov *entity.MovimentacaoEstoque) error {
	query := `
		UPDATE movimentacoes_estoque SET tipo = $2, quantidade = $3, motivo = $4
		WHERE id = $1`
	motivo := (*string)(nil)
	if mov.Motivo != "" {
		motivo = &mov.Motivo
	}
	_, err := r.q.Exec(context.Background(), query, mov.ID, mov.Tipo, mov.Quantidade, motivo)
	if err != nil {
		return fmt.Errorf("update movimentação: %w", err)
	}
	return nil
}

// Delete exclui uma movimentação por ID.
func (r *MovimentacaoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movimentacoes_estoque WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movimentação: %w", err)
	}
	return nil
}

// List lista movimentações com nome/categoria do produto, mais recentes primeiro.
func (r *MovimentacaoRepo) List(filtro repository.MovimentacaoFiltro, limit, offset int) ([]*repository.MovimentacaoComProduto, error) {
	query := `
		SELECT m.id, m.produto_id, m.tipo, m.quantidade, m.motivo, m.data_movimentacao, m.created_at,
		       p.nome, p.categoria
		FROM movimentacoes_estoque m
		JOIN produtos p ON p.id = m.produto_id`
	args := []any{}
	pos := 1
	where := ""
	if filtro.ProdutoID != "" {
		where += fmt.Sprintf(" AND m.produto_id = $%d", pos)
		args = append(args, filtro.ProdutoID)
		pos++
	}
	if filtro.Tipo != "" {
		where += fmt.Sprintf(" AND m.tipo = $%d", pos)
		args = append(args, filtro.Tipo)
		pos++
	}
	if where != "" {
		query += " WHERE" + where[4:] // remove o " AND" inicial
	}
	query += fmt.Sprintf(" ORDER BY m.data_movimentacao DESC, m.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentações: %w", err)
	}
	defer rows.Close()
	var list []*repository.MovimentacaoComProduto
	for rows.Next() {
		var m repository.MovimentacaoComProduto
		var motivo *string
		if err := rows.Scan(&m.ID, &m.ProdutoID, &m.Tipo, &m.Quantidade, &motivo,
			&m.DataMovimentacao, &m.CreatedAt, &m.ProdutoNome, &m.ProdutoCategoria); err != nil {
			return nil, fmt.Errorf("scan movimentação: %w", err)
		}
		if motivo != nil {
			m.Motivo = *motivo
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByProduto número de movimentações que referenciam o produto.
func (r *MovimentacaoRepo) CountByProduto(produtoID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM movimentacoes_estoque WHERE produto_id = $1`,
		produtoID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movimentações por produto: %w", err)
	}
	return count, nil
}
