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

var _ repository.VendaRepository = (*VendaRepo)(nil)

// VendaRepo implementação sobre PostgreSQL (usável com pool ou tx).
type VendaRepo struct {
	q Querier
}

func NewVendaRepository(q Querier) *VendaRepo {
	return &VendaRepo{q: q}
}

// Create persiste o cabeçalho da venda. Os itens vão por CreateItem na mesma tx.
func (r *VendaRepo) Create(venda *entity.Venda) error {
	if venda.ID == "" {
		venda.ID = uuid.New().String()
	}
	query := `
		INSERT INTO vendas (id, data_venda, valor_total, forma_pagamento, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		venda.ID, venda.DataVenda, venda.ValorTotal, venda.FormaPagamento, venda.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create venda: %w", err)
	}
	return nil
}

// CreateItem persiste um item da venda.
func (r *VendaRepo) CreateItem(item *entity.ItemVenda) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO itens_venda (id, venda_id, produto_id, quantidade, preco_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.VendaID, item.ProdutoID, item.Quantidade, item.PrecoUnitario, item.Subtotal,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("create item de venda: %w", err)
	}
	return nil
}

// GetByID devolve a venda com todos os itens (nome do produto via join).
func (r *VendaRepo) GetByID(id string) (*entity.Venda, error) {
	query := `
		SELECT id, data_venda, valor_total, forma_pagamento, created_at
		FROM vendas WHERE id = $1`
	var v entity.Venda
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.DataVenda, &v.ValorTotal, &v.FormaPagamento, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}

	itensQuery := `
		SELECT i.id, i.venda_id, i.produto_id, p.nome, i.quantidade, i.preco_unitario, i.subtotal
		FROM itens_venda i
		JOIN produtos p ON p.id = i.produto_id
		WHERE i.venda_id = $1
		ORDER BY p.nome`
	rows, err := r.q.Query(context.Background(), itensQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list itens da venda: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.ItemVenda
		if err := rows.Scan(&item.ID, &item.VendaID, &item.ProdutoID, &item.ProdutoNome,
			&item.Quantidade, &item.PrecoUnitario, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("scan item de venda: %w", err)
		}
		v.Itens = append(v.Itens, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &v, nil
}

// List devolve vendas sem itens, mais recentes primeiro.
func (r *VendaRepo) List(limit, offset int) ([]*entity.Venda, error) {
	query := `
		SELECT id, data_venda, valor_total, forma_pagamento, created_at
		FROM vendas
		ORDER BY data_venda DESC, created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()
	var vendas []*entity.Venda
	for rows.Next() {
		var v entity.Venda
		if err := rows.Scan(&v.ID, &v.DataVenda, &v.ValorTotal, &v.FormaPagamento, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		vendas = append(vendas, &v)
	}
	return vendas, rows.Err()
}

// Delete exclui a venda; itens_venda caem por ON DELETE CASCADE.
func (r *VendaRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM vendas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venda: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountItensByProduto número de itens de venda que referenciam o produto.
func (r *VendaRepo) CountItensByProduto(produtoID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM itens_venda WHERE produto_id = $1`,
		produtoID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count itens por produto: %w", err)
	}
	return count, nil
}
