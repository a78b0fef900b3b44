package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rafaelmp/gestao-loja-api/internal/domain"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/entity"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação da porta ProdutoRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência para produtos.
// Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoColumns = `id, nome, preco_custo, preco_venda, categoria, quantidade_estoque, created_at, updated_at`

// Create persiste um novo produto. Estoque inicia em 0.
func (r *ProdutoRepo) Create(produto *entity.Produto) error {
	query := `
		INSERT INTO produtos (id, nome, preco_custo, preco_venda, categoria, quantidade_estoque, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.PrecoCusto, produto.PrecoVenda,
		produto.Categoria, produto.QuantidadeEstoque, produto.CreatedAt, produto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID.
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produtos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtém o produto e bloqueia a linha (SELECT FOR UPDATE).
func (r *ProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produtos WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

func (r *ProdutoRepo) scanOne(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	err := row.Scan(
		&p.ID, &p.Nome, &p.PrecoCusto, &p.PrecoVenda, &p.Categoria,
		&p.QuantidadeEstoque, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// List lista produtos ordenados por nome, com paginação.
func (r *ProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produtos ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(&p.ID, &p.Nome, &p.PrecoCusto, &p.PrecoVenda, &p.Categoria,
			&p.QuantidadeEstoque, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update atualiza um produto existente. Não altera QuantidadeEstoque
// (só via movimentações).
func (r *ProdutoRepo) Update(produto *entity.Produto) error {
	query := `
		UPDATE produtos SET nome = $2, preco_custo = $3, preco_venda = $4, categoria = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.PrecoCusto, produto.PrecoVenda,
		produto.Categoria, produto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// UpdateEstoque grava a nova quantidade em estoque (apenas dentro do motor
// de movimentações, com a linha já bloqueada).
func (r *ProdutoRepo) UpdateEstoque(id string, quantidade int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET quantidade_estoque = $2, updated_at = now() WHERE id = $1`,
		id, quantidade,
	)
	if err != nil {
		return fmt.Errorf("update estoque: %w", err)
	}
	return nil
}

// Delete exclui um produto por ID. Violação de FK vira ErrProductReferenced:
// a constraint do banco é a verificação autoritativa da guarda de exclusão.
func (r *ProdutoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductReferenced
		}
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}

// SumEstoque devolve o total de unidades em estoque de todos os produtos.
func (r *ProdutoRepo) SumEstoque() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantidade_estoque), 0) FROM produtos`,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum estoque: %w", err)
	}
	return total, nil
}
