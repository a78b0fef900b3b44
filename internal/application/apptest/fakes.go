// Package apptest fornece repositórios em memória e um TxRunner direto para
// testes de casos de uso, sem banco de dados.
package apptest

import (
	"context"
	"sort"

	"github.com/rafaelmp/gestao-loja-api/internal/domain/entity"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/repository"
)

var (
	_ repository.ProdutoRepository            = (*ProdutoRepo)(nil)
	_ repository.MovimentacaoEstoqueRepository = (*MovRepo)(nil)
	_ repository.VendaRepository              = (*VendaRepo)(nil)
	_ repository.DespesaRepository            = (*DespesaRepo)(nil)
	_ repository.UsuarioRepository            = (*UsuarioRepo)(nil)
)

// ProdutoRepo implementação em memória de repository.ProdutoRepository.
// GetByID e GetForUpdate devolvem cópias: o estoque só muda via UpdateEstoque.
type ProdutoRepo struct {
	Produtos map[string]*entity.Produto
}

func NewProdutoRepo() *ProdutoRepo {
	return &ProdutoRepo{Produtos: make(map[string]*entity.Produto)}
}

func (r *ProdutoRepo) Create(produto *entity.Produto) error {
	cp := *produto
	r.Produtos[produto.ID] = &cp
	return nil
}

func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	p, ok := r.Produtos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *ProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	return r.GetByID(id)
}

func (r *ProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) {
	var list []*entity.Produto
	for _, p := range r.Produtos {
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nome < list[j].Nome })
	return page(list, limit, offset), nil
}

func (r *ProdutoRepo) Update(produto *entity.Produto) error {
	atual, ok := r.Produtos[produto.ID]
	if !ok {
		return nil
	}
	cp := *produto
	cp.QuantidadeEstoque = atual.QuantidadeEstoque
	r.Produtos[produto.ID] = &cp
	return nil
}

func (r *ProdutoRepo) UpdateEstoque(id string, quantidade int) error {
	if p, ok := r.Produtos[id]; ok {
		p.QuantidadeEstoque = quantidade
	}
	return nil
}

func (r *ProdutoRepo) Delete(id string) error {
	delete(r.Produtos, id)
	return nil
}

func (r *ProdutoRepo) SumEstoque() (int, error) {
	total := 0
	for _, p := range r.Produtos {
		total += p.QuantidadeEstoque
	}
	return total, nil
}

// MovRepo implementação em memória do ledger de movimentações.
type MovRepo struct {
	Movs  map[string]*entity.MovimentacaoEstoque
	ordem []string
	// Produtos opcional: usado para preencher nome/categoria na listagem.
	Produtos *ProdutoRepo
}

func NewMovRepo(produtos *ProdutoRepo) *MovRepo {
	return &MovRepo{Movs: make(map[string]*entity.MovimentacaoEstoque), Produtos: produtos}
}

func (r *MovRepo) Create(mov *entity.MovimentacaoEstoque) error {
	cp := *mov
	r.Movs[mov.ID] = &cp
	r.ordem = append(r.ordem, mov.ID)
	return nil
}

func (r *MovRepo) GetByID(id string) (*entity.MovimentacaoEstoque, error) {
	m, ok := r.Movs[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *MovRepo) Update(mov *entity.MovimentacaoEstoque) error {
	if _, ok := r.Movs[mov.ID]; ok {
		cp := *mov
		r.Movs[mov.ID] = &cp
	}
	return nil
}

func (r *MovRepo) Delete(id string) error {
	delete(r.Movs, id)
	return nil
}

func (r *MovRepo) List(filtro repository.MovimentacaoFiltro, limit, offset int) ([]*repository.MovimentacaoComProduto, error) {
	var list []*repository.MovimentacaoComProduto
	// mais recentes primeiro: ordem de inserção invertida
	for i := len(r.ordem) - 1; i >= 0; i-- {
		m, ok := r.Movs[r.ordem[i]]
		if !ok {
			continue
		}
		if filtro.ProdutoID != "" && m.ProdutoID != filtro.ProdutoID {
			continue
		}
		if filtro.Tipo != "" && m.Tipo != filtro.Tipo {
			continue
		}
		item := &repository.MovimentacaoComProduto{MovimentacaoEstoque: *m}
		if r.Produtos != nil {
			if p, ok := r.Produtos.Produtos[m.ProdutoID]; ok {
				item.ProdutoNome = p.Nome
				item.ProdutoCategoria = p.Categoria
			}
		}
		list = append(list, item)
	}
	return page(list, limit, offset), nil
}

func (r *MovRepo) CountByProduto(produtoID string) (int, error) {
	count := 0
	for _, m := range r.Movs {
		if m.ProdutoID == produtoID {
			count++
		}
	}
	return count, nil
}

// VendaRepo implementação em memória de repository.VendaRepository.
type VendaRepo struct {
	Vendas map[string]*entity.Venda
	Itens  map[string][]*entity.ItemVenda // por venda_id
}

func NewVendaRepo() *VendaRepo {
	return &VendaRepo{
		Vendas: make(map[string]*entity.Venda),
		Itens:  make(map[string][]*entity.ItemVenda),
	}
}

func (r *VendaRepo) Create(venda *entity.Venda) error {
	cp := *venda
	cp.Itens = nil
	r.Vendas[venda.ID] = &cp
	return nil
}

func (r *VendaRepo) CreateItem(item *entity.ItemVenda) error {
	cp := *item
	r.Itens[item.VendaID] = append(r.Itens[item.VendaID], &cp)
	return nil
}

func (r *VendaRepo) GetByID(id string) (*entity.Venda, error) {
	v, ok := r.Vendas[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	for _, item := range r.Itens[id] {
		cp.Itens = append(cp.Itens, *item)
	}
	return &cp, nil
}

func (r *VendaRepo) List(limit, offset int) ([]*entity.Venda, error) {
	var list []*entity.Venda
	for _, v := range r.Vendas {
		cp := *v
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].DataVenda.After(list[j].DataVenda) })
	return page(list, limit, offset), nil
}

func (r *VendaRepo) Delete(id string) error {
	delete(r.Vendas, id)
	delete(r.Itens, id)
	return nil
}

func (r *VendaRepo) CountItensByProduto(produtoID string) (int, error) {
	count := 0
	for _, itens := range r.Itens {
		for _, item := range itens {
			if item.ProdutoID == produtoID {
				count++
			}
		}
	}
	return count, nil
}

// DespesaRepo implementação em memória de repository.DespesaRepository.
type DespesaRepo struct {
	Despesas map[string]*entity.Despesa
}

func NewDespesaRepo() *DespesaRepo {
	return &DespesaRepo{Despesas: make(map[string]*entity.Despesa)}
}

func (r *DespesaRepo) Create(despesa *entity.Despesa) error {
	cp := *despesa
	r.Despesas[despesa.ID] = &cp
	return nil
}

func (r *DespesaRepo) GetByID(id string) (*entity.Despesa, error) {
	d, ok := r.Despesas[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *DespesaRepo) List(limit, offset int) ([]*entity.Despesa, error) {
	var list []*entity.Despesa
	for _, d := range r.Despesas {
		cp := *d
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].DataDespesa.After(list[j].DataDespesa) })
	return page(list, limit, offset), nil
}

func (r *DespesaRepo) Update(despesa *entity.Despesa) error {
	if _, ok := r.Despesas[despesa.ID]; ok {
		cp := *despesa
		r.Despesas[despesa.ID] = &cp
	}
	return nil
}

func (r *DespesaRepo) Delete(id string) error {
	delete(r.Despesas, id)
	return nil
}

// UsuarioRepo implementação em memória de repository.UsuarioRepository.
type UsuarioRepo struct {
	Usuarios map[string]*entity.Usuario // por ID
}

func NewUsuarioRepo() *UsuarioRepo {
	return &UsuarioRepo{Usuarios: make(map[string]*entity.Usuario)}
}

func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	cp := *usuario
	r.Usuarios[usuario.ID] = &cp
	return nil
}

func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	u, ok := r.Usuarios[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *UsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	for _, u := range r.Usuarios {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// TxRunner executa a função diretamente sobre os repositórios em memória.
// Não simula rollback: testes de falha devem verificar apenas o erro e o
// estado que o caso de uso checa antes de escrever.
type TxRunner struct {
	Mov     *MovRepo
	Produto *ProdutoRepo
	Venda   *VendaRepo
}

func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimentacaoEstoqueRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	return fn(r.Mov, r.Produto)
}

func (r *TxRunner) RunVenda(ctx context.Context, fn func(
	movRepo repository.MovimentacaoEstoqueRepository,
	produtoRepo repository.ProdutoRepository,
	vendaRepo repository.VendaRepository,
) error) error {
	return fn(r.Mov, r.Produto, r.Venda)
}

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
