package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/EniJunioor/teste-oticket/internal/db"
	"github.com/EniJunioor/teste-oticket/internal/models"
)

var (
	ErrPedidoSemProdutos = errors.New("pedido sem produtos")
	ErrClienteInvalido   = errors.New("clienteId obrigatório")
)

// porOrdemDeInsercao garante que as linhas do pedido saiam na ordem em que
// foram enviadas na criação (ids crescentes).
func porOrdemDeInsercao(tx *gorm.DB) *gorm.DB {
	return tx.Order("pedido_produtos.id")
}

func ListarPedidos() ([]models.Pedido, error) {
	var pedidos []models.Pedido
	err := db.DB.
		Preload("Cliente").
		Preload("Produtos", porOrdemDeInsercao).
		Preload("Produtos.Produto").
		Find(&pedidos).Error
	return pedidos, err
}

// CriarPedido cria o pedido e todas as suas linhas em uma única transação:
// ou o pedido aparece completo, ou nada é gravado. Ids de produto duplicados
// geram linhas separadas, na ordem recebida.
func CriarPedido(clienteID uint, produtoIDs []uint) (models.Pedido, error) {
	if clienteID == 0 {
		return models.Pedido{}, ErrClienteInvalido
	}
	if len(produtoIDs) == 0 {
		return models.Pedido{}, ErrPedidoSemProdutos
	}

	var pedido models.Pedido

	err := db.DB.Transaction(func(tx *gorm.DB) error {

		var cliente models.Cliente
		if err := tx.First(&cliente, clienteID).Error; err != nil {
			return fmt.Errorf("cliente %d: %w", clienteID, err)
		}

		pedido = models.Pedido{
			ClienteID: cliente.ID,
			Status:    models.StatusPendente,
		}

		if err := tx.Create(&pedido).Error; err != nil {
			return err
		}

		linhas := make([]models.PedidoProduto, 0, len(produtoIDs))

		for _, produtoID := range produtoIDs {

			var produto models.Produto
			if err := tx.First(&produto, produtoID).Error; err != nil {
				return fmt.Errorf("produto %d: %w", produtoID, err)
			}

			linhas = append(linhas, models.PedidoProduto{
				PedidoID:  pedido.ID,
				ProdutoID: produto.ID,
			})
		}

		if err := tx.CreateInBatches(&linhas, len(linhas)).Error; err != nil {
			return err
		}

		return tx.
			Preload("Cliente").
			Preload("Produtos", porOrdemDeInsercao).
			Preload("Produtos.Produto").
			First(&pedido, pedido.ID).Error
	})

	if err != nil {
		return models.Pedido{}, err
	}

	return pedido, nil
}
