package models

import "time"

const (
	StatusPendente = "PENDENTE"
	StatusPago     = "PAGO" // definido no domínio; nenhuma transição implementada
)

type Pedido struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ClienteID uint            `gorm:"index;not null" json:"clienteId"`
	Status    string          `gorm:"not null" json:"status"`
	Data      time.Time       `gorm:"autoCreateTime" json:"data"`
	Cliente   Cliente         `json:"cliente"`
	Produtos  []PedidoProduto `gorm:"foreignKey:PedidoID" json:"produtos"`
}

type PedidoProduto struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	PedidoID  uint    `gorm:"index;not null" json:"pedidoId"`
	ProdutoID uint    `gorm:"index;not null" json:"produtoId"`
	Produto   Produto `json:"produto"`
}
