package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/EniJunioor/teste-oticket/internal/services"
)

const erroCriarPedido = "Erro ao criar pedido"

type CriarPedidoRequest struct {
	ClienteID uint   `json:"clienteId" binding:"required"`
	Produtos  []uint `json:"produtos" binding:"required"`
}

func ListarPedidos(c *gin.Context) {
	pedidos, err := services.ListarPedidos()
	if err != nil {
		logrus.WithError(err).Error("falha ao listar pedidos")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, pedidos)
}

// CriarPedido devolve sempre a mesma mensagem genérica em caso de falha
// (cliente inexistente, produto inexistente, lista vazia ou erro de banco);
// a causa real fica apenas no log do servidor.
func CriarPedido(c *gin.Context) {
	var req CriarPedidoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("requisição inválida ao criar pedido")
		c.JSON(http.StatusBadRequest, gin.H{"error": erroCriarPedido})
		return
	}

	pedido, err := services.CriarPedido(req.ClienteID, req.Produtos)
	if err != nil {
		logrus.WithError(err).WithField("clienteId", req.ClienteID).Error("falha ao criar pedido")
		c.JSON(http.StatusBadRequest, gin.H{"error": erroCriarPedido})
		return
	}

	c.JSON(http.StatusCreated, pedido)
}
