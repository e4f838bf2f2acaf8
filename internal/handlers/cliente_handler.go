package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/EniJunioor/teste-oticket/internal/services"
)

const erroCriarCliente = "Erro ao criar cliente"

type CriarClienteRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required"`
}

func ListarClientes(c *gin.Context) {
	clientes, err := services.ListarClientes()
	if err != nil {
		logrus.WithError(err).Error("falha ao listar clientes")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, clientes)
}

func CriarCliente(c *gin.Context) {
	var req CriarClienteRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("requisição inválida ao criar cliente")
		c.JSON(http.StatusBadRequest, gin.H{"error": erroCriarCliente})
		return
	}

	cliente, err := services.CriarCliente(req.Nome, req.Email)
	if err != nil {
		logrus.WithError(err).Error("falha ao criar cliente")
		c.JSON(http.StatusBadRequest, gin.H{"error": erroCriarCliente})
		return
	}

	c.JSON(http.StatusCreated, cliente)
}
