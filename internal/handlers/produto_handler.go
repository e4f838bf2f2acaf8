package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/EniJunioor/teste-oticket/internal/services"
)

const erroCriarProduto = "Erro ao criar produto"

var ErrPrecoInvalido = errors.New("preço inválido")

type CriarProdutoRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Preco any    `json:"preco" binding:"required"`
}

// ParsePreco converte o preço recebido no corpo da requisição, que pode vir
// como número JSON ou como string numérica ("19.90"). Valores não numéricos
// ou não finitos retornam ErrPrecoInvalido; NaN nunca chega ao banco.
func ParsePreco(raw any) (float64, error) {
	var preco float64

	switch v := raw.(type) {
	case float64:
		preco = v
	case string:
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, ErrPrecoInvalido
		}
		preco = p
	case json.Number:
		p, err := v.Float64()
		if err != nil {
			return 0, ErrPrecoInvalido
		}
		preco = p
	default:
		return 0, ErrPrecoInvalido
	}

	if math.IsNaN(preco) || math.IsInf(preco, 0) {
		return 0, ErrPrecoInvalido
	}

	return preco, nil
}

func ListarProdutos(c *gin.Context) {
	produtos, err := services.ListarProdutos()
	if err != nil {
		logrus.WithError(err).Error("falha ao listar produtos")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, produtos)
}

func CriarProduto(c *gin.Context) {
	var req CriarProdutoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("requisição inválida ao criar produto")
		c.JSON(http.StatusBadRequest, gin.H{"error": erroCriarProduto})
		return
	}

	preco, err := ParsePreco(req.Preco)
	if err != nil {
		logrus.WithError(err).WithField("preco", req.Preco).Warn("preço rejeitado ao criar produto")
		c.JSON(http.StatusBadRequest, gin.H{"error": erroCriarProduto})
		return
	}

	produto, err := services.CriarProduto(req.Nome, preco)
	if err != nil {
		logrus.WithError(err).Error("falha ao criar produto")
		c.JSON(http.StatusBadRequest, gin.H{"error": erroCriarProduto})
		return
	}

	c.JSON(http.StatusCreated, produto)
}
