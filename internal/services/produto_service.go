package services

import (
	"github.com/EniJunioor/teste-oticket/internal/db"
	"github.com/EniJunioor/teste-oticket/internal/models"
)

func ListarProdutos() ([]models.Produto, error) {
	var produtos []models.Produto
	err := db.DB.Find(&produtos).Error
	return produtos, err
}

// CriarProduto espera um preço já convertido e validado na borda da API
// (ver handlers.ParsePreco).
func CriarProduto(nome string, preco float64) (models.Produto, error) {
	produto := models.Produto{
		Nome:  nome,
		Preco: preco,
	}

	if err := db.DB.Create(&produto).Error; err != nil {
		return models.Produto{}, err
	}

	return produto, nil
}
