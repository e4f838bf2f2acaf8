package services

import (
	"github.com/EniJunioor/teste-oticket/internal/db"
	"github.com/EniJunioor/teste-oticket/internal/models"
)

func ListarClientes() ([]models.Cliente, error) {
	var clientes []models.Cliente
	err := db.DB.Find(&clientes).Error
	return clientes, err
}

func CriarCliente(nome, email string) (models.Cliente, error) {
	cliente := models.Cliente{
		Nome:  nome,
		Email: email,
	}

	if err := db.DB.Create(&cliente).Error; err != nil {
		return models.Cliente{}, err
	}

	return cliente, nil
}
