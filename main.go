package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	config "github.com/EniJunioor/teste-oticket/configs"
	"github.com/EniJunioor/teste-oticket/internal/db"
	"github.com/EniJunioor/teste-oticket/internal/handlers"
)

func main() {

	if err := godotenv.Load(); err != nil {
		logrus.Debug(".env não encontrado, usando variáveis do ambiente")
	}

	cfg := config.LoadServerConfig()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	db.Init()

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend API Mini Sistema de Pedidos está no ar!")
	})

	r.GET("/clientes", handlers.ListarClientes)
	r.POST("/clientes", handlers.CriarCliente)
	r.GET("/produtos", handlers.ListarProdutos)
	r.POST("/produtos", handlers.CriarProduto)
	r.GET("/pedidos", handlers.ListarPedidos)
	r.POST("/pedidos", handlers.CriarPedido)

	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("servidor encerrado")
	}
}
