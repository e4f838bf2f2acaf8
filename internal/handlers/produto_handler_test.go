package handlers_test

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/EniJunioor/teste-oticket/internal/db"
	"github.com/EniJunioor/teste-oticket/internal/handlers"
	"github.com/EniJunioor/teste-oticket/internal/models"
)

func setupProdutoTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect test database: " + err.Error())
	}

	err = testDB.AutoMigrate(&models.Produto{})
	if err != nil {
		panic("failed to auto-migrate models: " + err.Error())
	}

	originalDB := db.DB
	db.SetTestDB(testDB)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/produtos", handlers.ListarProdutos)
	r.POST("/produtos", handlers.CriarProduto)

	t.Cleanup(func() {
		db.SetTestDB(originalDB)
	})

	return r, testDB
}

func TestParsePreco(t *testing.T) {
	tests := []struct {
		name    string
		raw     interface{}
		want    float64
		wantErr bool
	}{
		{name: "número JSON", raw: float64(15.99), want: 15.99},
		{name: "string numérica", raw: "19.90", want: 19.9},
		{name: "string inteira", raw: "42", want: 42},
		{name: "json.Number", raw: json.Number("2.5"), want: 2.5},
		{name: "string não numérica", raw: "abc", wantErr: true},
		{name: "nil", raw: nil, wantErr: true},
		{name: "booleano", raw: true, wantErr: true},
		{name: "NaN", raw: math.NaN(), wantErr: true},
		{name: "infinito por string", raw: "Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := handlers.ParsePreco(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, handlers.ErrPrecoInvalido)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCriarProdutoHandler(t *testing.T) {
	router, testDB := setupProdutoTestRouter(t)

	t.Run("cria produto com preço numérico", func(t *testing.T) {
		reqBody := map[string]interface{}{
			"nome":  "Laptop",
			"preco": 1200.00,
		}
		recorder := httptest.NewRecorder()
		req := jsonRequest(http.MethodPost, "/produtos", reqBody)
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var produto models.Produto
		err := json.Unmarshal(recorder.Body.Bytes(), &produto)
		assert.NoError(t, err)
		assert.Greater(t, produto.ID, uint(0))
		assert.Equal(t, "Laptop", produto.Nome)
		assert.Equal(t, 1200.00, produto.Preco)
	})

	t.Run("converte preço enviado como string", func(t *testing.T) {
		reqBody := map[string]interface{}{
			"nome":  "Caneca",
			"preco": "19.90",
		}
		recorder := httptest.NewRecorder()
		req := jsonRequest(http.MethodPost, "/produtos", reqBody)
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var produto models.Produto
		json.Unmarshal(recorder.Body.Bytes(), &produto)
		assert.Equal(t, 19.9, produto.Preco)

		// O valor armazenado é o numérico convertido, não a string
		var armazenado models.Produto
		testDB.First(&armazenado, produto.ID)
		assert.Equal(t, 19.9, armazenado.Preco)
	})

	t.Run("retorna 400 com mensagem fixa para preço não numérico", func(t *testing.T) {
		reqBody := map[string]interface{}{
			"nome":  "Produto Inválido",
			"preco": "abc",
		}
		recorder := httptest.NewRecorder()
		req := jsonRequest(http.MethodPost, "/produtos", reqBody)
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		var response map[string]string
		json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.Equal(t, "Erro ao criar produto", response["error"])

		// Nada foi gravado
		var count int64
		testDB.Model(&models.Produto{}).Where("nome = ?", "Produto Inválido").Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("retorna 400 com mensagem fixa quando falta nome", func(t *testing.T) {
		reqBody := map[string]interface{}{
			"preco": 10.0,
		}
		recorder := httptest.NewRecorder()
		req := jsonRequest(http.MethodPost, "/produtos", reqBody)
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		var response map[string]string
		json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.Equal(t, "Erro ao criar produto", response["error"])
	})
}

func TestListarProdutosHandler(t *testing.T) {
	router, testDB := setupProdutoTestRouter(t)

	t.Run("retorna todos os produtos", func(t *testing.T) {
		testDB.Create(&models.Produto{Nome: "Caneca", Preco: 19.9})
		testDB.Create(&models.Produto{Nome: "Camiseta", Preco: 49.9})

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/produtos", nil)
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var produtos []models.Produto
		err := json.Unmarshal(recorder.Body.Bytes(), &produtos)
		assert.NoError(t, err)
		assert.Len(t, produtos, 2)
		assert.Equal(t, "Caneca", produtos[0].Nome)
		assert.Equal(t, 19.9, produtos[0].Preco)
	})
}
