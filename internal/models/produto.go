package models

type Produto struct {

	ID    uint    `gorm:"primaryKey" json:"id"`
	Nome  string  `gorm:"not null" json:"nome"`
	Preco float64 `gorm:"not null" json:"preco"`
}
