package models

type Cliente struct {

	ID    uint   `gorm:"primaryKey" json:"id"`
	Nome  string `gorm:"not null" json:"nome"`
	Email string `gorm:"index;not null" json:"email"` // unicidade pretendida, não imposta nesta camada
}
