package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'usuarios' table holding operator logins.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `gorm:"column:username;type:varchar(50);unique;not null"`
	SenhaHash    string    `gorm:"column:senha_hash;type:varchar(100);not null"`
	NomeCompleto string    `gorm:"column:nome_completo;type:varchar(255)"`
	Email        string    `gorm:"column:email;type:varchar(255)"`
	Ativo        bool      `gorm:"column:ativo;not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "usuarios"
}
