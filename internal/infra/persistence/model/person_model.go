// Package model holds the GORM persistence models. They mirror the remote
// tables column for column and are mapped to pure domain entities at the
// repository boundary.
package model

import (
	"time"

	"rpromo/internal/domain/entity"

	"github.com/google/uuid"
)

// PersonModel mirrors the 'pessoas' table. Column names are the
// lower_snake_case duals of the camelCase entity fields.
type PersonModel struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`

	NomeCompleto   string    `gorm:"column:nome_completo;type:varchar(255);not null"`
	CPF            string    `gorm:"column:cpf;type:varchar(14);not null"`
	RG             string    `gorm:"column:rg;type:varchar(20)"`
	OrgaoEmissor   string    `gorm:"column:orgao_emissor;type:varchar(40)"`
	DataExpedicao  time.Time `gorm:"column:data_expedicao"`
	DataNascimento time.Time `gorm:"column:data_nascimento"`
	Sexo           string    `gorm:"column:sexo;type:varchar(25)"`
	RacaCor        string    `gorm:"column:raca_cor;type:varchar(15)"`
	Naturalidade   string    `gorm:"column:naturalidade;type:varchar(100)"`
	NomePai        string    `gorm:"column:nome_pai;type:varchar(255)"`
	NomeMae        string    `gorm:"column:nome_mae;type:varchar(255)"`
	Email          string    `gorm:"column:email;type:varchar(255)"`
	Telefone       string    `gorm:"column:telefone;type:varchar(20)"`

	TituloEleitor         string    `gorm:"column:titulo_eleitor;type:varchar(20)"`
	ZonaEleitoral         string    `gorm:"column:zona_eleitoral;type:varchar(10)"`
	SecaoEleitoral        string    `gorm:"column:secao_eleitoral;type:varchar(10)"`
	CarteiraTrabalho      string    `gorm:"column:carteira_trabalho;type:varchar(20)"`
	DataEmissaoCarteira   time.Time `gorm:"column:data_emissao_carteira"`
	PIS                   string    `gorm:"column:pis;type:varchar(20)"`
	CertificadoReservista string    `gorm:"column:certificado_reservista;type:varchar(20)"`

	TipoConta       string `gorm:"column:tipo_conta;type:varchar(20)"`
	Banco           string `gorm:"column:banco;type:varchar(100)"`
	AgenciaBancaria string `gorm:"column:agencia_bancaria;type:varchar(10)"`
	NumeroConta     string `gorm:"column:numero_conta;type:varchar(20)"`
	ChavePix        string `gorm:"column:chave_pix;type:varchar(100)"`

	Rua    string `gorm:"column:rua;type:varchar(255)"`
	Bairro string `gorm:"column:bairro;type:varchar(100)"`
	Cidade string `gorm:"column:cidade;type:varchar(100)"`
	CEP    string `gorm:"column:cep;type:varchar(10)"`

	TemFilhos        bool           `gorm:"column:tem_filhos"`
	QuantidadeFilhos int            `gorm:"column:quantidade_filhos"`
	NomesFilhos      []entity.Child `gorm:"column:nomes_filhos;type:jsonb;serializer:json"`

	Status           string `gorm:"column:status;type:varchar(10);not null;default:Ativo"`
	MotivoInativacao string `gorm:"column:motivo_inativacao;type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "pessoas"
}
