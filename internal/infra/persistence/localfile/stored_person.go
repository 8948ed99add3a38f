package localfile

import (
	"time"

	"rpromo/internal/domain/entity"

	"github.com/google/uuid"
)

// storedPerson is the on-disk shape of one registration. The keys keep
// the camelCase names of the original stored document so an existing
// collection file remains readable. Dates serialize as RFC 3339 and are
// rehydrated to time.Time on every read.
type storedPerson struct {
	ID uuid.UUID `json:"id"`

	NomeCompleto   string    `json:"nomeCompleto"`
	CPF            string    `json:"cpf"`
	RG             string    `json:"rg"`
	OrgaoEmissor   string    `json:"orgaoEmissor"`
	DataExpedicao  time.Time `json:"dataExpedicao"`
	DataNascimento time.Time `json:"dataNascimento"`
	Sexo           string    `json:"sexo"`
	RacaCor        string    `json:"racaCor"`
	Naturalidade   string    `json:"naturalidade"`
	NomePai        string    `json:"nomePai"`
	NomeMae        string    `json:"nomeMae"`
	Email          string    `json:"email"`
	Telefone       string    `json:"telefone"`

	TituloEleitor         string    `json:"tituloEleitor"`
	ZonaEleitoral         string    `json:"zonaEleitoral"`
	SecaoEleitoral        string    `json:"secaoEleitoral"`
	CarteiraTrabalho      string    `json:"carteiraTrabalho"`
	DataEmissaoCarteira   time.Time `json:"dataEmissaoCarteira"`
	PIS                   string    `json:"pis"`
	CertificadoReservista string    `json:"certificadoReservista,omitempty"`

	TipoConta       string `json:"tipoConta"`
	Banco           string `json:"banco"`
	AgenciaBancaria string `json:"agenciaBancaria"`
	NumeroConta     string `json:"numeroConta"`
	ChavePix        string `json:"chavePix"`

	Rua    string `json:"rua"`
	Bairro string `json:"bairro"`
	Cidade string `json:"cidade"`
	CEP    string `json:"cep"`

	TemFilhos        bool           `json:"temFilhos"`
	QuantidadeFilhos int            `json:"quantidadeFilhos"`
	NomesFilhos      []entity.Child `json:"nomesFilhos,omitempty"`

	Status           string `json:"status"`
	MotivoInativacao string `json:"motivoInativacao,omitempty"`

	CriadoEm     time.Time `json:"criadoEm"`
	AtualizadoEm time.Time `json:"atualizadoEm"`
}

func fromDomain(p *entity.Person) storedPerson {
	return storedPerson{
		ID:             p.ID,
		NomeCompleto:   p.FullName,
		CPF:            p.CPF,
		RG:             p.RG,
		OrgaoEmissor:   p.IssuingAuthority,
		DataExpedicao:  p.IssuedAt,
		DataNascimento: p.BirthDate,
		Sexo:           p.Sex,
		RacaCor:        p.RaceColor,
		Naturalidade:   p.Birthplace,
		NomePai:        p.FatherName,
		NomeMae:        p.MotherName,
		Email:          p.Email,
		Telefone:       p.Phone,

		TituloEleitor:         p.VoterRegistration,
		ZonaEleitoral:         p.ElectoralZone,
		SecaoEleitoral:        p.ElectoralSection,
		CarteiraTrabalho:      p.LaborCard,
		DataEmissaoCarteira:   p.LaborCardIssuedAt,
		PIS:                   p.PIS,
		CertificadoReservista: p.ReservistCert,

		TipoConta:       string(p.AccountType),
		Banco:           p.Bank,
		AgenciaBancaria: p.BankBranch,
		NumeroConta:     p.AccountNumber,
		ChavePix:        p.PIXKey,

		Rua:    p.Street,
		Bairro: p.Neighborhood,
		Cidade: p.City,
		CEP:    p.PostalCode,

		TemFilhos:        p.HasChildren,
		QuantidadeFilhos: p.ChildCount,
		NomesFilhos:      p.Children,

		Status:           string(p.Status),
		MotivoInativacao: p.InactivationReason,

		CriadoEm:     p.CreatedAt,
		AtualizadoEm: p.UpdatedAt,
	}
}

func (sp storedPerson) toDomain() *entity.Person {
	return &entity.Person{
		ID:               sp.ID,
		FullName:         sp.NomeCompleto,
		CPF:              sp.CPF,
		RG:               sp.RG,
		IssuingAuthority: sp.OrgaoEmissor,
		IssuedAt:         sp.DataExpedicao,
		BirthDate:        sp.DataNascimento,
		Sex:              sp.Sexo,
		RaceColor:        sp.RacaCor,
		Birthplace:       sp.Naturalidade,
		FatherName:       sp.NomePai,
		MotherName:       sp.NomeMae,
		Email:            sp.Email,
		Phone:            sp.Telefone,

		VoterRegistration: sp.TituloEleitor,
		ElectoralZone:     sp.ZonaEleitoral,
		ElectoralSection:  sp.SecaoEleitoral,
		LaborCard:         sp.CarteiraTrabalho,
		LaborCardIssuedAt: sp.DataEmissaoCarteira,
		PIS:               sp.PIS,
		ReservistCert:     sp.CertificadoReservista,

		AccountType:   entity.AccountType(sp.TipoConta),
		Bank:          sp.Banco,
		BankBranch:    sp.AgenciaBancaria,
		AccountNumber: sp.NumeroConta,
		PIXKey:        sp.ChavePix,

		Street:       sp.Rua,
		Neighborhood: sp.Bairro,
		City:         sp.Cidade,
		PostalCode:   sp.CEP,

		HasChildren: sp.TemFilhos,
		ChildCount:  sp.QuantidadeFilhos,
		Children:    sp.NomesFilhos,

		Status:             entity.Status(sp.Status),
		InactivationReason: sp.MotivoInativacao,

		CreatedAt: sp.CriadoEm,
		UpdatedAt: sp.AtualizadoEm,
	}
}
