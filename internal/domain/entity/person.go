// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a registration. The catalogue is
// two-valued on purpose: records are either employable (Ativo) or retired
// with a recorded reason (Inativo).
type Status string

const (
	StatusActive   Status = "Ativo"
	StatusInactive Status = "Inativo"
)

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// AccountType is the kind of bank account used for payroll.
type AccountType string

const (
	AccountChecking AccountType = "Conta-Corrente"
	AccountSavings  AccountType = "Poupança"
	AccountPayroll  AccountType = "Conta Salário"
)

// Sex options offered by the registration form.
const (
	SexMale        = "Masculino"
	SexFemale      = "Feminino"
	SexOther       = "Outro"
	SexUndisclosed = "Prefiro não informar"
)

// Race/color categories follow the IBGE classification used by the form.
const (
	RaceWhite      = "Branca"
	RaceBlack      = "Preta"
	RaceMixed      = "Parda"
	RaceAsian      = "Amarela"
	RaceIndigenous = "Indígena"
)

// Child is one dependent listed on a registration.
type Child struct {
	Name      string    `json:"nome"`
	BirthDate time.Time `json:"dataNascimento"`
}

// Person is one personnel registration. The field groups mirror the
// sections of the registration form: personal data, documents, banking,
// address and family. The JSON keys are the camelCase Portuguese names the
// clients and the stored document already use.
type Person struct {
	ID uuid.UUID `json:"id"`

	// Personal data.
	FullName         string    `json:"nomeCompleto"`
	CPF              string    `json:"cpf"`
	RG               string    `json:"rg"`
	IssuingAuthority string    `json:"orgaoEmissor"`
	IssuedAt         time.Time `json:"dataExpedicao"`
	BirthDate        time.Time `json:"dataNascimento"`
	Sex              string    `json:"sexo"`
	RaceColor        string    `json:"racaCor"`
	Birthplace       string    `json:"naturalidade"`
	FatherName       string    `json:"nomePai"`
	MotherName       string    `json:"nomeMae"`
	Email            string    `json:"email"`
	Phone            string    `json:"telefone"`

	// Documents.
	VoterRegistration string    `json:"tituloEleitor"`
	ElectoralZone     string    `json:"zonaEleitoral"`
	ElectoralSection  string    `json:"secaoEleitoral"`
	LaborCard         string    `json:"carteiraTrabalho"`
	LaborCardIssuedAt time.Time `json:"dataEmissaoCarteira"`
	PIS               string    `json:"pis"`
	ReservistCert     string    `json:"certificadoReservista,omitempty"`

	// Banking.
	AccountType   AccountType `json:"tipoConta"`
	Bank          string      `json:"banco"`
	BankBranch    string      `json:"agenciaBancaria"`
	AccountNumber string      `json:"numeroConta"`
	PIXKey        string      `json:"chavePix"`

	// Address.
	Street       string `json:"rua"`
	Neighborhood string `json:"bairro"`
	City         string `json:"cidade"`
	PostalCode   string `json:"cep"`

	// Family.
	HasChildren bool    `json:"temFilhos"`
	ChildCount  int     `json:"quantidadeFilhos"`
	Children    []Child `json:"nomesFilhos,omitempty"`

	// Lifecycle.
	Status             Status `json:"status"`
	InactivationReason string `json:"motivoInativacao,omitempty"`

	CreatedAt time.Time `json:"criadoEm"`
	UpdatedAt time.Time `json:"atualizadoEm"`
}

// NormalizeChildren keeps the redundant counter consistent with the list.
// The counter is kept for compatibility with the stored shape, but the
// ordered list is authoritative.
func (p *Person) NormalizeChildren() {
	if !p.HasChildren {
		p.ChildCount = 0
		p.Children = nil

		return
	}

	p.ChildCount = len(p.Children)
}
