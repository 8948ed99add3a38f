package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The wire shape is the camelCase Portuguese document the clients already
// speak; Go field names must never leak into it.
func TestPerson_SerializesWithPortugueseKeys(t *testing.T) {
	person := &Person{
		ID:           uuid.New(),
		FullName:     "Maria da Silva",
		CPF:          "12345678901",
		Neighborhood: "Centro",
		City:         "Fortaleza",
		Status:       StatusActive,
		HasChildren:  true,
		ChildCount:   1,
		Children: []Child{
			{Name: "Ana", BirthDate: time.Date(2015, 3, 10, 0, 0, 0, 0, time.UTC)},
		},
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(person)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "Maria da Silva", doc["nomeCompleto"])
	assert.Equal(t, "12345678901", doc["cpf"])
	assert.Equal(t, "Centro", doc["bairro"])
	assert.Equal(t, "Fortaleza", doc["cidade"])
	assert.Equal(t, "Ativo", doc["status"])
	assert.Equal(t, true, doc["temFilhos"])
	assert.Contains(t, doc, "criadoEm")
	assert.Contains(t, doc, "nomesFilhos")

	for _, goName := range []string{"FullName", "CPF", "Neighborhood", "Status", "CreatedAt"} {
		assert.NotContains(t, doc, goName)
	}
}

func TestPerson_RoundTripsThroughJSON(t *testing.T) {
	person := &Person{
		ID:                 uuid.New(),
		FullName:           "João Pereira",
		CPF:                "98765432100",
		Email:              "joao@example.com",
		Phone:              "(85) 99999-0000",
		AccountType:        AccountChecking,
		Street:             "Rua das Flores",
		Neighborhood:       "Aldeota",
		City:               "Fortaleza",
		PostalCode:         "60000-000",
		Status:             StatusInactive,
		InactivationReason: "Desligamento voluntário",
		CreatedAt:          time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC),
		UpdatedAt:          time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC),
	}

	data, err := json.Marshal(person)
	require.NoError(t, err)

	var decoded Person
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *person, decoded)
}
