package repository

import (
	"testing"
	"time"

	"rpromo/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePerson() *entity.Person {
	return &entity.Person{
		FullName:     "Maria da Silva",
		CPF:          "123.456.789-09",
		Email:        "maria.silva@example.com",
		Phone:        "(11) 98765-4321",
		Neighborhood: "Centro",
		City:         "São Paulo",
		Status:       entity.StatusActive,
		CreatedAt:    time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestSearchFilters_Match_Term(t *testing.T) {
	tests := []struct {
		name string
		term string
		want bool
	}{
		{name: "name substring case-insensitive", term: "maria", want: true},
		{name: "name fragment", term: "SILVA", want: true},
		{name: "cpf digits ignore formatting", term: "45678", want: true},
		{name: "formatted cpf term does not match", term: "123.456", want: false},
		{name: "email substring", term: "example.com", want: true},
		{name: "phone digits", term: "987654321", want: true},
		{name: "neighborhood", term: "centro", want: true},
		{name: "city", term: "são paulo", want: true},
		{name: "no axis matches", term: "inexistente", want: false},
		{name: "blank term matches everything", term: "   ", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := SearchFilters{Term: tt.term}
			assert.Equal(t, tt.want, f.Match(samplePerson()))
		})
	}
}

func TestSearchFilters_Match_StatusExact(t *testing.T) {
	p := samplePerson()

	assert.True(t, SearchFilters{Status: entity.StatusActive}.Match(p))
	assert.False(t, SearchFilters{Status: entity.StatusInactive}.Match(p))

	p.Status = entity.StatusInactive
	assert.True(t, SearchFilters{Status: entity.StatusInactive}.Match(p))
}

func TestSearchFilters_Match_NeighborhoodAndCity(t *testing.T) {
	p := samplePerson()

	assert.True(t, SearchFilters{Neighborhood: "cen"}.Match(p))
	assert.False(t, SearchFilters{Neighborhood: "Jardins"}.Match(p))
	assert.True(t, SearchFilters{City: "paulo"}.Match(p))
	assert.False(t, SearchFilters{City: "Campinas"}.Match(p))
}

func TestSearchFilters_Match_DateRangeInclusive(t *testing.T) {
	p := samplePerson()
	created := p.CreatedAt

	from := created
	to := created
	assert.True(t, SearchFilters{DateFrom: &from, DateTo: &to}.Match(p),
		"bounds equal to CreatedAt are inclusive")

	after := created.Add(time.Second)
	assert.False(t, SearchFilters{DateFrom: &after}.Match(p))

	before := created.Add(-time.Second)
	assert.False(t, SearchFilters{DateTo: &before}.Match(p))
}

func TestSearchFilters_Match_AndCombined(t *testing.T) {
	p := samplePerson()

	f := SearchFilters{Term: "maria", Status: entity.StatusActive, City: "paulo"}
	assert.True(t, f.Match(p))

	f.Status = entity.StatusInactive
	assert.False(t, f.Match(p), "one failing filter rejects the record")
}

func TestSearchFilters_Filter_PreservesOrder(t *testing.T) {
	first := samplePerson()
	first.FullName = "Ana Souza"
	second := samplePerson()
	third := samplePerson()
	third.FullName = "Mariana Costa"

	people := []*entity.Person{first, second, third}

	matched := SearchFilters{Term: "maria"}.Filter(people)
	require.Len(t, matched, 2)
	assert.Same(t, second, matched[0])
	assert.Same(t, third, matched[1])
}

func TestSearchFilters_Empty(t *testing.T) {
	assert.True(t, SearchFilters{}.Empty())
	assert.True(t, SearchFilters{Term: "  "}.Empty())
	assert.False(t, SearchFilters{City: "Campinas"}.Empty())
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "12345678909", DigitsOnly("123.456.789-09"))
	assert.Equal(t, "11987654321", DigitsOnly("(11) 98765-4321"))
	assert.Equal(t, "", DigitsOnly("abc"))
}
