package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryContext(t *testing.T, params url.Values) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/pessoas?"+params.Encode(), nil)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec)
}

func TestSearchInputFromQuery_BareRequestHasNoFilters(t *testing.T) {
	input, err := searchInputFromQuery(queryContext(t, url.Values{}))
	require.NoError(t, err)
	assert.True(t, input.Filters().Empty())
}

func TestSearchInputFromQuery_EachParamActivatesSearch(t *testing.T) {
	tests := []struct {
		name   string
		params url.Values
	}{
		{"termo", url.Values{"termo": {"maria"}}},
		{"status", url.Values{"status": {"Ativo"}}},
		{"bairro", url.Values{"bairro": {"Centro"}}},
		{"cidade", url.Values{"cidade": {"Fortaleza"}}},
		{"dataInicio", url.Values{"dataInicio": {"2026-01-01"}}},
		{"dataFim", url.Values{"dataFim": {"2026-01-31"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := searchInputFromQuery(queryContext(t, tt.params))
			require.NoError(t, err)
			assert.False(t, input.Filters().Empty())
		})
	}
}

func TestSearchInputFromQuery_DataFimIsInclusive(t *testing.T) {
	input, err := searchInputFromQuery(queryContext(t, url.Values{"dataFim": {"2026-01-31"}}))
	require.NoError(t, err)

	require.NotNil(t, input.DateTo)
	endOfDay := time.Date(2026, 1, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	assert.Equal(t, endOfDay, input.DateTo.UTC())
}

func TestSearchInputFromQuery_RejectsMalformedDate(t *testing.T) {
	_, err := searchInputFromQuery(queryContext(t, url.Values{"dataInicio": {"31/01/2026"}}))
	assert.Error(t, err)
}
