package table

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSetKeepsPosition(t *testing.T) {
	r := NewRecord("PD", "123", "Status", "Aberto", "Valor", "10")

	r.Set("Status", "Pago")
	r.Set("Nome da Tarefa", "Troca")

	assert.Equal(t, []string{"PD", "Status", "Valor", "Nome da Tarefa"}, r.Keys())

	v, ok := r.Get("Status")
	assert.True(t, ok)
	assert.Equal(t, "Pago", v)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRecordClone(t *testing.T) {
	r := NewRecord("A", "1")
	clone := r.Clone()
	clone.Set("A", "2")
	clone.Set("B", "3")

	v, _ := r.Get("A")
	assert.Equal(t, "1", v)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestRecordJSON(t *testing.T) {
	r := NewRecord("NOME_TROCA", "Filtro de ar", "DATA", "2024-02-01")

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"NOME_TROCA":"Filtro de ar","DATA":"2024-02-01"}`, string(b))

	var decoded Record
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, r, decoded)
}

func TestEmptyRecordJSON(t *testing.T) {
	b, err := json.Marshal(Record{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(b))
}

func TestRecordUnmarshalJSONWithInvalidValue(t *testing.T) {
	var r Record

	assert.Error(t, json.Unmarshal([]byte(`{"A":1}`), &r))
	assert.Error(t, json.Unmarshal([]byte(`["A"]`), &r))
}
