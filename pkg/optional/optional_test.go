package optional_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-service/pkg/optional"
)

type patchBody struct {
	Name     optional.Value[string] `json:"name"`
	VendorID optional.Value[int64]  `json:"vendor_id"`
}

func TestValue_DistingueAusenteNullYValor(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		nameSet     bool
		vendorSet   bool
		vendorNull  bool
		vendorValue int64
	}{
		{"documento vacío", `{}`, false, false, false, 0},
		{"solo name", `{"name":"x"}`, true, false, false, 0},
		{"vendor null explícito", `{"vendor_id":null}`, false, true, true, 0},
		{"vendor con valor", `{"vendor_id":7}`, false, true, false, 7},
		{"vendor en cero", `{"vendor_id":0}`, false, true, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p patchBody
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.nameSet, p.Name.IsSet())
			assert.Equal(t, tt.vendorSet, p.VendorID.IsSet())
			assert.Equal(t, tt.vendorNull, p.VendorID.IsNull())
			v, ok := p.VendorID.Get()
			assert.Equal(t, tt.vendorSet && !tt.vendorNull, ok)
			assert.Equal(t, tt.vendorValue, v)
		})
	}
}

func TestValue_TipoIncorrectoFalla(t *testing.T) {
	var p patchBody
	err := json.Unmarshal([]byte(`{"vendor_id":"abc"}`), &p)
	assert.Error(t, err)
}

func TestValue_Ptr(t *testing.T) {
	assert.Nil(t, optional.Value[string]{}.Ptr())
	assert.Nil(t, optional.Null[string]().Ptr())
	p := optional.Of("pc").Ptr()
	require.NotNil(t, p)
	assert.Equal(t, "pc", *p)
}

func TestValue_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(patchBody{Name: optional.Of("Sofa"), VendorID: optional.Null[int64]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Sofa","vendor_id":null}`, string(out))
}
