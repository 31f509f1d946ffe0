package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventory-service/internal/domain/listing"
)

func TestOrderClause(t *testing.T) {
	five := 5
	tests := []struct {
		name     string
		alias    string
		plan     listing.Plan
		next     int
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "ascendente sin límite",
			plan:    listing.Plan{Column: listing.CategoryName, Ascending: true},
			next:    1,
			wantSQL: ` ORDER BY "name" ASC`,
		},
		{
			name:     "con alias y límite",
			alias:    "i",
			plan:     listing.Plan{Column: listing.ItemQuantity, Ascending: false, Limit: &five},
			next:     1,
			wantSQL:  ` ORDER BY "i"."quantity" DESC LIMIT $1`,
			wantArgs: []any{5},
		},
		{
			name:     "parámetro de dos dígitos",
			plan:     listing.Plan{Column: listing.ItemID, Ascending: true, Limit: &five},
			next:     12,
			wantSQL:  ` ORDER BY "item_id" ASC LIMIT $12`,
			wantArgs: []any{5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := orderClause(tt.alias, tt.plan, tt.next)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestOrderClause_EntradaHostilNoLlegaAlSQL(t *testing.T) {
	plan := listing.Build(listing.Params{OrderBy: `name"; DROP TABLE items; --`}, listing.ItemColumns)
	sql, _ := orderClause("i", plan, 1)
	assert.Equal(t, ` ORDER BY "i"."item_id" ASC`, sql)
}
