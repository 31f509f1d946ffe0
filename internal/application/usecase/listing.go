package usecase

import (
	"github.com/jhoicas/inventory-service/internal/application/dto"
	"github.com/jhoicas/inventory-service/internal/domain/listing"
)

func planFor(q dto.ListQuery, allow listing.AllowList) listing.Plan {
	return listing.Build(listing.Params{
		Limit:     q.Limit,
		OrderBy:   q.OrderBy,
		Ascending: q.Ascending,
	}, allow)
}

func mapAll[E any, R any](rows []*E, fn func(*E) *R) []R {
	out := make([]R, 0, len(rows))
	for _, r := range rows {
		out = append(out, *fn(r))
	}
	return out
}
