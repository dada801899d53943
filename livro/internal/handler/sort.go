package handler

import (
	"strings"

	"github.com/Astemirdum/livro-service/livro/internal/errs"
	"github.com/Astemirdum/livro-service/livro/internal/model"
)

// parseSort reads sort=prop[,prop...][,asc|desc] values; each value may
// name several properties sharing one direction.
func parseSort(values []string) ([]model.Order, error) {
	var orders []model.Order
	for _, v := range values {
		parts := strings.Split(v, ",")
		desc := false
		switch last := strings.ToLower(strings.TrimSpace(parts[len(parts)-1])); last {
		case "asc", "desc":
			desc = last == "desc"
			parts = parts[:len(parts)-1]
		}
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if !model.IsSortable(p) {
				return nil, errs.ErrInvalidSort
			}
			orders = append(orders, model.Order{Field: p, Desc: desc})
		}
	}
	return orders, nil
}
