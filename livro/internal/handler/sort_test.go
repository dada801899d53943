package handler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/livro-service/livro/internal/errs"
	"github.com/Astemirdum/livro-service/livro/internal/model"
)

func Test_parseSort(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		values  []string
		want    []model.Order
		wantErr error
	}{
		{name: "empty", values: nil, want: nil},
		{name: "id desc", values: []string{"id,desc"}, want: []model.Order{{Field: "id", Desc: true}}},
		{name: "default asc", values: []string{"titulo"}, want: []model.Order{{Field: "titulo"}}},
		{
			name:   "several properties one direction",
			values: []string{"titulo,categoria,DESC"},
			want:   []model.Order{{Field: "titulo", Desc: true}, {Field: "categoria", Desc: true}},
		},
		{
			name:   "repeated params",
			values: []string{"categoria,asc", "id,desc"},
			want:   []model.Order{{Field: "categoria"}, {Field: "id", Desc: true}},
		},
		{name: "unknown property", values: []string{"autor,desc"}, wantErr: errs.ErrInvalidSort},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseSort(tt.values)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
