package creditmemo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/creditmemo-api/internal/application/creditmemo"
	"github.com/jhoicas/creditmemo-api/internal/application/dto"
	"github.com/jhoicas/creditmemo-api/internal/domain"
	"github.com/jhoicas/creditmemo-api/internal/domain/entity"
)

func seededRepo() *memoryCreditMemoRepo {
	return &memoryCreditMemoRepo{memos: []*entity.CreditMemo{
		{ID: "cm-1", Number: "2018/07/000000001", OrderNumber: "000666", Channel: entity.ChannelRef{Code: "WEB-US"}, IssuedAt: sampleIssuedAt},
		{ID: "cm-2", Number: "2018/07/000000002", OrderNumber: "000777", Channel: entity.ChannelRef{Code: "WEB-EU"}, IssuedAt: sampleIssuedAt.Add(time.Hour)},
		{ID: "cm-3", Number: "2018/07/000000003", OrderNumber: "000666", Channel: entity.ChannelRef{Code: "WEB-US"}, IssuedAt: sampleIssuedAt.Add(2 * time.Hour)},
	}}
}

func TestQuery_Get(t *testing.T) {
	uc := creditmemo.NewQueryUseCase(seededRepo())

	out, err := uc.Get(context.Background(), "cm-2")
	require.NoError(t, err)
	assert.Equal(t, "2018/07/000000002", out.Number)

	_, err = uc.Get(context.Background(), "cm-9")
	assert.ErrorIs(t, err, domain.ErrCreditMemoNotFound)

	_, err = uc.Get(context.Background(), " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQuery_Get_ErrorDeRepositorio(t *testing.T) {
	repo := seededRepo()
	repo.getErr = errors.New("db caída")
	_, err := creditmemo.NewQueryUseCase(repo).Get(context.Background(), "cm-1")
	assert.ErrorIs(t, err, repo.getErr)
}

func TestQuery_ListByOrder(t *testing.T) {
	uc := creditmemo.NewQueryUseCase(seededRepo())

	out, err := uc.ListByOrder(context.Background(), "000666")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "cm-1", out[0].ID)
	assert.Equal(t, "cm-3", out[1].ID)

	out, err = uc.ListByOrder(context.Background(), "000000")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = uc.ListByOrder(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQuery_List_FiltroPorCanalYPaginacion(t *testing.T) {
	repo := seededRepo()
	uc := creditmemo.NewQueryUseCase(repo)

	out, err := uc.List(context.Background(), " WEB-US ", dto.PageRequest{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, "WEB-US", repo.lastList.ChannelCode)
	assert.Equal(t, 2, out.Page.Total)
	assert.Equal(t, 1, out.Page.Limit)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "cm-1", out.Items[0].ID)
}

func TestQuery_List_PaginaPorDefecto(t *testing.T) {
	repo := seededRepo()
	out, err := creditmemo.NewQueryUseCase(repo).List(context.Background(), "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, dto.DefaultPageLimit, repo.lastList.Limit)
	assert.Equal(t, 0, repo.lastList.Offset)
	assert.Equal(t, dto.DefaultPageLimit, out.Page.Limit)
	assert.Len(t, out.Items, 3)
}

func TestQuery_List_PaginaFueraDeRango(t *testing.T) {
	cases := map[string]dto.PageRequest{
		"limit mayor a 100": {Limit: 500},
		"limit negativo":    {Limit: -1},
		"offset negativo":   {Limit: 10, Offset: -3},
	}
	for name, page := range cases {
		t.Run(name, func(t *testing.T) {
			repo := seededRepo()
			out, err := creditmemo.NewQueryUseCase(repo).List(context.Background(), "", page)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, repo.lastList.Limit, "no debe consultar el repositorio")
		})
	}
}
