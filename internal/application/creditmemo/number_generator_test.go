package creditmemo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/creditmemo-api/internal/application/creditmemo"
)

func TestSequentialNumber_Formato(t *testing.T) {
	clock := fixedClock{now: sampleIssuedAt}
	g := creditmemo.NewSequentialNumberGenerator(&fakeSequenceRepo{}, clock, 1111, 8)

	first, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleNumber, first)

	second, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2018/07/00001112", second)
}

func TestSequentialNumber_ValoresPorDefecto(t *testing.T) {
	clock := fixedClock{now: time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC)}
	g := creditmemo.NewSequentialNumberGenerator(&fakeSequenceRepo{}, clock, 0, 0)

	n, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024/01/000000001", n)
}

func TestSequentialNumber_ContinuaDesdeElIndice(t *testing.T) {
	clock := fixedClock{now: sampleIssuedAt}
	g := creditmemo.NewSequentialNumberGenerator(&fakeSequenceRepo{next: 41}, clock, 1, 9)

	n, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2018/07/000000042", n)
}

func TestSequentialNumber_ErrorDeSecuencia(t *testing.T) {
	boom := errors.New("lock timeout")
	g := creditmemo.NewSequentialNumberGenerator(&fakeSequenceRepo{err: boom}, fixedClock{now: sampleIssuedAt}, 1, 9)

	_, err := g.Generate(context.Background())
	assert.ErrorIs(t, err, boom)
}
