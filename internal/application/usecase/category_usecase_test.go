package usecase_test

import (
	"testing"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/application/usecase"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreate_NombreUnicoYSlug(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newMemCategories())

	resp, err := uc.Create(dto.CreateCategoryRequest{Name: "Frutas de Estación"})
	require.NoError(t, err)
	assert.Equal(t, "frutas-de-estacion", resp.Slug)

	_, err = uc.Create(dto.CreateCategoryRequest{Name: "Frutas de Estación"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(dto.CreateCategoryRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryUpdate_PorSlug(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newMemCategories())

	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Verduras"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateCategoryRequest{Name: "Frutas"})
	require.NoError(t, err)

	resp, err := uc.Update("verduras", dto.CreateCategoryRequest{Name: "Hortalizas"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID, "renombrar conserva la identidad")
	assert.Equal(t, "hortalizas", resp.Slug)

	// El nombre nuevo choca con otra categoría.
	_, err = uc.Update("hortalizas", dto.CreateCategoryRequest{Name: "Frutas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Slug inexistente: sin categoría y sin error.
	resp, err = uc.Update("no-existe", dto.CreateCategoryRequest{Name: "Otra"})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestCategoryDelete_PorSlug(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newMemCategories())

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Verduras"})
	require.NoError(t, err)

	deleted, err := uc.Delete("verduras")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = uc.Delete("verduras")
	require.NoError(t, err)
	assert.False(t, deleted)
}
