package usecase_test

import (
	"strings"
	"testing"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/application/usecase"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productFixture() (*usecase.ProductUseCase, *memProducts, *memCategories, *fakePhotoStore) {
	products := newMemProducts()
	categories := newMemCategories(&entity.Category{ID: "cat-1", Name: "Verduras", Slug: "verduras"})
	photos := newFakePhotoStore()
	return usecase.NewProductUseCase(products, categories, photos), products, categories, photos
}

func createProductRequest(name string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:          name,
		Description:   "Tomates cherry cultivados al aire libre",
		Price:         decimal.RequireFromString("1500"),
		CategoryID:    "cat-1",
		Quantity:      10,
		Origin:        "Maule",
		NutritionFact: "Vitamina C, licopeno",
	}
}

func TestProductCreate_DerivaSlugYSubeFotos(t *testing.T) {
	uc, _, _, photos := productFixture()

	uploads := []usecase.PhotoUpload{
		{Filename: "frente.jpg", ContentType: "image/jpeg", Body: strings.NewReader("jpg-bytes")},
		{Filename: "detalle.png", ContentType: "image/png", Body: strings.NewReader("png-bytes")},
	}
	resp, err := uc.Create("sup-1", createProductRequest("Tomates Cherry"), uploads)
	require.NoError(t, err)

	assert.Equal(t, "tomates-cherry", resp.Slug)
	assert.Equal(t, "sup-1", resp.SupplierID)
	require.Len(t, resp.Photos, 2)
	assert.Contains(t, resp.Photos[0].URL, "https://storage.test/products/"+resp.ID+"/")
	assert.Len(t, photos.uploads, 2, "ambas fotos quedan en el bucket")
}

func TestProductCreate_Rechazos(t *testing.T) {
	uc, _, _, _ := productFixture()

	in := createProductRequest("Tomates")
	in.Description = ""
	_, err := uc.Create("sup-1", in, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "faltan campos obligatorios")

	in = createProductRequest("Tomates")
	in.Price = decimal.Zero
	_, err = uc.Create("sup-1", in, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el precio debe ser positivo")

	in = createProductRequest("Tomates")
	in.Quantity = 0
	_, err = uc.Create("sup-1", in, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock mínimo 1")

	in = createProductRequest("Tomates")
	in.CategoryID = "no-existe"
	_, err = uc.Create("sup-1", in, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound, "la categoría debe existir")

	_, err = uc.Create("sup-1", createProductRequest("Tomates"), nil)
	require.NoError(t, err)
	_, err = uc.Create("sup-2", createProductRequest("Tomates"), nil)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el nombre es único")
}

func TestProductUpdate_SoloDuenoOAdmin(t *testing.T) {
	uc, _, _, _ := productFixture()

	created, err := uc.Create("sup-1", createProductRequest("Tomates"), nil)
	require.NoError(t, err)

	name := "Tomates Larga Vida"
	resp, err := uc.Update(created.ID, "sup-1", entity.RoleSupplier, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "tomates-larga-vida", resp.Slug, "el slug se rederiva al renombrar")

	_, err = uc.Update(created.ID, "sup-2", entity.RoleSupplier, dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrForbidden, "otro proveedor no puede editar")

	_, err = uc.Update(created.ID, "admin-1", entity.RoleAdmin, dto.UpdateProductRequest{Name: &name})
	assert.NoError(t, err, "un admin edita cualquier producto")
}

func TestProductDelete_SoloDuenoOAdmin(t *testing.T) {
	uc, _, _, _ := productFixture()

	created, err := uc.Create("sup-1", createProductRequest("Tomates"), nil)
	require.NoError(t, err)

	_, err = uc.Delete(created.ID, "sup-2", entity.RoleSupplier)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	deleted, err := uc.Delete(created.ID, "sup-1", entity.RoleSupplier)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = uc.Delete(created.ID, "sup-1", entity.RoleSupplier)
	require.NoError(t, err)
	assert.False(t, deleted, "ya no existía")
}

func TestProductGetBySlug(t *testing.T) {
	uc, _, _, _ := productFixture()

	created, err := uc.Create("sup-1", createProductRequest("Limón Sutil"), nil)
	require.NoError(t, err)

	resp, err := uc.GetBySlug("limon-sutil")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, created.ID, resp.ID)

	resp, err = uc.GetBySlug("no-existe")
	require.NoError(t, err)
	assert.Nil(t, resp)
}
