package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/billing-api/internal/application/dto"
	"github.com/tu-usuario/billing-api/internal/application/usecase"
	"github.com/tu-usuario/billing-api/internal/application/validate"
	"github.com/tu-usuario/billing-api/internal/domain"
	"github.com/tu-usuario/billing-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos CRUD.
// ──────────────────────────────────────────────────────────────────────────────

type memCustomerRepo struct {
	customers   map[string]*entity.Customer
	deleteCalls int
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: map[string]*entity.Customer{}}
}

func (r *memCustomerRepo) Create(c *entity.Customer) error { r.customers[c.ID] = c; return nil }
func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}
func (r *memCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}
func (r *memCustomerRepo) Update(c *entity.Customer) error { r.customers[c.ID] = c; return nil }
func (r *memCustomerRepo) Delete(id string) error {
	r.deleteCalls++
	delete(r.customers, id)
	return nil
}

func validCustomer() dto.CustomerRequest {
	return dto.CustomerRequest{Name: "ACME S.A.", Email: "pagos@acme.co", Address: "Calle 1 # 2-3"}
}

func TestCustomerCreate_Exitoso(t *testing.T) {
	repo := newMemCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo, validate.New())

	resp, err := uc.Create(validCustomer())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID, "el servidor asigna el ID")
	assert.Equal(t, "ACME S.A.", resp.Name)
	assert.Len(t, repo.customers, 1)
}

func TestCustomerCreate_Invalido_NoEscribe(t *testing.T) {
	repo := newMemCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo, validate.New())

	resp, err := uc.Create(dto.CustomerRequest{Name: "ACME"})

	assert.Nil(t, resp)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, repo.customers)
}

func TestCustomerGetByID_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemCustomerRepo(), validate.New())

	resp, err := uc.GetByID("11111111-1111-1111-1111-111111111111")

	assert.Nil(t, resp)
	var nfErr *domain.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, domain.EntityCustomer, nfErr.Entity)
	assert.Equal(t, "Customer with ID 11111111-1111-1111-1111-111111111111 not found.", nfErr.Error())
}

func TestCustomerGetAll_SinClientes_ListaVacia(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemCustomerRepo(), validate.New())

	out, err := uc.GetAll(20, 0)

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestCustomerUpdate_AplicaTodosLosCampos(t *testing.T) {
	repo := newMemCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo, validate.New())
	created, err := uc.Create(validCustomer())
	require.NoError(t, err)

	resp, err := uc.Update(created.ID, dto.CustomerRequest{
		Name:    "ACME Holdings",
		Email:   "facturacion@acme.co",
		Address: "Carrera 9 # 10-11",
	})

	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID, "el ID no cambia en update")
	assert.Equal(t, "ACME Holdings", resp.Name)
	assert.Equal(t, "facturacion@acme.co", resp.Email)
	assert.Equal(t, "Carrera 9 # 10-11", resp.Address)
}

func TestCustomerUpdate_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemCustomerRepo(), validate.New())

	_, err := uc.Update("11111111-1111-1111-1111-111111111111", validCustomer())

	var nfErr *domain.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestCustomerDelete_Inexistente_NotFoundSinBorrar(t *testing.T) {
	repo := newMemCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo, validate.New())

	err := uc.Delete("11111111-1111-1111-1111-111111111111")

	var nfErr *domain.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Zero(t, repo.deleteCalls)
}

func TestCustomerDelete_Exitoso(t *testing.T) {
	repo := newMemCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo, validate.New())
	created, err := uc.Create(validCustomer())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	assert.Empty(t, repo.customers)
}
