package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/tu-usuario/billing-api/internal/application/billing"
	"github.com/tu-usuario/billing-api/internal/application/dto"
	"github.com/tu-usuario/billing-api/internal/application/validate"
	"github.com/tu-usuario/billing-api/internal/domain"
	"github.com/tu-usuario/billing-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia y del feed externo.
// Registran las llamadas para poder afirmar que los chequeos fallidos
// no tocan el storage.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCustomerID = "11111111-1111-1111-1111-111111111111"
	testProductA   = "22222222-2222-2222-2222-222222222222"
	testProductB   = "33333333-3333-3333-3333-333333333333"
	testProductC   = "44444444-4444-4444-4444-444444444444"
	testBillingID  = "55555555-5555-5555-5555-555555555555"
)

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	getCalls  int
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error { f.customers[c.ID] = c; return nil }
func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	f.getCalls++
	return f.customers[id], nil
}
func (f *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) Update(c *entity.Customer) error                    { return nil }
func (f *fakeCustomerRepo) Delete(id string) error                             { return nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
	gets     []string // orden exacto de las búsquedas por ID
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	f.gets = append(f.gets, id)
	return f.products[id], nil
}
func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(p *entity.Product) error                    { return nil }
func (f *fakeProductRepo) Delete(id string) error                            { return nil }

type fakeBillingRepo struct {
	billings    map[string]*entity.Billing
	createCalls int
	updateCalls int
	deleteCalls int
	createErr   error
}

func (f *fakeBillingRepo) Create(b *entity.Billing) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	f.billings[b.ID] = b
	return nil
}
func (f *fakeBillingRepo) GetByID(id string) (*entity.Billing, error) { return f.billings[id], nil }
func (f *fakeBillingRepo) List(limit, offset int) ([]*entity.Billing, error) {
	out := make([]*entity.Billing, 0, len(f.billings))
	for _, b := range f.billings {
		out = append(out, b)
	}
	return out, nil
}
func (f *fakeBillingRepo) Update(b *entity.Billing) error {
	f.updateCalls++
	f.billings[b.ID] = b
	return nil
}
func (f *fakeBillingRepo) Delete(id string) error {
	f.deleteCalls++
	delete(f.billings, id)
	return nil
}

type fakeSource struct {
	records []dto.BillingAPIRecord
	err     error
	calls   int
}

func (f *fakeSource) FetchBillings(ctx context.Context) ([]dto.BillingAPIRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

// fixture agrupa el caso de uso con sus fakes sembrados: un cliente y
// los productos A y C (B queda deliberadamente sin sembrar).
type fixture struct {
	uc        *appbilling.BillingUseCase
	customers *fakeCustomerRepo
	products  *fakeProductRepo
	billings  *fakeBillingRepo
	source    *fakeSource
}

func newFixture() *fixture {
	customers := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		testCustomerID: {ID: testCustomerID, Name: "ACME S.A.", Email: "pagos@acme.co", Address: "Calle 1 # 2-3"},
	}}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		testProductA: {ID: testProductA, Description: "Licencia anual"},
		testProductC: {ID: testProductC, Description: "Soporte premium"},
	}}
	billings := &fakeBillingRepo{billings: map[string]*entity.Billing{}}
	source := &fakeSource{}
	uc := appbilling.NewBillingUseCase(billings, customers, products, source, validate.New())
	return &fixture{uc: uc, customers: customers, products: products, billings: billings, source: source}
}

func validRequest() dto.BillingRequest {
	return dto.BillingRequest{
		InvoiceNumber: "FAC-001",
		CustomerID:    testCustomerID,
		Date:          "2026-01-15",
		DueDate:       "2026-02-15",
		TotalAmount:   decimal.NewFromInt(150),
		Currency:      "USD",
		Lines: []dto.BillingLineRequest{
			{
				ProductID: testProductA,
				Quantity:  decimal.NewFromInt(3),
				UnitPrice: decimal.NewFromInt(50),
				Subtotal:  decimal.NewFromInt(150),
			},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestBillingCreate_Exitoso(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Create(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "FAC-001", resp.InvoiceNumber)
	assert.Equal(t, "2026-01-15", resp.Date)
	assert.Equal(t, "2026-02-15", resp.DueDate)
	assert.Equal(t, 1, f.billings.createCalls, "debe persistir exactamente una vez")
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, resp.ID, resp.Lines[0].BillingID)
}

func TestBillingCreate_DescripcionDeLineaVacia_TomaLaDelProducto(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Create(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "Licencia anual", resp.Lines[0].Description,
		"sin descripción en el request, la línea hereda la del producto")
}

func TestBillingCreate_DescripcionDeLineaExplicita_SeConserva(t *testing.T) {
	f := newFixture()
	in := validRequest()
	in.Lines[0].Description = "Licencia anual plan empresa"

	resp, err := f.uc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "Licencia anual plan empresa", resp.Lines[0].Description)
}

func TestBillingCreate_CamposInvalidos_NoTocaStorage(t *testing.T) {
	f := newFixture()
	in := validRequest()
	in.InvoiceNumber = ""
	in.Currency = "PESOS"

	resp, err := f.uc.Create(context.Background(), in)

	require.Error(t, err)
	assert.Nil(t, resp)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Messages, "invoice_number is required.")
	assert.Contains(t, vErr.Messages, "currency must be exactly 3 characters.")
	assert.Zero(t, f.customers.getCalls, "validación fallida no debe consultar referencias")
	assert.Zero(t, f.billings.createCalls, "validación fallida no debe escribir")
}

func TestBillingCreate_ClienteInexistente_NotFoundSinEscribir(t *testing.T) {
	f := newFixture()
	in := validRequest()
	in.CustomerID = "99999999-9999-9999-9999-999999999999"

	_, err := f.uc.Create(context.Background(), in)

	var nfErr *domain.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, domain.EntityCustomer, nfErr.Entity)
	assert.Empty(t, f.products.gets, "con cliente faltante no se consultan productos")
	assert.Zero(t, f.billings.createCalls)
}

func TestBillingCreate_ProductoFaltante_CortaEnElPrimero(t *testing.T) {
	f := newFixture()
	in := validRequest()
	// A existe, B no existe, C existe: el chequeo debe frenar en B.
	in.Lines = []dto.BillingLineRequest{
		{ProductID: testProductA, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10), Subtotal: decimal.NewFromInt(10)},
		{ProductID: testProductB, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10), Subtotal: decimal.NewFromInt(10)},
		{ProductID: testProductC, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10), Subtotal: decimal.NewFromInt(10)},
	}

	_, err := f.uc.Create(context.Background(), in)

	var nfErr *domain.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, domain.EntityProduct, nfErr.Entity)
	assert.Equal(t, testProductB, nfErr.ID)
	assert.Equal(t, []string{testProductA, testProductB}, f.products.gets,
		"el producto posterior al faltante no debe consultarse")
	assert.Zero(t, f.billings.createCalls)
}

func TestBillingCreate_ProductoRepetido_SeConsultaUnaVez(t *testing.T) {
	f := newFixture()
	in := validRequest()
	in.Lines = append(in.Lines, dto.BillingLineRequest{
		ProductID: testProductA,
		Quantity:  decimal.NewFromInt(2),
		UnitPrice: decimal.NewFromInt(50),
		Subtotal:  decimal.NewFromInt(100),
	})

	_, err := f.uc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, []string{testProductA}, f.products.gets)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / GetAll
// ──────────────────────────────────────────────────────────────────────────────

func TestBillingGetByID_Inexistente_NotFound(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.GetByID(context.Background(), testBillingID)

	assert.Nil(t, resp)
	var nfErr *domain.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, domain.EntityBilling, nfErr.Entity)
	assert.Equal(t, testBillingID, nfErr.ID)
}

func TestBillingGetAll_SinFacturas_ListaVacia(t *testing.T) {
	f := newFixture()

	out, err := f.uc.GetAll(context.Background(), 20, 0)

	require.NoError(t, err)
	require.NotNil(t, out, "sin facturas debe retornar lista vacía, no nil")
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestBillingUpdate_ReemplazaLasLineas(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	oldLineID := created.Lines[0].ID

	in := validRequest()
	in.InvoiceNumber = "FAC-001-R1"
	in.Lines = []dto.BillingLineRequest{
		{ProductID: testProductA, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(50), Subtotal: decimal.NewFromInt(50)},
		{ProductID: testProductC, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(30), Subtotal: decimal.NewFromInt(60)},
	}

	resp, err := f.uc.Update(context.Background(), created.ID, in)

	require.NoError(t, err)
	assert.Equal(t, "FAC-001-R1", resp.InvoiceNumber)
	require.Len(t, resp.Lines, 2, "el conjunto de líneas se reemplaza completo")
	for _, l := range resp.Lines {
		assert.NotEqual(t, oldLineID, l.ID, "las líneas nuevas reciben IDs nuevos")
	}
	assert.Equal(t, 1, f.billings.updateCalls)
}

func TestBillingUpdate_Inexistente_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Update(context.Background(), testBillingID, validRequest())

	var nfErr *domain.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, domain.EntityBilling, nfErr.Entity)
	assert.Zero(t, f.billings.updateCalls)
}

func TestBillingDelete_Exitoso(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), created.ID))
	assert.Equal(t, 1, f.billings.deleteCalls)

	_, err = f.uc.GetByID(context.Background(), created.ID)
	var nfErr *domain.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestBillingDelete_Inexistente_NotFound(t *testing.T) {
	f := newFixture()

	err := f.uc.Delete(context.Background(), testBillingID)

	var nfErr *domain.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Zero(t, f.billings.deleteCalls)
}

// Verifica que un fallo del repositorio en Create sube sin envolver.
func TestBillingCreate_FalloDeRepositorio_SubeElError(t *testing.T) {
	f := newFixture()
	f.billings.createErr = errors.New("unique violation: invoice number already exists")

	_, err := f.uc.Create(context.Background(), validRequest())

	require.Error(t, err)
	var nfErr *domain.NotFoundError
	assert.False(t, errors.As(err, &nfErr))
}
