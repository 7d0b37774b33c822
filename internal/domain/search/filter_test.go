package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/search"
)

func sampleOrders() []entity.Order {
	return []entity.Order{
		{ID: "#ORD-1001", CustomerName: "Ana Souza", Service: "Troca de sola", Status: entity.OrderPendente},
		{ID: "#ORD-1002", CustomerName: "Beto Lima", Service: "Pintura de bolsa", Status: entity.OrderEmRestauracao},
		{ID: "#ORD-1003", CustomerName: "Caio Reis", Service: "Restauração completa", Status: entity.OrderPronto},
	}
}

func ids(orders []entity.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestOrders_TextoSinMayusculas(t *testing.T) {
	got := search.Orders(sampleOrders(), search.Query{Text: "BOLSA"})
	assert.Equal(t, []string{"#ORD-1002"}, ids(got))
}

func TestOrders_TextoConAcentos(t *testing.T) {
	got := search.Orders(sampleOrders(), search.Query{Text: "RESTAURAÇÃO"})
	assert.Equal(t, []string{"#ORD-1003"}, ids(got))
}

func TestOrders_FacetaYTexto(t *testing.T) {
	q := search.Query{Text: "ord-100", Facet: string(entity.OrderPendente)}
	assert.Equal(t, []string{"#ORD-1001"}, ids(search.Orders(sampleOrders(), q)))
}

func TestOrders_TodosDesactivaFaceta(t *testing.T) {
	got := search.Orders(sampleOrders(), search.Query{Facet: search.All})
	assert.Len(t, got, 3)
}

func TestApply_Idempotente(t *testing.T) {
	q := search.Query{Text: "a", Facet: string(entity.OrderEmRestauracao)}
	once := search.Orders(sampleOrders(), q)
	twice := search.Orders(once, q)
	assert.Equal(t, once, twice)
}

func TestApply_NoModificaOrigen(t *testing.T) {
	src := sampleOrders()
	before := append([]entity.Order(nil), src...)
	_ = search.Orders(src, search.Query{Text: "caio"})
	assert.Equal(t, before, src)
}

func TestCustomers_SinFaceta(t *testing.T) {
	cs := []entity.Customer{
		{Name: "Ana", Email: "ana@mail.com", Phone: "(13) 1111"},
		{Name: "Beto", Email: "beto@mail.com", Phone: "(13) 2222"},
	}
	assert.Len(t, search.Customers(cs, search.Query{Text: "2222", Facet: "ignorada"}), 1)
}

func TestInventory_PorTipo(t *testing.T) {
	items := []entity.InventoryItem{
		{Name: "Cola", SKU: "INS-1", Category: "Adesivos", Type: entity.ItemServico},
		{Name: "Graxa", SKU: "BTQ-1", Category: "Cuidados", Type: entity.ItemBoutique},
	}
	got := search.Inventory(items, search.Query{Facet: string(entity.ItemBoutique)})
	assert.Len(t, got, 1)
	assert.Equal(t, "Graxa", got[0].Name)
}

func TestTransactions_PorTipoYMetodo(t *testing.T) {
	txs := []entity.Transaction{
		{Description: "Sola", Method: "PIX", Type: entity.TxEntrada},
		{Description: "Couro", Method: "PIX", Type: entity.TxSaida},
	}
	got := search.Transactions(txs, search.Query{Text: "pix", Facet: string(entity.TxSaida)})
	assert.Len(t, got, 1)
	assert.Equal(t, "Couro", got[0].Description)
}

func TestInvoices_PorReferenciaDeOrden(t *testing.T) {
	nfs := []entity.Invoice{
		{ID: "NF-1", OrderID: "#ORD-1001", Status: entity.InvoiceEmitida},
		{ID: "NF-2", OrderID: "#ORD-1002", Status: entity.InvoiceCancelada},
	}
	got := search.Invoices(nfs, search.Query{Text: "1002"})
	assert.Len(t, got, 1)
	assert.Equal(t, "NF-2", got[0].ID)
}
