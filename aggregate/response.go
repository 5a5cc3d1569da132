package aggregate

import (
	"github.com/planilhas/sheets-api/table"
)

// Response is the document returned by GET /all-data.
type Response struct {
	PlanoDeExecucao              []table.Record `json:"planoDeExecução"`
	InventarioPPU                []table.Record `json:"inventárioPPU"`
	InventarioCentro             []table.Record `json:"inventárioCentro"`
	PriceList                    []table.Record `json:"priceList"`
	Lisde                        []table.Record `json:"lisde"`
	PoliticaDeEstoqueDeInspecoes []table.Record `json:"politicaDeEstoqueDeInspeções"`
	DemandasDePIM                []table.Record `json:"demandasDePIM"`
	ControleDeEntrada            []table.Record `json:"controleDeEntrada"`
	OrdensDeServico              []table.Record `json:"ordensDeServiço"`
	Logins                       []table.Record `json:"logins"`
	ReceitasDeTarefas            []table.Record `json:"receitasDeTarefas"`
	PedidosDeCompraPDs           []table.Record `json:"pedidosDeCompraPDs"`
}

// Field is a named response field, named as in the JSON document.
type Field struct {
	Name    string
	Records []table.Record
}

// Fields lists the response fields in document order.
func (r *Response) Fields() []Field {
	return []Field{
		{"planoDeExecução", r.PlanoDeExecucao},
		{"inventárioPPU", r.InventarioPPU},
		{"inventárioCentro", r.InventarioCentro},
		{"priceList", r.PriceList},
		{"lisde", r.Lisde},
		{"politicaDeEstoqueDeInspeções", r.PoliticaDeEstoqueDeInspecoes},
		{"demandasDePIM", r.DemandasDePIM},
		{"controleDeEntrada", r.ControleDeEntrada},
		{"ordensDeServiço", r.OrdensDeServico},
		{"logins", r.Logins},
		{"receitasDeTarefas", r.ReceitasDeTarefas},
		{"pedidosDeCompraPDs", r.PedidosDeCompraPDs},
	}
}

// Field returns the named response field.
func (r *Response) Field(name string) (Field, bool) {
	for _, f := range r.Fields() {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}
