package normalize

// Canonical field names produced by header translation.
const (
	fieldRegionCode     = "region_code"
	fieldStateCode      = "state_code"
	fieldMunicipality   = "municipality"
	fieldSellerName     = "seller_name"
	fieldSellerID       = "seller_id"
	fieldProduct        = "product"
	fieldCollectionDate = "collection_date"
	fieldSalePrice      = "sale_price"
	fieldPurchasePrice  = "purchase_price"
	fieldUnit           = "unit"
	fieldBrand          = "brand"
)

// columnTable maps the survey file's Portuguese headers to canonical
// field names. Headers not listed here are ignored.
var columnTable = map[string]string{
	"Regiao - Sigla":    fieldRegionCode,
	"Estado - Sigla":    fieldStateCode,
	"Municipio":         fieldMunicipality,
	"Revenda":           fieldSellerName,
	"CNPJ da Revenda":   fieldSellerID,
	"Produto":           fieldProduct,
	"Data da Coleta":    fieldCollectionDate,
	"Valor de Venda":    fieldSalePrice,
	"Valor de Compra":   fieldPurchasePrice,
	"Unidade de Medida": fieldUnit,
	"Bandeira":          fieldBrand,
}
