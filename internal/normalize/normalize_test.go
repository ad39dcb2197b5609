package normalize

import (
	"strings"
	"testing"
	"time"
)

const header = "Regiao - Sigla;Estado - Sigla;Municipio;Revenda;CNPJ da Revenda;Produto;Data da Coleta;Valor de Venda;Valor de Compra;Unidade de Medida;Bandeira\n"

func TestRead_BasicRow(t *testing.T) {
	input := header +
		"SE;SP;CAMPINAS;POSTO ALFA;12.345.678/0001-90;GASOLINA;15/01/2024;5,49;5,10;R$ / litro;BRANCA\n"

	batch, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(batch.Records) != 1 {
		t.Fatalf("len(Records) = %d, want 1", len(batch.Records))
	}

	rec := batch.Records[0]
	if rec.RegionCode != "SE" || rec.StateCode != "SP" {
		t.Errorf("region/state = %q/%q, want SE/SP", rec.RegionCode, rec.StateCode)
	}
	if rec.SellerID != "12.345.678/0001-90" {
		t.Errorf("SellerID = %q", rec.SellerID)
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if !rec.CollectionDate.Equal(want) {
		t.Errorf("CollectionDate = %v, want %v", rec.CollectionDate, want)
	}
	if rec.SalePrice != 5.49 {
		t.Errorf("SalePrice = %v, want 5.49", rec.SalePrice)
	}
	if rec.PurchasePrice == nil || *rec.PurchasePrice != 5.10 {
		t.Errorf("PurchasePrice = %v, want 5.10", rec.PurchasePrice)
	}
}

func TestRead_MissingPurchasePrice(t *testing.T) {
	input := header +
		"SE;SP;CAMPINAS;POSTO ALFA;111;GASOLINA;15/01/2024;5,49;;R$ / litro;BRANCA\n"

	batch, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(batch.Records) != 1 {
		t.Fatalf("len(Records) = %d, want 1", len(batch.Records))
	}
	if batch.Records[0].PurchasePrice != nil {
		t.Errorf("PurchasePrice = %v, want nil", *batch.Records[0].PurchasePrice)
	}
}

func TestRead_RejectedRows(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{
			name: "unparsable date",
			row:  "SE;SP;CAMPINAS;POSTO ALFA;111;GASOLINA;31/02/nope;5,49;;R$ / litro;BRANCA",
		},
		{
			name: "missing seller id",
			row:  "SE;SP;CAMPINAS;POSTO ALFA;;GASOLINA;15/01/2024;5,49;;R$ / litro;BRANCA",
		},
		{
			name: "missing product",
			row:  "SE;SP;CAMPINAS;POSTO ALFA;111;;15/01/2024;5,49;;R$ / litro;BRANCA",
		},
		{
			name: "missing sale price",
			row:  "SE;SP;CAMPINAS;POSTO ALFA;111;GASOLINA;15/01/2024;;;R$ / litro;BRANCA",
		},
		{
			name: "unparsable sale price",
			row:  "SE;SP;CAMPINAS;POSTO ALFA;111;GASOLINA;15/01/2024;abc;;R$ / litro;BRANCA",
		},
		{
			name: "negative sale price",
			row:  "SE;SP;CAMPINAS;POSTO ALFA;111;GASOLINA;15/01/2024;-1,00;;R$ / litro;BRANCA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch, err := Read(strings.NewReader(header + tt.row + "\n"))
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if len(batch.Records) != 0 {
				t.Errorf("len(Records) = %d, want 0", len(batch.Records))
			}
			if batch.Rejected != 1 {
				t.Errorf("Rejected = %d, want 1", batch.Rejected)
			}
		})
	}
}

func TestRead_EmptyRowsDroppedSilently(t *testing.T) {
	input := header +
		";;;;;;;;;;\n" +
		"SE;SP;CAMPINAS;POSTO ALFA;111;GASOLINA;15/01/2024;5,49;;R$ / litro;BRANCA\n" +
		";;;;;;;;;;\n"

	batch, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if batch.Empty != 2 {
		t.Errorf("Empty = %d, want 2", batch.Empty)
	}
	if batch.Rejected != 0 {
		t.Errorf("Rejected = %d, want 0", batch.Rejected)
	}
	if len(batch.Records) != 1 {
		t.Errorf("len(Records) = %d, want 1", len(batch.Records))
	}
}

func TestRead_IntraBatchDuplicateKeepsFirst(t *testing.T) {
	input := header +
		"SE;SP;CAMPINAS;POSTO ALFA;111;GASOLINA;15/01/2024;5,49;;R$ / litro;BRANCA\n" +
		"SE;SP;CAMPINAS;POSTO ALFA; 111 ;GASOLINA;15/01/2024;5,99;;R$ / litro;BRANCA\n"

	batch, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(batch.Records) != 1 {
		t.Fatalf("len(Records) = %d, want 1", len(batch.Records))
	}
	if batch.Collapsed != 1 {
		t.Errorf("Collapsed = %d, want 1", batch.Collapsed)
	}
	// First occurrence wins.
	if batch.Records[0].SalePrice != 5.49 {
		t.Errorf("SalePrice = %v, want 5.49 (first row)", batch.Records[0].SalePrice)
	}
}

func TestRead_Latin1Decoding(t *testing.T) {
	// "SÃO PAULO" in ISO-8859-1: 'Ã' is a single 0xC3 byte.
	input := header +
		"SE;SP;S\xc3O PAULO;POSTO ALFA;111;GASOLINA;15/01/2024;5,49;;R$ / litro;BRANCA\n"

	batch, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(batch.Records) != 1 {
		t.Fatalf("len(Records) = %d, want 1", len(batch.Records))
	}
	if got := batch.Records[0].Municipality; got != "SÃO PAULO" {
		t.Errorf("Municipality = %q, want %q", got, "SÃO PAULO")
	}
}

func TestRead_Accounting(t *testing.T) {
	input := header +
		"SE;SP;CAMPINAS;POSTO ALFA;111;GASOLINA;15/01/2024;5,49;;R$ / litro;BRANCA\n" +
		"SE;SP;CAMPINAS;POSTO ALFA;111;GASOLINA;15/01/2024;5,49;;R$ / litro;BRANCA\n" +
		";;;;;;;;;;\n" +
		"SE;SP;CAMPINAS;POSTO BETA;;GASOLINA;15/01/2024;5,10;;R$ / litro;BRANCA\n" +
		"SE;RJ;RIO DE JANEIRO;POSTO GAMA;222;ETANOL;16/01/2024;3,89;3,50;R$ / litro;IPIRANGA\n"

	batch, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if batch.Total != 5 {
		t.Errorf("Total = %d, want 5", batch.Total)
	}
	if got := len(batch.Records) + batch.Empty + batch.Rejected + batch.Collapsed; got != batch.Total {
		t.Errorf("records+empty+rejected+collapsed = %d, want Total = %d", got, batch.Total)
	}
}

func TestRead_UnknownColumnsIgnored(t *testing.T) {
	input := "Extra;CNPJ da Revenda;Produto;Data da Coleta;Valor de Venda\n" +
		"x;111;GASOLINA;15/01/2024;5,49\n"

	batch, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(batch.Records) != 1 {
		t.Fatalf("len(Records) = %d, want 1", len(batch.Records))
	}
	if batch.Records[0].RegionCode != "" {
		t.Errorf("RegionCode = %q, want empty", batch.Records[0].RegionCode)
	}
}

func TestRead_NoHeader(t *testing.T) {
	if _, err := Read(strings.NewReader("")); err == nil {
		t.Fatal("Read() on empty input: expected error, got nil")
	}
}
