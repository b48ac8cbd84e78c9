package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vishal7007/MobileShop-api/internal/domain/scan"
)

func TestExtractFromText_EncuentraIMEIs(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "imei solo",
			text: "123456789012345",
			want: []string{"123456789012345"},
		},
		{
			name: "imei dentro de una factura",
			text: "Bill No 42\nIMEI: 356938035643809\nTotal: 12000",
			want: []string{"356938035643809"},
		},
		{
			name: "varios imeis separados",
			text: "IMEI1: 123456789012345, IMEI2: 923456789012345",
			want: []string{"123456789012345", "923456789012345"},
		},
		{
			name: "duplicados colapsan en orden de aparición",
			text: "356938035643809 ... 356938035643809",
			want: []string{"356938035643809"},
		},
		{
			name: "16 dígitos no es imei",
			text: "1234567890123456",
			want: nil,
		},
		{
			name: "14 dígitos no es imei",
			text: "12345678901234",
			want: nil,
		},
		{
			name: "sin dígitos",
			text: "factura sin identificadores",
			want: nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scan.ExtractFromText(tc.text))
		})
	}
}

// El pipeline se detiene en el primer extractor con resultados: si el texto
// trae IMEIs, el nombre del archivo no se consulta.
func TestPipeline_TextoGanaSobreNombreDeArchivo(t *testing.T) {
	p := scan.DefaultPipeline()

	got := p.Extract(scan.Input{
		Text:     "IMEI 123456789012345",
		Filename: "bill_923456789012345.jpg",
	})
	assert.Equal(t, []string{"123456789012345"}, got)
}

func TestPipeline_FallbackAlNombreDeArchivo(t *testing.T) {
	p := scan.DefaultPipeline()

	got := p.Extract(scan.Input{
		Text:     "texto ilegible sin identificadores",
		Filename: "bill_923456789012345.jpg",
	})
	assert.Equal(t, []string{"923456789012345"}, got)
}

func TestPipeline_SinResultados(t *testing.T) {
	p := scan.DefaultPipeline()

	got := p.Extract(scan.Input{Text: "nada", Filename: "foto.jpg"})
	assert.Nil(t, got)
}
