// Package scan extrae candidatos de IMEI (15 dígitos) de texto libre.
//
// El escáner de facturas es una cadena ordenada de extractores independientes;
// cada uno produce cero o más candidatos y la cadena se detiene en el primer
// resultado no vacío. Los motores de OCR quedan fuera: el caller entrega el
// texto ya extraído.
package scan

import "regexp"

// imeiRe captura exactamente 15 dígitos no pegados a otros dígitos.
var imeiRe = regexp.MustCompile(`(?:\D|^)(\d{15})(?:\D|$)`)

// Extractor produce candidatos de IMEI a partir de una entrada del escáner.
type Extractor interface {
	Extract(input Input) []string
}

// Input entrada del escáner: texto extraído por el caller y nombre del archivo.
type Input struct {
	Text     string
	Filename string
}

// ExtractFromText devuelve los IMEIs únicos encontrados en el texto,
// en orden de primera aparición.
func ExtractFromText(text string) []string {
	matches := imeiRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		imei := m[1]
		if _, ok := seen[imei]; ok {
			continue
		}
		seen[imei] = struct{}{}
		out = append(out, imei)
	}
	return out
}

// TextExtractor extrae IMEIs del texto entregado por el caller.
type TextExtractor struct{}

// Extract implementa Extractor.
func (TextExtractor) Extract(in Input) []string { return ExtractFromText(in.Text) }

// FilenameExtractor extrae IMEIs del nombre del archivo subido
// (último recurso cuando el contenido no dio resultados).
type FilenameExtractor struct{}

// Extract implementa Extractor.
func (FilenameExtractor) Extract(in Input) []string { return ExtractFromText(in.Filename) }

// Pipeline cadena ordenada de extractores; se detiene en el primer resultado
// no vacío.
type Pipeline []Extractor

// DefaultPipeline texto primero, nombre de archivo como fallback.
func DefaultPipeline() Pipeline {
	return Pipeline{TextExtractor{}, FilenameExtractor{}}
}

// Extract recorre la cadena y devuelve el primer conjunto no vacío de candidatos.
func (p Pipeline) Extract(in Input) []string {
	for _, e := range p {
		if found := e.Extract(in); len(found) > 0 {
			return found
		}
	}
	return nil
}
