// seed_products genera la migración SQL de seed de productos a partir del
// export CSV del ERP (ISO-8859-1, separado por comas).
//
// Columnas esperadas (con fila de cabecera):
//
//	company,category,brand,brand_form,barcode_mrp,barcode,upc,mrp,slp,rlp,count_of_mrp
//
// Uso: go run ./cmd/seed_products [ruta/products.csv]
// Por defecto busca products.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/000002_seed_products.up.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const outPath = "internal/infrastructure/postgres/migrations/000002_seed_products.up.sql"

func main() {
	csvPath := "products.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los exports del ERP llegan en ISO-8859-1, no UTF-8.
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.FieldsPerRecord = 11
	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "CSV sin filas de datos")
		os.Exit(1)
	}

	var b strings.Builder
	b.WriteString("-- Seed demo: catálogo reducido de bodega (regenerable con cmd/seed_products).\n")
	b.WriteString("INSERT INTO products (company, category, brand, brand_form, barcode_mrp, barcode, upc, mrp, slp, rlp, count_of_mrp, scan_products) VALUES\n")

	rows := records[1:] // saltar cabecera
	for i, rec := range rows {
		count, err := strconv.Atoi(strings.TrimSpace(rec[10]))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Fila %d: count_of_mrp inválido %q\n", i+2, rec[10])
			os.Exit(1)
		}
		b.WriteString(fmt.Sprintf("(%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %d, 0)",
			quote(rec[0]), quote(rec[1]), quote(rec[2]), quote(rec[3]),
			quote(rec[4]), quote(rec[5]), quote(rec[6]),
			num(rec[7]), num(rec[8]), num(rec[9]), count,
		))
		if i < len(rows)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString(";\n")
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: %d productos -> %s\n", len(rows), outPath)
}

// quote literal SQL con comillas simples escapadas.
func quote(s string) string {
	return "'" + strings.ReplaceAll(strings.TrimSpace(s), "'", "''") + "'"
}

// num valida el decimal y lo deja como literal numérico.
func num(s string) string {
	s = strings.TrimSpace(s)
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return "0"
	}
	return s
}
