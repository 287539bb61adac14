// seed_rates genera el script SQL que vuelca la tabla de tarifas por defecto en las tablas
// tax_rates e income_tax_brackets, como punto de partida para ajustarlas sin recompilar.
//
// Uso: go run ./cmd/seed_rates [ruta/salida.sql]
// Por defecto escribe tax_rates_seed.sql en el directorio actual; "-" escribe a stdout.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jhoicas/taxhelper-api/internal/domain/tax"
)

func main() {
	outPath := "tax_rates_seed.sql"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	var w io.Writer = os.Stdout
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	table := tax.DefaultRateTable()
	if err := table.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Tabla por defecto inválida: %v\n", err)
		os.Exit(1)
	}
	if _, err := io.WriteString(w, renderSQL(table)); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	if outPath != "-" {
		fmt.Printf("Escrito %s\n", outPath)
	}
}

// renderSQL script idempotente: reemplaza tarifas y tramos por los de t.
func renderSQL(t tax.RateTable) string {
	entries := t.Entries()
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("-- Generado por cmd/seed_rates. Tarifas como fracción (0.1 = 10%).\n")
	sb.WriteString("BEGIN;\n\n")
	sb.WriteString("INSERT INTO tax_rates (key, rate) VALUES\n")
	for i, k := range keys {
		sep := ","
		if i == len(keys)-1 {
			sep = ""
		}
		sb.WriteString(fmt.Sprintf("    ('%s', %s)%s\n", escapeSQL(k), entries[k].String(), sep))
	}
	sb.WriteString("ON CONFLICT (key) DO UPDATE SET rate = EXCLUDED.rate, updated_at = NOW();\n\n")

	sb.WriteString("DELETE FROM income_tax_brackets;\n")
	sb.WriteString("INSERT INTO income_tax_brackets (position, max_income, rate) VALUES\n")
	for i, b := range t.IncomeBrackets {
		upper := "NULL"
		if b.Max != tax.Unbounded {
			upper = fmt.Sprintf("%d", b.Max)
		}
		sep := ","
		if i == len(t.IncomeBrackets)-1 {
			sep = ";"
		}
		sb.WriteString(fmt.Sprintf("    (%d, %s, %s)%s\n", i+1, upper, b.Rate.String(), sep))
	}
	sb.WriteString("\nCOMMIT;\n")
	return sb.String()
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
