// seed_destinations genera un script SQL para poblar el catálogo inicial de
// destinos a partir de un CSV exportado del sistema anterior (codificado en
// ISO-8859-1, separado por punto y coma: nombre;ubicacion;descripcion).
//
// Uso: go run ./cmd/seed_destinations [ruta/destinos.csv]
// Por defecto busca destinos.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_destinations.sql
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type destino struct {
	nombre      string
	ubicacion   string
	descripcion string
}

func main() {
	csvPath := "destinos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	destinos, err := readDestinos(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_destinations.sql")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	writeSeedSQL(out, destinos)
	fmt.Printf("Generado %s: %d destinos\n", outPath, len(destinos))
}

// readDestinos decodifica el CSV ISO-8859-1 (tildes y eñes) a UTF-8 y filtra
// filas incompletas y nombres repetidos.
func readDestinos(src io.Reader) ([]destino, error) {
	r := csv.NewReader(transform.NewReader(src, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var destinos []destino
	for i, rec := range records {
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "nombre") {
			continue // cabecera
		}
		if len(rec) < 2 {
			continue
		}
		d := destino{
			nombre:    strings.TrimSpace(rec[0]),
			ubicacion: strings.TrimSpace(rec[1]),
		}
		if len(rec) > 2 {
			d.descripcion = strings.TrimSpace(rec[2])
		}
		if d.nombre == "" || d.ubicacion == "" || seen[strings.ToLower(d.nombre)] {
			continue
		}
		seen[strings.ToLower(d.nombre)] = true
		destinos = append(destinos, d)
	}

	sort.Slice(destinos, func(i, j int) bool { return destinos[i].nombre < destinos[j].nombre })
	return destinos, nil
}

// writeSeedSQL emite INSERTs planos: el script es de carga inicial sobre una
// tabla vacía, así que no necesita cláusulas de conflicto.
func writeSeedSQL(out io.Writer, destinos []destino) {
	fmt.Fprintf(out, "-- Catálogo inicial de destinos\n")
	fmt.Fprintf(out, "-- Generado desde destinos.csv (export del sistema anterior)\n\n")
	for _, d := range destinos {
		fmt.Fprintf(out, "INSERT INTO destinations (name, location, description, is_active, is_featured)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', true, false);\n",
			escapeSQL(d.nombre), escapeSQL(d.ubicacion), escapeSQL(d.descripcion))
	}
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
