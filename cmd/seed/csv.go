package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/quimicos-inventario/internal/application/dto"
)

// Columnas aceptadas (en español o inglés). nombre, codigo y precio son obligatorias.
var columnAliases = map[string]string{
	"nombre": "name", "name": "name",
	"descripcion": "description", "descripción": "description", "description": "description",
	"codigo": "code", "código": "code", "code": "code",
	"precio": "price", "price": "price",
	"stock":        "stock",
	"stock_minimo": "min_stock", "stockminimo": "min_stock", "min_stock": "min_stock",
	"categoria": "category", "categoría": "category", "category": "category",
	"unidad": "unit", "unidadmedida": "unit", "unit": "unit",
	"proveedor": "supplier", "supplier": "supplier",
}

// parseCSV lee productos desde CSV con encabezado. latin1 decodifica ISO-8859-1
// (exportaciones de Excel en Windows); si no, se asume UTF-8.
func parseCSV(r io.Reader, latin1 bool) ([]dto.CreateProductRequest, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	cols := map[string]int{}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if name, ok := columnAliases[key]; ok {
			cols[name] = i
		}
	}
	for _, required := range []string{"name", "code", "price"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("falta la columna %q", required)
		}
	}

	var out []dto.CreateProductRequest
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		get := func(col string) string {
			i, ok := cols[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		if get("name") == "" && get("code") == "" {
			continue
		}

		in := dto.CreateProductRequest{
			Name:        get("name"),
			Description: get("description"),
			Code:        get("code"),
			Category:    get("category"),
			Unit:        get("unit"),
			Supplier:    get("supplier"),
		}
		price, err := decimal.NewFromString(get("price"))
		if err != nil {
			return nil, fmt.Errorf("línea %d: precio inválido %q", line, get("price"))
		}
		in.Price = &price
		if in.Stock, err = optionalInt(get("stock")); err != nil {
			return nil, fmt.Errorf("línea %d: stock: %w", line, err)
		}
		if in.MinStock, err = optionalInt(get("min_stock")); err != nil {
			return nil, fmt.Errorf("línea %d: stock mínimo: %w", line, err)
		}
		out = append(out, in)
	}
	return out, nil
}

func optionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
