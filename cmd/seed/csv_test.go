package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestParseCSV_UTF8(t *testing.T) {
	in := "nombre,codigo,precio,stock,stock_minimo,categoria,unidad\n" +
		"Ácido Nítrico,QUI-010,41000,12,5,Químicos,L\n" +
		"Espátula,EQU-010,9000,,,Equipos,Unidad\n" +
		",,,,,,\n"

	out, err := parseCSV(strings.NewReader(in), false)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "Ácido Nítrico", out[0].Name)
	assert.Equal(t, "QUI-010", out[0].Code)
	assert.Equal(t, "41000", out[0].Price.String())
	require.NotNil(t, out[0].Stock)
	assert.Equal(t, 12, *out[0].Stock)
	assert.Equal(t, 5, *out[0].MinStock)

	assert.Nil(t, out[1].Stock, "vacío usa el default del caso de uso")
	assert.Nil(t, out[1].MinStock)
}

func TestParseCSV_Latin1(t *testing.T) {
	utf8 := "name,code,price,category\nPeróxido,QUI-011,28000,Químicos\n"
	encoded, err := charmap.ISO8859_1.NewEncoder().String(utf8)
	require.NoError(t, err)

	out, err := parseCSV(bytes.NewReader([]byte(encoded)), true)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Peróxido", out[0].Name)
	assert.Equal(t, "Químicos", out[0].Category)
}

func TestParseCSV_Errores(t *testing.T) {
	_, err := parseCSV(strings.NewReader("nombre,precio\nX,1\n"), false)
	assert.ErrorContains(t, err, "code")

	_, err = parseCSV(strings.NewReader("nombre,codigo,precio\nX,X-1,caro\n"), false)
	assert.ErrorContains(t, err, "línea 2")

	_, err = parseCSV(strings.NewReader("nombre,codigo,precio,stock\nX,X-1,10,muchos\n"), false)
	assert.ErrorContains(t, err, "stock")
}

func TestSampleCatalog(t *testing.T) {
	codes := map[string]bool{}
	for _, p := range sampleCatalog() {
		assert.False(t, codes[p.Code], "código repetido %s", p.Code)
		codes[p.Code] = true
		require.NotNil(t, p.Price)
		assert.True(t, p.Price.IsPositive())
	}
	assert.Len(t, codes, 15)
}
