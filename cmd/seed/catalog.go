package main

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/quimicos-inventario/internal/application/dto"
)

func item(name, desc, code string, price int64, stock, minStock int, category, unit, supplier string) dto.CreateProductRequest {
	p := decimal.NewFromInt(price)
	return dto.CreateProductRequest{
		Name: name, Description: desc, Code: code, Price: &p,
		Stock: &stock, MinStock: &minStock,
		Category: category, Unit: unit, Supplier: supplier,
	}
}

// sampleCatalog catálogo de prueba: mezcla stock normal, bajo y agotado.
func sampleCatalog() []dto.CreateProductRequest {
	return []dto.CreateProductRequest{
		item("Ácido Sulfúrico 98%", "Ácido sulfúrico concentrado de alta pureza para uso industrial", "QUI-001", 45000, 150, 30, "Químicos", "L", "Químicos Industriales S.A."),
		item("Hidróxido de Sodio", "Soda cáustica en escamas, grado industrial", "QUI-002", 25000, 200, 50, "Químicos", "Kg", "Distribuidora Química del Sur"),
		item("Ácido Clorhídrico 37%", "Ácido clorhídrico concentrado para limpieza y tratamiento", "QUI-003", 32000, 8, 25, "Químicos", "L", "Químicos Industriales S.A."),
		item("Acetona Industrial", "Solvente de alta pureza para limpieza y dilución", "SOL-001", 18000, 120, 40, "Solventes", "L", "Solventes y Químicos Ltda."),
		item("Alcohol Isopropílico 99%", "Alcohol isopropílico de alta pureza", "SOL-002", 22000, 5, 30, "Solventes", "L", "Solventes y Químicos Ltda."),
		item("Thinner Industrial", "Diluyente para pinturas y recubrimientos", "SOL-003", 15000, 180, 50, "Solventes", "Galón", "Pinturas del Valle"),
		item("Guantes de Nitrilo Caja x100", "Guantes desechables de nitrilo talla M", "INS-001", 35000, 0, 20, "Insumos", "Caja", "Seguridad Industrial S.A."),
		item("Mascarilla Respirador N95", "Mascarilla de protección respiratoria N95", "INS-002", 8500, 250, 100, "Insumos", "Unidad", "Seguridad Industrial S.A."),
		item("Gafas de Seguridad", "Gafas de protección transparentes antiempañantes", "INS-003", 12000, 75, 30, "Insumos", "Unidad", "Seguridad Industrial S.A."),
		item("Probeta Graduada 100ml", "Probeta de vidrio graduada de 100ml", "EQU-001", 28000, 15, 10, "Equipos", "Unidad", "Laboratorios y Equipos S.A."),
		item("Pipeta Volumétrica 25ml", "Pipeta volumétrica de vidrio clase A", "EQU-002", 35000, 20, 8, "Equipos", "Unidad", "Laboratorios y Equipos S.A."),
		item("Balanza Analítica Digital", "Balanza de precisión 0.001g capacidad 200g", "EQU-003", 1250000, 3, 2, "Equipos", "Unidad", "Laboratorios y Equipos S.A."),
		item("Peróxido de Hidrógeno 30%", "Agua oxigenada concentrada para uso industrial", "QUI-004", 28000, 90, 25, "Químicos", "L", "Químicos Industriales S.A."),
		item("Etanol 96%", "Alcohol etílico de alta pureza", "SOL-004", 24000, 110, 40, "Solventes", "L", "Solventes y Químicos Ltda."),
		item("Overol Tyvek Desechable", "Overol de protección desechable Tyvek", "INS-004", 45000, 3, 15, "Insumos", "Unidad", "Seguridad Industrial S.A."),
	}
}
