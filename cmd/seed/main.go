// seed puebla la base de datos con datos de demostración: cuatro productos,
// cuatro ubicaciones y una tanda de movimientos (recepciones externas, traslados
// entre bodegas y ventas) repartidos en los últimos días.
//
// Uso: go run ./cmd/seed
// Requiere las mismas variables de entorno de conexión que cmd/api.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)

	products := []*entity.Product{
		{ID: "PROD001", Name: "Laptop Dell XPS 13", Description: "Ultrabook 13 pulgadas, 16GB RAM, 512GB SSD"},
		{ID: "PROD002", Name: "Laptop HP Pavilion", Description: "Portátil 15 pulgadas, 8GB RAM, 256GB SSD"},
		{ID: "PROD003", Name: "Smartphone Samsung Galaxy S24", Description: "128GB, pantalla 6.2 pulgadas"},
		{ID: "PROD004", Name: "Smartphone iPhone 15", Description: "128GB, doble cámara"},
	}
	for _, p := range products {
		if err := productRepo.Create(p); err != nil {
			fmt.Fprintf(os.Stderr, "Crear producto %s: %v\n", p.ID, err)
			os.Exit(1)
		}
		fmt.Printf("Producto %s creado\n", p.ID)
	}

	locations := []*entity.Location{
		{ID: "WH001", Name: "Bodega Central", Address: "Calle 13 #45-20, Bogotá"},
		{ID: "WH002", Name: "Bodega Norte", Address: "Autopista Norte Km 21, Chía"},
		{ID: "STORE01", Name: "Tienda Centro", Address: "Carrera 7 #22-15, Bogotá"},
		{ID: "STORE02", Name: "Tienda Unicentro", Address: "CC Unicentro Local 2-45, Bogotá"},
	}
	for _, l := range locations {
		if err := locationRepo.Create(l); err != nil {
			fmt.Fprintf(os.Stderr, "Crear ubicación %s: %v\n", l.ID, err)
			os.Exit(1)
		}
		fmt.Printf("Ubicación %s creada\n", l.ID)
	}

	now := time.Now().UTC()
	day := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	// from/to vacíos representan la frontera externa (proveedor o cliente).
	movements := []*entity.Movement{
		// Recepciones de proveedor a la bodega central
		{Timestamp: day(10), ToLocation: "WH001", ProductID: "PROD001", Qty: 50, Notes: "Recepción inicial de proveedor"},
		{Timestamp: day(10), ToLocation: "WH001", ProductID: "PROD002", Qty: 80, Notes: "Recepción inicial de proveedor"},
		{Timestamp: day(9), ToLocation: "WH001", ProductID: "PROD003", Qty: 120, Notes: "Recepción inicial de proveedor"},
		{Timestamp: day(9), ToLocation: "WH001", ProductID: "PROD004", Qty: 60, Notes: "Recepción inicial de proveedor"},
		{Timestamp: day(6), ToLocation: "WH002", ProductID: "PROD001", Qty: 25, Notes: "Recepción directa bodega norte"},

		// Traslados de bodega a tiendas
		{Timestamp: day(7), FromLocation: "WH001", ToLocation: "STORE01", ProductID: "PROD001", Qty: 15, Notes: "Reposición tienda centro"},
		{Timestamp: day(7), FromLocation: "WH001", ToLocation: "STORE01", ProductID: "PROD003", Qty: 40, Notes: "Reposición tienda centro"},
		{Timestamp: day(6), FromLocation: "WH001", ToLocation: "STORE02", ProductID: "PROD002", Qty: 30, Notes: "Reposición tienda Unicentro"},
		{Timestamp: day(6), FromLocation: "WH001", ToLocation: "STORE02", ProductID: "PROD004", Qty: 20, Notes: "Reposición tienda Unicentro"},
		{Timestamp: day(5), FromLocation: "WH002", ToLocation: "STORE01", ProductID: "PROD001", Qty: 10, Notes: "Apoyo desde bodega norte"},
		{Timestamp: day(4), FromLocation: "WH001", ToLocation: "STORE01", ProductID: "PROD004", Qty: 12, Notes: "Segunda reposición"},
		{Timestamp: day(3), FromLocation: "WH001", ToLocation: "STORE02", ProductID: "PROD003", Qty: 35, Notes: "Segunda reposición"},

		// Ventas (salida hacia la frontera externa)
		{Timestamp: day(5), FromLocation: "STORE01", ProductID: "PROD001", Qty: 8, Notes: "Ventas de la semana"},
		{Timestamp: day(4), FromLocation: "STORE01", ProductID: "PROD003", Qty: 22, Notes: "Ventas de la semana"},
		{Timestamp: day(3), FromLocation: "STORE02", ProductID: "PROD002", Qty: 11, Notes: "Ventas de la semana"},
		{Timestamp: day(2), FromLocation: "STORE02", ProductID: "PROD004", Qty: 7, Notes: "Ventas de la semana"},
		{Timestamp: day(2), FromLocation: "STORE01", ProductID: "PROD004", Qty: 5, Notes: "Ventas fin de semana"},
		{Timestamp: day(1), FromLocation: "STORE02", ProductID: "PROD003", Qty: 14, Notes: "Ventas fin de semana"},
		{Timestamp: day(1), FromLocation: "STORE01", ProductID: "PROD001", Qty: 4, Notes: "Ventas fin de semana"},
		{Timestamp: day(0), FromLocation: "WH001", ProductID: "PROD002", Qty: 3, Notes: "Venta mayorista directa"},
	}
	for _, m := range movements {
		m.ID = uuid.New().String()
		if err := movementRepo.Create(m); err != nil {
			fmt.Fprintf(os.Stderr, "Crear movimiento %s: %v\n", m.ID, err)
			os.Exit(1)
		}
	}
	fmt.Printf("%d movimientos creados\n", len(movements))

	fmt.Println("Datos de demostración listos")
}
