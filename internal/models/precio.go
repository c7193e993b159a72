package models

import (
	"fmt"
	"strings"
	"time"
)

// Ambientes válidos para un precio. Las filas legadas tienen ambiente NULL y
// solo aparecen cuando no se filtra por ambiente.
const (
	AmbienteSandbox    = "sandbox"
	AmbienteProduction = "production"
)

// StatusActivo es el status normal de un precio publicado.
const StatusActivo = "activo"

// Precio representa un precio localizado de una pertenencia. PriceID es el
// identificador del proveedor de pagos; RatioImagen es el precio unitario
// derivado (CantidadPrecio / Producto.Cantidad, truncado).
type Precio struct {
	ID             int       `json:"id" db:"id"`
	Nombre         string    `json:"nombre" db:"nombre"`
	IDPertenencia  int       `json:"id_pertenencia" db:"id_pertenencia"`
	IDPais         string    `json:"id_pais" db:"id_pais"`
	PriceID        string    `json:"price_id" db:"price_id"`
	CantidadPrecio int       `json:"cantidad_precio" db:"cantidad_precio"`
	RatioImagen    int       `json:"ratio_imagen" db:"ratio_imagen"`
	Status         string    `json:"status" db:"status"`
	Ambiente       *string   `json:"ambiente" db:"ambiente"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// PrecioDetallado es un precio aplanado con el grafo de joins completo:
// pertenencia → producto → tipo_producto, pertenencia → conjunto y país.
// Todos los campos de enriquecimiento son nullable: un precio con una
// referencia colgante se devuelve igual, con los campos en null, nunca se
// omite.
type PrecioDetallado struct {
	Precio
	PertenenciaID      *int    `json:"pertenencia_id"`
	ProductoNombre     *string `json:"producto_nombre"`
	ProductoCantidad   *int    `json:"producto_cantidad"`
	TipoProductoNombre *string `json:"tipo_producto_nombre"`
	ConjuntoNombre     *string `json:"conjunto_nombre"`
	PaisNombre         *string `json:"pais_nombre"`
	PaisMoneda         *string `json:"pais_moneda"`
	PaisSimbolo        *string `json:"pais_simbolo"`
	PaisSide           *bool   `json:"pais_side"`
	PaisDecs           *int    `json:"pais_decs"`
}

// BuildNombrePrecio construye el nombre derivado de un precio:
// pais-sitio-cantidad-tipo-ambiente, con el país en minúsculas.
// Ejemplo: "mxn-splashmix-10-imagen-sandbox".
func BuildNombrePrecio(idPais, sitio string, cantidad int, tipoProducto, ambiente string) string {
	return fmt.Sprintf("%s-%s-%d-%s-%s", strings.ToLower(idPais), sitio, cantidad, tipoProducto, ambiente)
}

// RatioImagen calcula el precio unitario como división entera (truncada hacia
// cero) de cantidadPrecio entre cantidad. Una cantidad no positiva es una
// violación de precondición: por construcción todo producto tiene cantidad
// positiva.
func RatioImagen(cantidadPrecio, cantidad int) (int, error) {
	if cantidad <= 0 {
		return 0, fmt.Errorf("cantidad de producto debe ser positiva, recibida %d", cantidad)
	}
	return cantidadPrecio / cantidad, nil
}
