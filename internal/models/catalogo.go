package models

import "time"

// TipoProducto representa una familia de productos ("imagen") con su unidad
// base.
type TipoProducto struct {
	ID         int       `json:"id" db:"id"`
	Nombre     string    `json:"nombre" db:"nombre"`
	UnidadBase string    `json:"unidad_base" db:"unidad_base"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Conjunto representa un sitio o storefront ("splashmix") que agrupa
// productos a través de pertenencias.
type Conjunto struct {
	ID        int       `json:"id" db:"id"`
	Sitio     string    `json:"sitio" db:"sitio"`
	Nombre    string    `json:"nombre" db:"nombre"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Producto representa un producto vendible. Cantidad es el número de unidades
// que otorga y siempre es positivo; PrecioBase está en la unidad mínima de la
// moneda.
type Producto struct {
	ID             int       `json:"id" db:"id"`
	Nombre         string    `json:"nombre" db:"nombre"`
	Cantidad       int       `json:"cantidad" db:"cantidad"`
	IDTipoProducto int       `json:"id_tipo_producto" db:"id_tipo_producto"`
	PrecioBase     int       `json:"precio_base" db:"precio_base"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// ProductoDetallado es un producto enriquecido con el nombre de su tipo. El
// campo es nullable porque el join es LEFT.
type ProductoDetallado struct {
	Producto
	TipoProductoNombre *string `json:"tipo_producto_nombre"`
}

// Pertenencia liga un producto a un conjunto ("este producto se ofrece en
// este sitio"). El par (conjunto, producto) no debe duplicarse; se valida al
// insertar, no con una restricción única.
type Pertenencia struct {
	ID         int       `json:"id" db:"id"`
	IDConjunto int       `json:"id_conjunto" db:"id_conjunto"`
	IDProducto int       `json:"id_producto" db:"id_producto"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// PertenenciaDetallada es una pertenencia enriquecida con datos del conjunto
// y del producto. Los campos son nullable porque los joins son LEFT.
type PertenenciaDetallada struct {
	Pertenencia
	ConjuntoNombre   *string `json:"conjunto_nombre"`
	ConjuntoSitio    *string `json:"conjunto_sitio"`
	ProductoNombre   *string `json:"producto_nombre"`
	ProductoCantidad *int    `json:"producto_cantidad"`
}

// Texto guarda los nombres de unidad singular/plural de un tipo de producto
// para un país. En uso normal hay a lo más una fila por (tipo, país).
type Texto struct {
	ID             int       `json:"id" db:"id"`
	IDTipoProducto int       `json:"id_tipo_producto" db:"id_tipo_producto"`
	IDPais         string    `json:"id_pais" db:"id_pais"`
	Unidad         string    `json:"unidad" db:"unidad"`
	Unidades       string    `json:"unidades" db:"unidades"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// TextoDetallado es un texto enriquecido con los nombres del tipo de producto
// y del país.
type TextoDetallado struct {
	Texto
	TipoProductoNombre *string `json:"tipo_producto_nombre"`
	PaisNombre         *string `json:"pais_nombre"`
}
