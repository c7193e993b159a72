package models

import "time"

// Pais representa un país del catálogo. El ID es el código de moneda de 3
// letras estilo ISO-4217 ("MXN", "USD") y es la llave a la que apuntan todos
// los precios. ISO2 es el código ISO-3166 alpha-2 opcional, único cuando
// existe, y se usa solamente para búsquedas externas.
type Pais struct {
	ID        string    `json:"id" db:"id"`
	Nombre    string    `json:"nombre" db:"nombre"`
	Moneda    string    `json:"moneda" db:"moneda"`
	MonedaTic string    `json:"moneda_tic" db:"moneda_tic"`
	Simbolo   string    `json:"simbolo" db:"simbolo"`
	Side      bool      `json:"side" db:"side"`
	Decs      int       `json:"decs" db:"decs"`
	ISO2      *string   `json:"iso2,omitempty" db:"iso2"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
