package shop

import "time"

// Kind agrupa los productos del catálogo.
// @Enum food, toy, medicine, accessory
type Kind string

const (
	KindFood      Kind = "food"
	KindToy       Kind = "toy"
	KindMedicine  Kind = "medicine"
	KindAccessory Kind = "accessory"
)

// Item es un producto del catálogo. El precio es en la moneda del juego.
type Item struct {
	ID    string
	Name  string
	Kind  Kind
	Price int

	CreatedAt time.Time
}
