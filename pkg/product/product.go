package product

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Product is one catalog entry.
type Product struct {
	Name       string  // Display name, e.g. "Laptop"
	Price      float64 // Unit price in the catalog currency
	Popularity int     // Relative popularity score, higher is more popular
}

// Hash generates a stable identifier for the product based on its Name and Price.
func (p Product) Hash() string {
	data := fmt.Sprintf("%s|%.2f", p.Name, p.Price)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// String returns the product as a markdown catalog list item, the same form
// the catalog parser reads.
func (p Product) String() string {
	return fmt.Sprintf("- %s $%.2f ★%d", p.Name, p.Price, p.Popularity)
}
