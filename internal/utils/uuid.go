package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for catalog records. UUIDv7 is
// preferred because its timestamp prefix keeps records roughly ordered by
// creation time even when sorted by ID.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 when
// the v7 constructor cannot read the clock.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
