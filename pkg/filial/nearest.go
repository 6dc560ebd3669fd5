package filial

import "fmt"

type bairroFilial struct {
	bairro string
	id     int
}

// Fixed bairro to nearest-filial association. Not persisted and not
// mutable at runtime.
var nearestByBairro = []bairroFilial{
	{"Tijuca", 1},
	{"Ipanema", 2},
	{"Andarai", 1},
	{"Leblon", 2},
	{"Grajau", 1},
	{"Gavea", 2},
	{"Vila Isabel", 1},
}

// Nearest returns the id of the filial closest to the given bairro. The
// match is an exact string comparison against the static table.
func Nearest(bairro string) (int, error) {
	for _, bf := range nearestByBairro {
		if bf.bairro == bairro {
			return bf.id, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrBairroNotFound, bairro)
}
