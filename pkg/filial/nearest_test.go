package filial

import (
	"errors"
	"testing"
)

func TestNearest(t *testing.T) {
	cases := []struct {
		bairro string
		id     int
	}{
		{"Tijuca", 1},
		{"Ipanema", 2},
		{"Andarai", 1},
		{"Leblon", 2},
		{"Grajau", 1},
		{"Gavea", 2},
		{"Vila Isabel", 1},
	}

	for _, c := range cases {
		id, err := Nearest(c.bairro)
		if err != nil {
			t.Errorf("Nearest(%q): %v", c.bairro, err)
			continue
		}
		if id != c.id {
			t.Errorf("Nearest(%q): expected %d, got %d", c.bairro, c.id, id)
		}
	}
}

func TestNearestUnknownBairro(t *testing.T) {
	_, err := Nearest("Copacabana")
	if !errors.Is(err, ErrBairroNotFound) {
		t.Fatalf("expected ErrBairroNotFound, got %v", err)
	}
	if code := StatusCode(err); code != StatusBairroNotFound {
		t.Errorf("expected status %d, got %d", StatusBairroNotFound, code)
	}
}

func TestNearestMatchIsExact(t *testing.T) {
	for _, bairro := range []string{"tijuca", "Tijuca ", "Vila"} {
		if _, err := Nearest(bairro); !errors.Is(err, ErrBairroNotFound) {
			t.Errorf("Nearest(%q): expected ErrBairroNotFound, got %v", bairro, err)
		}
	}
}
