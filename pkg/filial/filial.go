package filial

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"filialstore/pkg/persistence"
	"filialstore/pkg/types"
)

// Service runs the filial operations against an injected store. Every call
// is a one-shot load-transform-dump; no state is kept between calls, the
// store is the single source of truth.
type Service struct {
	store persistence.Store
}

func NewService(store persistence.Store) *Service {
	return &Service{store: store}
}

// Add appends a new filial record. The id must not already be in use.
func (s *Service) Add(id int, nome, bairro string) error {
	filiais, err := s.store.LoadFiliais()
	if err != nil {
		return err
	}

	if _, ok := types.GetFilial(filiais, id); ok {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}

	filiais = append(filiais, types.Filial{ID: id, Nome: nome, Bairro: bairro})

	if err := s.store.DumpFiliais(filiais); err != nil {
		return err
	}

	logrus.Debugf("added filial %d (%s, %s)", id, nome, bairro)
	return nil
}

// Remove deletes the first record with the given id.
func (s *Service) Remove(id int) error {
	filiais, err := s.store.LoadFiliais()
	if err != nil {
		return err
	}

	filiais, ok := types.RemoveFilial(filiais, id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownID, id)
	}

	if err := s.store.DumpFiliais(filiais); err != nil {
		return err
	}

	logrus.Debugf("removed filial %d", id)
	return nil
}

// Get returns the record with the given id, reduced to nome and bairro.
func (s *Service) Get(id int) (types.FilialInfo, error) {
	filiais, err := s.store.LoadFiliais()
	if err != nil {
		return types.FilialInfo{}, err
	}

	f, ok := types.GetFilial(filiais, id)
	if !ok {
		return types.FilialInfo{}, fmt.Errorf("%w: %d", ErrFilialNotFound, id)
	}

	return f.Info(), nil
}

// List returns every stored record in storage order, each reduced to nome
// and bairro.
func (s *Service) List() ([]types.FilialInfo, error) {
	filiais, err := s.store.LoadFiliais()
	if err != nil {
		return nil, err
	}

	infos := make([]types.FilialInfo, 0, len(filiais))
	for _, f := range filiais {
		infos = append(infos, f.Info())
	}

	return infos, nil
}
