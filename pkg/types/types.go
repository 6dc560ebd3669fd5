package types

// Filial is a single branch record as stored on disk. The JSON keys are the
// wire format of the filiais file and must not change.
type Filial struct {
	ID     int    `json:"id"`
	Nome   string `json:"nome"`
	Bairro string `json:"bairro"`
}

// FilialInfo is a Filial as returned to callers: the id is the lookup key
// and is dropped from the result.
type FilialInfo struct {
	Nome   string `json:"nome"`
	Bairro string `json:"bairro"`
}

func (f Filial) Info() FilialInfo {
	return FilialInfo{Nome: f.Nome, Bairro: f.Bairro}
}

type StorageConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type Config struct {
	Storage StorageConfig `yaml:"storage"`
}

// GetFilial returns the first record with the given id.
func GetFilial(filiais []Filial, id int) (Filial, bool) {
	for _, f := range filiais {
		if f.ID == id {
			return f, true
		}
	}

	return Filial{}, false
}

// RemoveFilial removes the first record with the given id, preserving the
// order of the rest.
func RemoveFilial(filiais []Filial, id int) ([]Filial, bool) {
	for i := range filiais {
		if filiais[i].ID == id {
			return append(filiais[:i], filiais[i+1:]...), true
		}
	}

	return filiais, false
}
