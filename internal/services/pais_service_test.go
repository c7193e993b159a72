package services

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaisRepo struct {
	paises    map[string]models.Pais
	porISO2   map[string]models.Pais
	listErr   error
	lastPage  models.PageParams
	countHits int
	iso2Hits  int
}

func (f *fakePaisRepo) Count() (int, error) {
	f.countHits++
	return len(f.paises), nil
}

func (f *fakePaisRepo) List(page models.PageParams) ([]models.Pais, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.lastPage = page
	out := make([]models.Pais, 0, len(f.paises))
	for _, p := range f.paises {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePaisRepo) GetByID(id string) (*models.Pais, error) {
	p, ok := f.paises[id]
	if !ok {
		return nil, models.NewNotFoundError("Pais", id)
	}
	return &p, nil
}

func (f *fakePaisRepo) GetByISO2(code string) (*models.Pais, error) {
	f.iso2Hits++
	p, ok := f.porISO2[code]
	if !ok {
		return nil, models.NewNotFoundError("Pais", code)
	}
	return &p, nil
}

func newPaisServiceConRepo(repo PaisRepository) *PaisService {
	return &PaisService{repo: repo, logger: logrus.New()}
}

func mexico() models.Pais {
	iso2 := "MX"
	return models.Pais{ID: "MXN", Nombre: "México", Moneda: "MXN", ISO2: &iso2}
}

func TestResolveCodigoISO2Existente(t *testing.T) {
	repo := &fakePaisRepo{porISO2: map[string]models.Pais{"MX": mexico()}}
	s := newPaisServiceConRepo(repo)

	codigo, err := s.ResolveCodigo("mx")
	require.NoError(t, err)
	assert.Equal(t, "MXN", codigo)
}

func TestResolveCodigoISO2Inexistente(t *testing.T) {
	repo := &fakePaisRepo{porISO2: map[string]models.Pais{}}
	s := newPaisServiceConRepo(repo)

	_, err := s.ResolveCodigo("ZZ")
	var nf *models.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestResolveCodigoLargoDistintoPasaSinValidar(t *testing.T) {
	repo := &fakePaisRepo{}
	s := newPaisServiceConRepo(repo)

	for _, token := range []string{"MXN", "xyz", "a", "ABCDE"} {
		codigo, err := s.ResolveCodigo(token)
		require.NoError(t, err)
		assert.NotContains(t, codigo, " ")
	}

	codigo, err := s.ResolveCodigo("  mxn  ")
	require.NoError(t, err)
	assert.Equal(t, "MXN", codigo)
}

func TestGetByCodigoAceptaAmbasLlaves(t *testing.T) {
	mx := mexico()
	repo := &fakePaisRepo{
		paises:  map[string]models.Pais{"MXN": mx},
		porISO2: map[string]models.Pais{"MX": mx},
	}
	s := newPaisServiceConRepo(repo)

	porInterna, err := s.GetByCodigo("MXN")
	require.NoError(t, err)
	porISO2, err := s.GetByCodigo("MX")
	require.NoError(t, err)

	assert.Equal(t, porInterna.ID, porISO2.ID)
}

func TestPaisListValidaPaginaAntesDeConsultar(t *testing.T) {
	repo := &fakePaisRepo{}
	s := newPaisServiceConRepo(repo)

	_, _, err := s.List(models.PageParams{Skip: -1, Limit: 10})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, repo.countHits)
}

func TestPaisListRetornaTotal(t *testing.T) {
	repo := &fakePaisRepo{paises: map[string]models.Pais{"MXN": mexico()}}
	s := newPaisServiceConRepo(repo)

	paises, total, err := s.List(models.DefaultPageParams())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, paises, 1)
}
