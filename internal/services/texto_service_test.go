package services

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/database"
	"github.com/splashmix/catalog-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTextoRepo struct {
	textos   []models.TextoDetallado
	lastOpts database.TextoFilter
}

func (f *fakeTextoRepo) filtrados(opts database.TextoFilter) []models.TextoDetallado {
	var out []models.TextoDetallado
	for _, t := range f.textos {
		if opts.IDPais != nil && t.IDPais != *opts.IDPais {
			continue
		}
		if opts.IDTipoProducto != nil && t.IDTipoProducto != *opts.IDTipoProducto {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (f *fakeTextoRepo) Count(opts database.TextoFilter) (int, error) {
	f.lastOpts = opts
	return len(f.filtrados(opts)), nil
}

func (f *fakeTextoRepo) List(opts database.TextoFilter, page models.PageParams) ([]models.TextoDetallado, error) {
	f.lastOpts = opts
	return f.filtrados(opts), nil
}

func (f *fakeTextoRepo) GetByID(id int) (*models.TextoDetallado, error) {
	for _, t := range f.textos {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, models.NewNotFoundError("Texto", id)
}

func textoDe(id int, idPais string) models.TextoDetallado {
	t := models.TextoDetallado{}
	t.ID = id
	t.IDPais = idPais
	t.Unidad = "imagen"
	t.Unidades = "imágenes"
	return t
}

func TestTextoListByPaisNormaliza(t *testing.T) {
	repo := &fakeTextoRepo{textos: []models.TextoDetallado{
		textoDe(1, "MXN"),
		textoDe(2, "COP"),
	}}
	paises := &fakePaisRepo{porISO2: map[string]models.Pais{"MX": mexico()}}
	s := &TextoService{
		repo:   repo,
		paises: &PaisService{repo: paises, logger: logrus.New()},
		logger: logrus.New(),
	}

	textos, total, err := s.ListByPais("mx", models.DefaultPageParams())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, textos, 1)
	assert.Equal(t, "MXN", textos[0].IDPais)
}

func TestTextoListByPaisISO2Inexistente(t *testing.T) {
	repo := &fakeTextoRepo{}
	s := &TextoService{
		repo:   repo,
		paises: &PaisService{repo: &fakePaisRepo{}, logger: logrus.New()},
		logger: logrus.New(),
	}

	_, _, err := s.ListByPais("ZZ", models.DefaultPageParams())
	var nf *models.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestTextoListByPaisPaginaInvalidaNoConsulta(t *testing.T) {
	paises := &fakePaisRepo{porISO2: map[string]models.Pais{"MX": mexico()}}
	s := &TextoService{
		repo:   &fakeTextoRepo{},
		paises: &PaisService{repo: paises, logger: logrus.New()},
		logger: logrus.New(),
	}

	_, _, err := s.ListByPais("MX", models.PageParams{Skip: 0, Limit: 0})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, paises.iso2Hits)
}

func TestTextoListPaginaInvalida(t *testing.T) {
	s := &TextoService{repo: &fakeTextoRepo{}, logger: logrus.New()}

	_, _, err := s.List(models.PageParams{Skip: 0, Limit: 0})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
}
