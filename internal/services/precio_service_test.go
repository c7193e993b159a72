package services

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/database"
	"github.com/splashmix/catalog-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrecioRepo struct {
	precios   []models.PrecioDetallado
	lastOpts  database.PrecioFilter
	lastPage  models.PageParams
	countHits int
}

func (f *fakePrecioRepo) matches(p models.PrecioDetallado, opts database.PrecioFilter) bool {
	if opts.IDPertenencia != nil && p.IDPertenencia != *opts.IDPertenencia {
		return false
	}
	if opts.IDPais != nil && p.IDPais != *opts.IDPais {
		return false
	}
	if opts.Ambiente != nil && (p.Ambiente == nil || *p.Ambiente != *opts.Ambiente) {
		return false
	}
	return true
}

func (f *fakePrecioRepo) Count(opts database.PrecioFilter) (int, error) {
	f.countHits++
	f.lastOpts = opts
	total := 0
	for _, p := range f.precios {
		if f.matches(p, opts) {
			total++
		}
	}
	return total, nil
}

func (f *fakePrecioRepo) List(opts database.PrecioFilter, page models.PageParams) ([]models.PrecioDetallado, error) {
	f.lastOpts = opts
	f.lastPage = page
	var filtrados []models.PrecioDetallado
	for _, p := range f.precios {
		if f.matches(p, opts) {
			filtrados = append(filtrados, p)
		}
	}
	if page.Skip >= len(filtrados) {
		return nil, nil
	}
	end := page.Skip + page.Limit
	if end > len(filtrados) {
		end = len(filtrados)
	}
	return filtrados[page.Skip:end], nil
}

func (f *fakePrecioRepo) GetByID(id int) (*models.PrecioDetallado, error) {
	for _, p := range f.precios {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, models.NewNotFoundError("Precio", id)
}

func precioDe(id int, idPais string, ambiente string) models.PrecioDetallado {
	p := models.PrecioDetallado{}
	p.ID = id
	p.IDPais = idPais
	p.Status = models.StatusActivo
	if ambiente != "" {
		p.Ambiente = &ambiente
	}
	return p
}

func newPrecioServiceConRepos(repo PrecioRepository, paises PaisRepository) *PrecioService {
	logger := logrus.New()
	return &PrecioService{
		repo:   repo,
		paises: &PaisService{repo: paises, logger: logger},
		logger: logger,
	}
}

func TestPrecioListSinFiltros(t *testing.T) {
	repo := &fakePrecioRepo{precios: []models.PrecioDetallado{
		precioDe(1, "MXN", models.AmbienteSandbox),
		precioDe(2, "COP", models.AmbienteProduction),
		precioDe(3, "MXN", ""),
	}}
	s := newPrecioServiceConRepos(repo, &fakePaisRepo{})

	precios, total, err := s.List(PrecioFilterParams{}, models.DefaultPageParams())
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, precios, 3)
	assert.Nil(t, repo.lastOpts.IDPais)
	assert.Nil(t, repo.lastOpts.Ambiente)
}

func TestPrecioListFiltraPorAmbiente(t *testing.T) {
	repo := &fakePrecioRepo{precios: []models.PrecioDetallado{
		precioDe(1, "MXN", models.AmbienteSandbox),
		precioDe(2, "MXN", models.AmbienteProduction),
		precioDe(3, "MXN", ""),
	}}
	s := newPrecioServiceConRepos(repo, &fakePaisRepo{})

	precios, total, err := s.List(PrecioFilterParams{Ambiente: models.AmbienteSandbox}, models.DefaultPageParams())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, precios, 1)
	assert.Equal(t, 1, precios[0].ID)
}

func TestPrecioListNormalizaPaisISO2(t *testing.T) {
	repo := &fakePrecioRepo{precios: []models.PrecioDetallado{
		precioDe(1, "MXN", models.AmbienteSandbox),
		precioDe(2, "COP", models.AmbienteSandbox),
	}}
	paises := &fakePaisRepo{porISO2: map[string]models.Pais{"MX": mexico()}}
	s := newPrecioServiceConRepos(repo, paises)

	precios, total, err := s.List(PrecioFilterParams{Pais: "mx"}, models.DefaultPageParams())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, precios, 1)
	assert.Equal(t, "MXN", precios[0].IDPais)
	require.NotNil(t, repo.lastOpts.IDPais)
	assert.Equal(t, "MXN", *repo.lastOpts.IDPais)
}

func TestPrecioListISO2InexistenteNoConsulta(t *testing.T) {
	repo := &fakePrecioRepo{}
	s := newPrecioServiceConRepos(repo, &fakePaisRepo{})

	_, _, err := s.List(PrecioFilterParams{Pais: "ZZ"}, models.DefaultPageParams())
	var nf *models.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Zero(t, repo.countHits)
}

func TestPrecioListPaginaInvalidaNoConsulta(t *testing.T) {
	repo := &fakePrecioRepo{}
	s := newPrecioServiceConRepos(repo, &fakePaisRepo{})

	_, _, err := s.List(PrecioFilterParams{}, models.PageParams{Skip: 0, Limit: 101})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, repo.countHits)
}

func TestPrecioListTotalCubreTodoElFiltro(t *testing.T) {
	var precios []models.PrecioDetallado
	for i := 1; i <= 15; i++ {
		precios = append(precios, precioDe(i, "MXN", models.AmbienteSandbox))
	}
	repo := &fakePrecioRepo{precios: precios}
	s := newPrecioServiceConRepos(repo, &fakePaisRepo{})

	page := models.PageParams{Skip: 0, Limit: 10}
	pagina, total, err := s.List(PrecioFilterParams{}, page)
	require.NoError(t, err)
	assert.Equal(t, 15, total)
	assert.Len(t, pagina, 10)
	assert.True(t, page.HasMore(len(pagina), total))
}

func TestPrecioListSkipMasAllaDelTotal(t *testing.T) {
	repo := &fakePrecioRepo{precios: []models.PrecioDetallado{
		precioDe(1, "MXN", models.AmbienteSandbox),
	}}
	s := newPrecioServiceConRepos(repo, &fakePaisRepo{})

	pagina, total, err := s.List(PrecioFilterParams{}, models.PageParams{Skip: 50, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Empty(t, pagina)
}

func TestPrecioListByPertenencia(t *testing.T) {
	p1 := precioDe(1, "MXN", models.AmbienteSandbox)
	p1.IDPertenencia = 7
	p2 := precioDe(2, "COP", models.AmbienteSandbox)
	p2.IDPertenencia = 8
	repo := &fakePrecioRepo{precios: []models.PrecioDetallado{p1, p2}}
	s := newPrecioServiceConRepos(repo, &fakePaisRepo{})

	precios, total, err := s.ListByPertenencia(7, models.DefaultPageParams())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, precios, 1)
	assert.Equal(t, 1, precios[0].ID)
}

func TestPrecioGetByIDInexistente(t *testing.T) {
	repo := &fakePrecioRepo{}
	s := newPrecioServiceConRepos(repo, &fakePaisRepo{})

	_, err := s.GetByID(99)
	var nf *models.NotFoundError
	require.ErrorAs(t, err, &nf)
}
