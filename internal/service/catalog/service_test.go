package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/infra/storage/session"
	"github.com/m04kA/SMC-QuoteService/internal/integrations/vehiclecatalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type nopMetrics struct{}

func (nopMetrics) ObserveRemote(string, string)   {}
func (nopMetrics) ObserveFallback(string, string) {}
func (nopMetrics) ObserveStorageError(string)     {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeCatalog struct {
	mu          sync.Mutex
	makes       []vehiclecatalog.Make
	models      []vehiclecatalog.Model
	err         error
	makesCalls  int
	modelsCalls int
	lastMake    string
}

func (f *fakeCatalog) GetMakes(context.Context) ([]vehiclecatalog.Make, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.makesCalls++
	return f.makes, f.err
}

func (f *fakeCatalog) GetModelsForMake(_ context.Context, makeName string) ([]vehiclecatalog.Model, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.modelsCalls++
	f.lastMake = makeName
	return f.models, f.err
}

func newTestService(catalog *fakeCatalog) *Service {
	cache := session.NewJSONCache(session.NewMemoryStorage(time.Hour, 0), nopLogger{}, nopMetrics{})
	return NewService(catalog, cache, fixedClock{now: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)}, nopLogger{}, nopMetrics{})
}

func TestService_Brands_Remote(t *testing.T) {
	catalog := &fakeCatalog{makes: []vehiclecatalog.Make{
		{MakeID: 448, MakeName: "TOYOTA"},
		{MakeID: 0, MakeName: "NO ID"},
	}}
	svc := newTestService(catalog)

	result := svc.Brands(context.Background(), BrandsRequest{SessionID: "s1"})

	assert.Equal(t, []domain.Brand{{ID: 448, Name: "TOYOTA"}, {ID: 2, Name: "NO ID"}}, result.Items)
	assert.Equal(t, domain.NoticeNone, result.Notice)

	// повторный запрос обслуживается из кэша сессии
	again := svc.Brands(context.Background(), BrandsRequest{SessionID: "s1"})
	assert.Equal(t, result.Items, again.Items)
	assert.Equal(t, 1, catalog.makesCalls)
}

func TestService_Brands_RemoteFailureUsesFallback(t *testing.T) {
	svc := newTestService(&fakeCatalog{err: errors.New("timeout")})

	result := svc.Brands(context.Background(), BrandsRequest{SessionID: "s1"})

	assert.Len(t, result.Items, 15)
	assert.Equal(t, domain.Brand{ID: 15, Name: "Citroën"}, result.Items[14])
	assert.Equal(t, domain.NoticeNone, result.Notice)
}

func TestService_Brands_RetriesRemoteAfterFailure(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("timeout")}
	svc := newTestService(catalog)
	ctx := context.Background()

	first := svc.Brands(ctx, BrandsRequest{SessionID: "s1"})
	assert.Len(t, first.Items, 15)

	catalog.mu.Lock()
	catalog.err = nil
	catalog.makes = []vehiclecatalog.Make{{MakeID: 1, MakeName: "Toyota"}, {MakeID: 2, MakeName: "Ford"}}
	catalog.mu.Unlock()

	second := svc.Brands(ctx, BrandsRequest{SessionID: "s1"})
	assert.Equal(t, []domain.Brand{{ID: 1, Name: "Toyota"}, {ID: 2, Name: "Ford"}}, second.Items)
	assert.Equal(t, 2, catalog.makesCalls)

	// удачный ответ уже кешируется
	svc.Brands(ctx, BrandsRequest{SessionID: "s1"})
	assert.Equal(t, 2, catalog.makesCalls)
}

func TestService_Models_RetriesRemoteAfterFailure(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("timeout")}
	svc := newTestService(catalog)
	ctx := context.Background()
	req := ModelsRequest{SessionID: "s1", BrandID: 1, BrandName: "Toyota"}

	first := svc.Models(ctx, req)
	assert.Len(t, first.Items, 5)

	catalog.mu.Lock()
	catalog.err = nil
	catalog.models = []vehiclecatalog.Model{{ModelID: 2469, ModelName: "Corolla"}}
	catalog.mu.Unlock()

	second := svc.Models(ctx, req)
	assert.Equal(t, []domain.Model{{ID: 2469, BrandID: 1, Name: "Corolla"}}, second.Items)
	assert.Equal(t, 2, catalog.modelsCalls)
}

func TestService_Brands_Offline(t *testing.T) {
	catalog := &fakeCatalog{}
	svc := newTestService(catalog)

	result := svc.Brands(context.Background(), BrandsRequest{SessionID: "s1", Offline: true})

	assert.Len(t, result.Items, 15)
	assert.Equal(t, domain.NoticeOfflineSavedData, result.Notice)
	assert.Zero(t, catalog.makesCalls)
}

func TestService_Models_Remote(t *testing.T) {
	catalog := &fakeCatalog{models: []vehiclecatalog.Model{
		{ModelID: 2469, ModelName: "Corolla"},
		{ModelID: 0, ModelName: "Hilux"},
	}}
	svc := newTestService(catalog)

	result := svc.Models(context.Background(), ModelsRequest{SessionID: "s1", BrandID: 1, BrandName: "Toyota"})

	assert.Equal(t, []domain.Model{
		{ID: 2469, BrandID: 1, Name: "Corolla"},
		{ID: 102, BrandID: 1, Name: "Hilux"},
	}, result.Items)
	assert.Equal(t, "Toyota", catalog.lastMake)
}

func TestService_Models_CacheIsScopedToBrand(t *testing.T) {
	catalog := &fakeCatalog{models: []vehiclecatalog.Model{{ModelID: 1, ModelName: "Any"}}}
	svc := newTestService(catalog)
	ctx := context.Background()

	svc.Models(ctx, ModelsRequest{SessionID: "s1", BrandID: 1, BrandName: "Toyota"})
	svc.Models(ctx, ModelsRequest{SessionID: "s1", BrandID: 1, BrandName: "Toyota"})
	assert.Equal(t, 1, catalog.modelsCalls)

	result := svc.Models(ctx, ModelsRequest{SessionID: "s1", BrandID: 2, BrandName: "Ford"})
	assert.Equal(t, 2, catalog.modelsCalls)
	assert.Equal(t, int64(2), result.Items[0].BrandID)
}

func TestService_Models_FallbackCases(t *testing.T) {
	tests := []struct {
		name    string
		catalog *fakeCatalog
		req     ModelsRequest
		wantLen int
	}{
		{name: "remote error", catalog: &fakeCatalog{err: errors.New("down")}, req: ModelsRequest{BrandID: 1, BrandName: "Toyota"}, wantLen: 5},
		{name: "remote empty", catalog: &fakeCatalog{models: []vehiclecatalog.Model{}}, req: ModelsRequest{BrandID: 2, BrandName: "Ford"}, wantLen: 6},
		{name: "no brand name", catalog: &fakeCatalog{}, req: ModelsRequest{BrandID: 6}, wantLen: 3},
		{name: "unknown brand", catalog: &fakeCatalog{err: errors.New("down")}, req: ModelsRequest{BrandID: 999, BrandName: "Lada"}, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.catalog)
			tt.req.SessionID = "s1"

			result := svc.Models(context.Background(), tt.req)

			assert.Len(t, result.Items, tt.wantLen)
			assert.Equal(t, domain.NoticeNone, result.Notice)
			for _, m := range result.Items {
				assert.Equal(t, tt.req.BrandID, m.BrandID)
			}
		})
	}
}

func TestService_Models_OfflineNonEmptyIffFallbackExists(t *testing.T) {
	for _, brand := range fallbackBrands {
		svc := newTestService(&fakeCatalog{})
		result := svc.Models(context.Background(), ModelsRequest{SessionID: "s1", BrandID: brand.ID, BrandName: brand.Name, Offline: true})
		assert.NotEmpty(t, result.Items, brand.Name)
		assert.Equal(t, domain.NoticeOfflineSavedData, result.Notice)
	}

	svc := newTestService(&fakeCatalog{})
	result := svc.Models(context.Background(), ModelsRequest{SessionID: "s1", BrandID: 77, Offline: true})
	assert.Empty(t, result.Items)
	assert.Equal(t, domain.NoticeNoData, result.Notice)
}

func TestService_Models_OfflineServesSessionCache(t *testing.T) {
	catalog := &fakeCatalog{models: []vehiclecatalog.Model{{ModelID: 5000, ModelName: "GR Yaris"}}}
	svc := newTestService(catalog)
	ctx := context.Background()

	svc.Models(ctx, ModelsRequest{SessionID: "s1", BrandID: 1, BrandName: "Toyota"})
	result := svc.Models(ctx, ModelsRequest{SessionID: "s1", BrandID: 1, BrandName: "Toyota", Offline: true})

	assert.Equal(t, []domain.Model{{ID: 5000, BrandID: 1, Name: "GR Yaris"}}, result.Items)
	assert.Equal(t, domain.NoticeOfflineSavedData, result.Notice)
}

func TestService_Versions(t *testing.T) {
	svc := newTestService(&fakeCatalog{})
	ctx := context.Background()

	byID := svc.Versions(ctx, VersionsRequest{SessionID: "s1", ModelID: 101})
	require.Len(t, byID.Items, 5)
	assert.Equal(t, "XLI 1.6", byID.Items[0].Name)
	assert.Equal(t, "Manual", byID.Items[0].Transmission)

	// модель из внешнего каталога: совпадение по названию
	byName := svc.Versions(ctx, VersionsRequest{SessionID: "s2", ModelID: 2469, ModelName: "COROLLA"})
	require.Len(t, byName.Items, 5)
	for _, v := range byName.Items {
		assert.Equal(t, int64(2469), v.ModelID)
	}

	none := svc.Versions(ctx, VersionsRequest{SessionID: "s3", ModelID: 104})
	assert.Empty(t, none.Items)
}

func TestService_Versions_FuzzyMatchIgnoresDiacriticsAndPunctuation(t *testing.T) {
	svc := newTestService(&fakeCatalog{})

	result := svc.Versions(context.Background(), VersionsRequest{SessionID: "s1", ModelID: 9999, ModelName: "c4-cáctus"})
	require.NotEmpty(t, result.Items)
	assert.Equal(t, "VTI 115 Feel", result.Items[0].Name)
}

func TestService_Versions_Offline(t *testing.T) {
	svc := newTestService(&fakeCatalog{})
	ctx := context.Background()

	result := svc.Versions(ctx, VersionsRequest{SessionID: "s1", ModelID: 202, Offline: true})
	assert.Len(t, result.Items, 5)
	assert.Equal(t, domain.NoticeOfflineSavedData, result.Notice)

	empty := svc.Versions(ctx, VersionsRequest{SessionID: "s1", ModelID: 904, Offline: true})
	assert.Empty(t, empty.Items)
	assert.Equal(t, domain.NoticeNoData, empty.Notice)
}

func TestService_Years(t *testing.T) {
	svc := newTestService(&fakeCatalog{})

	years := svc.Years()
	require.Len(t, years, 25)
	assert.Equal(t, 2026, years[0])
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "citroen", NormalizeName("Citroën"))
	assert.Equal(t, "mercedesbenz", NormalizeName("Mercedes-Benz"))
	assert.Equal(t, "crv", NormalizeName(" CR-V "))
	assert.Equal(t, "", NormalizeName("—"))
}

func TestRestoreSelection(t *testing.T) {
	models := fallbackModelsFor(1)
	id := func(m domain.Model) int64 { return m.ID }

	got, ok := RestoreSelection(models, 102, false, id)
	require.True(t, ok)
	assert.Equal(t, "Hilux", got.Name)

	_, ok = RestoreSelection(models, 102, true, id)
	assert.False(t, ok)

	_, ok = RestoreSelection(models, 201, false, id)
	assert.False(t, ok)

	_, ok = RestoreSelection(models, 0, false, id)
	assert.False(t, ok)
}
