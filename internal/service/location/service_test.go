package location

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/integrations/geonames"
	"github.com/m04kA/SMC-QuoteService/internal/integrations/georef"
	"github.com/m04kA/SMC-QuoteService/internal/integrations/zippopotam"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type nopMetrics struct{}

func (nopMetrics) ObserveRemote(string, string)   {}
func (nopMetrics) ObserveFallback(string, string) {}

type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMapCache() *mapCache { return &mapCache{data: map[string][]byte{}} }

func (c *mapCache) Load(_ context.Context, sid, key string, dst interface{}) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[sid+"/"+key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (c *mapCache) Save(_ context.Context, sid, key string, v interface{}) {
	raw, _ := json.Marshal(v)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[sid+"/"+key] = raw
}

func (c *mapCache) has(sid, key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[sid+"/"+key]
	return ok
}

type fakeGeoref struct {
	mu          sync.Mutex
	localities  []georef.Locality
	searchErr   error
	codes       map[string][]string
	codeErrs    map[string]error
	searchCalls int
}

func (f *fakeGeoref) SearchLocalities(_ context.Context, _ string) ([]georef.Locality, error) {
	f.mu.Lock()
	f.searchCalls++
	f.mu.Unlock()
	return f.localities, f.searchErr
}

func (f *fakeGeoref) GetPostalCodes(_ context.Context, id string) ([]string, error) {
	if err := f.codeErrs[id]; err != nil {
		return nil, err
	}
	return f.codes[id], nil
}

type fakeZippopotam struct {
	result *zippopotam.PostalCode
	err    error
	calls  int
}

func (f *fakeZippopotam) Lookup(_ context.Context, _ string) (*zippopotam.PostalCode, error) {
	f.calls++
	return f.result, f.err
}

type fakeGeoNames struct {
	codes []geonames.PostalCode
	err   error
	calls int
}

func (f *fakeGeoNames) FindNearbyPostalCodes(_ context.Context, _, _ float64, radiusKm, maxRows int) ([]geonames.PostalCode, error) {
	f.calls++
	if radiusKm != 10 || maxRows != 10 {
		return nil, errors.New("unexpected radius or maxRows")
	}
	return f.codes, f.err
}

func newTestService(g *fakeGeoref, z *fakeZippopotam, n *fakeGeoNames, cache *mapCache) *Service {
	return NewService(g, z, n, cache, nopLogger{}, nopMetrics{})
}

func localitiesOf(items []domain.LocationData) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Locality)
	}
	return out
}

func TestSearch_ShortQueryDoesNotCallRemote(t *testing.T) {
	g := &fakeGeoref{}
	z := &fakeZippopotam{}
	svc := newTestService(g, z, &fakeGeoNames{}, newMapCache())

	res := svc.Search(context.Background(), SearchRequest{SessionID: "s1", Query: "ro"})

	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
	assert.Equal(t, 0, g.searchCalls)
	assert.Equal(t, 0, z.calls)
}

func TestSearch_DigitsTakePostalPath(t *testing.T) {
	g := &fakeGeoref{}
	z := &fakeZippopotam{result: &zippopotam.PostalCode{
		PostCode: "2000",
		Places: []zippopotam.Place{
			{PlaceName: "Rosario", State: "Santa Fe", Latitude: "-32.9468", Longitude: "-60.6393"},
			{PlaceName: "Sin coordenadas", State: "Santa Fe", Latitude: "", Longitude: ""},
		},
	}}
	cache := newMapCache()
	svc := newTestService(g, z, &fakeGeoNames{}, cache)

	res := svc.Search(context.Background(), SearchRequest{SessionID: "s1", Query: "2000"})

	require.Len(t, res.Items, 2)
	assert.Equal(t, "2000", res.Items[0].PostalCode)
	assert.Equal(t, "Rosario", res.Items[0].Locality)
	require.True(t, res.Items[0].HasCoordinates())
	assert.InDelta(t, -32.9468, *res.Items[0].Latitude, 1e-9)
	assert.False(t, res.Items[1].HasCoordinates())
	assert.Equal(t, domain.NoticeNone, res.Notice)

	assert.Equal(t, 1, z.calls)
	assert.Equal(t, 0, g.searchCalls)
	assert.True(t, cache.has("s1", "location_postalCode_2000"))
	assert.True(t, cache.has("s1", keyLocalities))
}

func TestSearch_PostalFailureUsesFallback(t *testing.T) {
	z := &fakeZippopotam{err: zippopotam.ErrNotFound}
	cache := newMapCache()
	svc := newTestService(&fakeGeoref{}, z, &fakeGeoNames{}, cache)

	res := svc.Search(context.Background(), SearchRequest{SessionID: "s1", Query: "2000"})

	require.Len(t, res.Items, 1)
	assert.Equal(t, "S2000", res.Items[0].PostalCode)
	assert.Equal(t, "Rosario", res.Items[0].Locality)
	assert.False(t, cache.has("s1", "location_postalCode_2000"))
}

func TestSearch_PostalEmptyUsesFallback(t *testing.T) {
	z := &fakeZippopotam{result: &zippopotam.PostalCode{PostCode: "5000"}}
	svc := newTestService(&fakeGeoref{}, z, &fakeGeoNames{}, newMapCache())

	res := svc.Search(context.Background(), SearchRequest{SessionID: "s1", Query: "5000"})

	assert.Equal(t, []string{"Córdoba"}, localitiesOf(res.Items))
}

func TestSearch_LocalityPairsFirstPostalCode(t *testing.T) {
	g := &fakeGeoref{
		localities: []georef.Locality{
			{ID: "1", Name: "Funes", Province: georef.Province{Name: "Santa Fe"}, Centroid: &georef.Centroid{Lat: -32.91, Lon: -60.81}},
			{ID: "2", Name: "Funes Chico", Province: georef.Province{Name: "Santa Fe"}},
			{ID: "3", Name: "Villa Funes", Province: georef.Province{Name: "Córdoba"}},
		},
		codes:    map[string][]string{"1": {"S2132", "S2133"}, "3": {}},
		codeErrs: map[string]error{"2": errors.New("timeout")},
	}
	cache := newMapCache()
	svc := newTestService(g, &fakeZippopotam{}, &fakeGeoNames{}, cache)

	res := svc.Search(context.Background(), SearchRequest{SessionID: "s1", Query: "Funes"})

	require.Len(t, res.Items, 1)
	assert.Equal(t, "S2132", res.Items[0].PostalCode)
	assert.Equal(t, "Funes", res.Items[0].Locality)
	assert.Equal(t, "Santa Fe", res.Items[0].Province)
	require.True(t, res.Items[0].HasCoordinates())
	assert.True(t, cache.has("s1", "location_locality_funes"))
}

func TestSearch_CacheHitSkipsRemote(t *testing.T) {
	g := &fakeGeoref{
		localities: []georef.Locality{{ID: "1", Name: "Funes", Province: georef.Province{Name: "Santa Fe"}}},
		codes:      map[string][]string{"1": {"S2132"}},
	}
	svc := newTestService(g, &fakeZippopotam{}, &fakeGeoNames{}, newMapCache())

	first := svc.Search(context.Background(), SearchRequest{SessionID: "s1", Query: "funes"})
	second := svc.Search(context.Background(), SearchRequest{SessionID: "s1", Query: "  FUNES "})

	assert.Equal(t, first.Items, second.Items)
	assert.Equal(t, 1, g.searchCalls)
}

func TestSearch_LocalityFailureUsesFallback(t *testing.T) {
	tests := []struct {
		name string
		g    *fakeGeoref
	}{
		{name: "remote error", g: &fakeGeoref{searchErr: georef.ErrInternal}},
		{name: "empty result", g: &fakeGeoref{localities: []georef.Locality{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.g, &fakeZippopotam{}, &fakeGeoNames{}, newMapCache())

			res := svc.Search(context.Background(), SearchRequest{SessionID: "s1", Query: "rosa"})

			assert.Equal(t, []string{"Rosario"}, localitiesOf(res.Items))
			assert.Equal(t, domain.NoticeNone, res.Notice)
		})
	}
}

func TestSearch_Offline(t *testing.T) {
	t.Run("bundled table", func(t *testing.T) {
		g := &fakeGeoref{}
		svc := newTestService(g, &fakeZippopotam{}, &fakeGeoNames{}, newMapCache())

		res := svc.Search(context.Background(), SearchRequest{SessionID: "s1", Query: "PALER", Offline: true})

		assert.Equal(t, []string{"Palermo"}, localitiesOf(res.Items))
		assert.Equal(t, domain.NoticeNoConnectivity, res.Notice)
		assert.Equal(t, 0, g.searchCalls)
	})

	t.Run("previously found places", func(t *testing.T) {
		cache := newMapCache()
		cache.Save(context.Background(), "s1", keyLocalities, []domain.LocationData{
			{PostalCode: "S2132", Locality: "Funes", Province: "Santa Fe"},
			{PostalCode: "S2000", Locality: "Rosario", Province: "Santa Fe"},
		})
		svc := newTestService(&fakeGeoref{}, &fakeZippopotam{}, &fakeGeoNames{}, cache)

		res := svc.Search(context.Background(), SearchRequest{SessionID: "s1", Query: "2132", Offline: true})

		assert.Equal(t, []string{"Funes"}, localitiesOf(res.Items))
		assert.Equal(t, domain.NoticeNoConnectivity, res.Notice)
	})

	t.Run("nothing matches", func(t *testing.T) {
		svc := newTestService(&fakeGeoref{}, &fakeZippopotam{}, &fakeGeoNames{}, newMapCache())

		res := svc.Search(context.Background(), SearchRequest{SessionID: "s1", Query: "Ushuaia", Offline: true})

		assert.Empty(t, res.Items)
		assert.Equal(t, domain.NoticeNoConnectivity, res.Notice)
	})
}

func TestSearch_SortsByDistance(t *testing.T) {
	cache := newMapCache()
	cache.Save(context.Background(), "s1", "location_locality_santa", []domain.LocationData{
		{PostalCode: "X0000", Locality: "Sin coordenadas"},
		{PostalCode: "X5000", Locality: "Córdoba", Latitude: coord(-31.42), Longitude: coord(-64.18)},
		{PostalCode: "S2000", Locality: "Rosario", Latitude: coord(-32.95), Longitude: coord(-60.64)},
	})
	svc := newTestService(&fakeGeoref{}, &fakeZippopotam{}, &fakeGeoNames{}, cache)

	res := svc.Search(context.Background(), SearchRequest{
		SessionID: "s1", Query: "santa", Lat: coord(-34.6), Lon: coord(-58.4),
	})

	assert.Equal(t, []string{"Rosario", "Córdoba", "Sin coordenadas"}, localitiesOf(res.Items))
}

func TestDistanceKm(t *testing.T) {
	assert.InDelta(t, 10.69, DistanceKm(-34.51, -58.50, -34.58, -58.42), 0.01)
	assert.InDelta(t, 276.62, DistanceKm(-34.6, -58.4, -32.95, -60.64), 0.01)
	assert.Zero(t, DistanceKm(-31.42, -64.18, -31.42, -64.18))
}

func TestNearby(t *testing.T) {
	t.Run("maps and caches", func(t *testing.T) {
		n := &fakeGeoNames{codes: []geonames.PostalCode{
			{PostalCode: "1636", PlaceName: "Olivos", AdminName1: "Buenos Aires", Lat: -34.51, Lng: -58.49},
		}}
		svc := newTestService(&fakeGeoref{}, &fakeZippopotam{}, n, newMapCache())

		items := svc.Nearby(context.Background(), "s1", -34.51, -58.5)
		again := svc.Nearby(context.Background(), "s1", -34.51, -58.5)

		require.Len(t, items, 1)
		assert.Equal(t, "Olivos", items[0].Locality)
		assert.Equal(t, "Buenos Aires", items[0].Province)
		assert.InDelta(t, -58.49, *items[0].Longitude, 1e-9)
		assert.Equal(t, items, again)
		assert.Equal(t, 1, n.calls)
	})

	t.Run("failure returns empty list", func(t *testing.T) {
		n := &fakeGeoNames{err: geonames.ErrInvalidResponse}
		svc := newTestService(&fakeGeoref{}, &fakeZippopotam{}, n, newMapCache())

		items := svc.Nearby(context.Background(), "s1", 1, 2)

		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}
