package location

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/integrations/georef"
)

const (
	sourceGeoref     = "georef"
	sourceZippopotam = "zippopotam"
	sourceGeoNames   = "geonames"

	resolverPostal   = "location.postal"
	resolverLocality = "location.locality"

	reasonOffline     = "offline"
	reasonRemoteError = "remote_error"
	reasonEmpty       = "empty"

	// postalCodeWorkers параллельные запросы индексов по кандидатам
	postalCodeWorkers = 5
)

// Service поиск пар «почтовый индекс / населённый пункт».
// Ошибки внешних сервисов не возвращаются: вместо них отдаются встроенные данные.
type Service struct {
	georef     Georef
	zippopotam Zippopotam
	geonames   GeoNames
	cache      Cache
	logger     Logger
	metrics    Metrics

	group singleflight.Group
}

func NewService(georef Georef, zippopotam Zippopotam, geonames GeoNames, cache Cache, logger Logger, metrics Metrics) *Service {
	return &Service{
		georef:     georef,
		zippopotam: zippopotam,
		geonames:   geonames,
		cache:      cache,
		logger:     logger,
		metrics:    metrics,
	}
}

// IsPostalQuery запрос из одних цифр ищется по почтовому индексу
func IsPostalQuery(query string) bool {
	if query == "" {
		return false
	}
	for _, r := range query {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Search поиск по индексу или названию населённого пункта
func (s *Service) Search(ctx context.Context, req SearchRequest) Result {
	query := strings.TrimSpace(req.Query)

	postal := IsPostalQuery(query)
	if !postal && utf8.RuneCountInString(query) < MinLocalityQueryLen {
		return Result{Items: []domain.LocationData{}}
	}

	key := keyLocalityPrefix + strings.ToLower(query)
	if postal {
		key = keyPostalPrefix + query
	}

	var items []domain.LocationData
	var notice domain.Notice
	if req.Offline {
		notice = domain.NoticeNoConnectivity
	}

	switch {
	case s.cache.Load(ctx, req.SessionID, key, &items):
	case req.Offline:
		items = s.offline(ctx, req.SessionID, query, postal)
	case postal:
		items = s.searchPostal(ctx, req.SessionID, key, query)
	default:
		items = s.searchLocality(ctx, req.SessionID, key, query)
	}

	if items == nil {
		items = []domain.LocationData{}
	}
	if req.Lat != nil && req.Lon != nil {
		SortByDistance(items, *req.Lat, *req.Lon)
	}

	return Result{Items: items, Notice: notice}
}

// Nearby почтовые индексы рядом с точкой. При ошибке пустой список, встроенных данных для этого пути нет.
func (s *Service) Nearby(ctx context.Context, sessionID string, lat, lon float64) []domain.LocationData {
	key := fmt.Sprintf("%s%s_%s", keyCoordsPrefix,
		strconv.FormatFloat(lat, 'f', -1, 64), strconv.FormatFloat(lon, 'f', -1, 64))

	var cached []domain.LocationData
	if s.cache.Load(ctx, sessionID, key, &cached) {
		return cached
	}

	codes, err := s.geonames.FindNearbyPostalCodes(ctx, lat, lon, nearbyRadiusKm, nearbyMaxRows)
	if err != nil {
		s.logger.Warn("Error fetching nearby postal codes: lat=%v lon=%v error=%v", lat, lon, err)
		s.metrics.ObserveRemote(sourceGeoNames, "error")
		return []domain.LocationData{}
	}
	s.metrics.ObserveRemote(sourceGeoNames, "ok")

	items := make([]domain.LocationData, 0, len(codes))
	for _, pc := range codes {
		items = append(items, domain.LocationData{
			PostalCode: pc.PostalCode,
			Locality:   pc.PlaceName,
			Province:   pc.AdminName1,
			Latitude:   coord(pc.Lat),
			Longitude:  coord(pc.Lng),
		})
	}

	s.cache.Save(ctx, sessionID, key, items)
	return items
}

// offline фильтрует ранее найденные в сессии места, затем встроенную таблицу
func (s *Service) offline(ctx context.Context, sessionID, query string, postal bool) []domain.LocationData {
	resolver := resolverLocality
	if postal {
		resolver = resolverPostal
	}

	var saved []domain.LocationData
	if s.cache.Load(ctx, sessionID, keyLocalities, &saved) {
		if items := filterLocations(saved, query); len(items) > 0 {
			return items
		}
	}

	s.metrics.ObserveFallback(resolver, reasonOffline)
	return filterLocations(fallbackLocations, query)
}

func (s *Service) searchPostal(ctx context.Context, sessionID, key, code string) []domain.LocationData {
	v, _, _ := s.group.Do("postal:"+code, func() (interface{}, error) {
		return s.fetchPostal(ctx, code), nil
	})

	items, _ := v.([]domain.LocationData)
	if items == nil {
		return filterLocations(fallbackLocations, code)
	}

	items = append([]domain.LocationData(nil), items...)
	s.remember(ctx, sessionID, key, items)
	return items
}

// fetchPostal nil означает, что нужно перейти на встроенные данные
func (s *Service) fetchPostal(ctx context.Context, code string) []domain.LocationData {
	pc, err := s.zippopotam.Lookup(ctx, code)
	if err != nil {
		s.logger.Warn("Error looking up postal code %s, using fallback data: %v", code, err)
		s.metrics.ObserveRemote(sourceZippopotam, "error")
		s.metrics.ObserveFallback(resolverPostal, reasonRemoteError)
		return nil
	}
	s.metrics.ObserveRemote(sourceZippopotam, "ok")

	if len(pc.Places) == 0 {
		s.metrics.ObserveFallback(resolverPostal, reasonEmpty)
		return nil
	}

	items := make([]domain.LocationData, 0, len(pc.Places))
	for _, p := range pc.Places {
		loc := domain.LocationData{
			PostalCode: pc.PostCode,
			Locality:   p.PlaceName,
			Province:   p.State,
		}
		lat, latErr := strconv.ParseFloat(p.Latitude, 64)
		lon, lonErr := strconv.ParseFloat(p.Longitude, 64)
		if latErr == nil && lonErr == nil {
			loc.Latitude, loc.Longitude = coord(lat), coord(lon)
		}
		items = append(items, loc)
	}
	return items
}

func (s *Service) searchLocality(ctx context.Context, sessionID, key, name string) []domain.LocationData {
	v, _, _ := s.group.Do("locality:"+strings.ToLower(name), func() (interface{}, error) {
		return s.fetchLocalities(ctx, name), nil
	})

	items, _ := v.([]domain.LocationData)
	if items == nil {
		return filterLocations(fallbackLocations, name)
	}

	items = append([]domain.LocationData(nil), items...)
	s.remember(ctx, sessionID, key, items)
	return items
}

// fetchLocalities кандидаты из Georef с первым почтовым индексом каждого.
// nil означает, что нужно перейти на встроенные данные.
func (s *Service) fetchLocalities(ctx context.Context, name string) []domain.LocationData {
	localities, err := s.georef.SearchLocalities(ctx, name)
	if err != nil {
		s.logger.Warn("Error searching localities %q, using fallback data: %v", name, err)
		s.metrics.ObserveRemote(sourceGeoref, "error")
		s.metrics.ObserveFallback(resolverLocality, reasonRemoteError)
		return nil
	}
	s.metrics.ObserveRemote(sourceGeoref, "ok")

	if len(localities) == 0 {
		s.metrics.ObserveFallback(resolverLocality, reasonEmpty)
		return nil
	}

	codes := make([]string, len(localities))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(postalCodeWorkers)
	for i, loc := range localities {
		i, loc := i, loc
		g.Go(func() error {
			found, err := s.georef.GetPostalCodes(gctx, loc.ID)
			if err != nil {
				// неудачный подзапрос означает «нет индексов», поиск продолжается
				s.logger.Warn("Error fetching postal codes for locality %s: %v", loc.ID, err)
				return nil
			}
			if len(found) > 0 {
				codes[i] = found[0]
			}
			return nil
		})
	}
	_ = g.Wait()

	items := make([]domain.LocationData, 0, len(localities))
	for i, loc := range localities {
		if codes[i] == "" {
			continue
		}
		items = append(items, toLocation(loc, codes[i]))
	}
	return items
}

// remember сохраняет ответ внешнего сервиса под ключом запроса и как последние найденные места
func (s *Service) remember(ctx context.Context, sessionID, key string, items []domain.LocationData) {
	s.cache.Save(ctx, sessionID, key, items)
	if len(items) > 0 {
		s.cache.Save(ctx, sessionID, keyLocalities, items)
	}
}

func toLocation(loc georef.Locality, postalCode string) domain.LocationData {
	out := domain.LocationData{
		PostalCode: postalCode,
		Locality:   loc.Name,
		Province:   loc.Province.Name,
	}
	if loc.Centroid != nil {
		out.Latitude, out.Longitude = coord(loc.Centroid.Lat), coord(loc.Centroid.Lon)
	}
	return out
}
