package catalog

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

const (
	sourceVehicleCatalog = "vehicle_catalog"

	resolverBrands   = "catalog.brands"
	resolverModels   = "catalog.models"
	resolverVersions = "catalog.versions"

	reasonOffline     = "offline"
	reasonRemoteError = "remote_error"
	reasonEmpty       = "empty"
	reasonNoName      = "no_name"
	reasonNoRemote    = "no_remote"
)

// Service справочник марок, моделей и комплектаций.
// Внешний каталог используется при наличии связи, при любой его ошибке отдаются встроенные данные.
type Service struct {
	catalog VehicleCatalog
	cache   Cache
	clock   TimeProvider
	logger  Logger
	metrics Metrics

	group singleflight.Group
}

func NewService(catalog VehicleCatalog, cache Cache, clock TimeProvider, logger Logger, metrics Metrics) *Service {
	return &Service{
		catalog: catalog,
		cache:   cache,
		clock:   clock,
		logger:  logger,
		metrics: metrics,
	}
}

// Brands список марок
func (s *Service) Brands(ctx context.Context, req BrandsRequest) Result[domain.Brand] {
	var cached []domain.Brand
	if s.cache.Load(ctx, req.SessionID, keyBrands, &cached) && len(cached) > 0 {
		return Result[domain.Brand]{Items: cached, Notice: cachedNotice(req.Offline)}
	}

	if req.Offline {
		items := append([]domain.Brand(nil), fallbackBrands...)
		s.cache.Save(ctx, req.SessionID, keyBrands, items)
		s.metrics.ObserveFallback(resolverBrands, reasonOffline)
		return Result[domain.Brand]{Items: items, Notice: offlineNotice(len(items))}
	}

	v, _, _ := s.group.Do("makes", func() (interface{}, error) {
		return s.fetchBrands(ctx), nil
	})
	res := v.(fetched[domain.Brand])
	items := append([]domain.Brand(nil), res.items...)

	// Запасные данные после ошибки не кешируются, следующий запрос снова идёт во внешний каталог
	if res.remote {
		s.cache.Save(ctx, req.SessionID, keyBrands, items)
	}
	return Result[domain.Brand]{Items: items}
}

// Models список моделей марки
func (s *Service) Models(ctx context.Context, req ModelsRequest) Result[domain.Model] {
	var cached []domain.Model
	if s.cache.Load(ctx, req.SessionID, keyModels, &cached) && len(cached) > 0 && modelsOf(cached, req.BrandID) {
		return Result[domain.Model]{Items: cached, Notice: cachedNotice(req.Offline)}
	}

	if req.Offline {
		items := fallbackModelsFor(req.BrandID)
		s.cache.Save(ctx, req.SessionID, keyModels, items)
		s.metrics.ObserveFallback(resolverModels, reasonOffline)
		return Result[domain.Model]{Items: items, Notice: offlineNotice(len(items))}
	}

	brandName := strings.TrimSpace(req.BrandName)
	if brandName == "" {
		items := fallbackModelsFor(req.BrandID)
		s.cache.Save(ctx, req.SessionID, keyModels, items)
		s.metrics.ObserveFallback(resolverModels, reasonNoName)
		return Result[domain.Model]{Items: items}
	}

	key := fmt.Sprintf("models:%d:%s", req.BrandID, strings.ToLower(brandName))
	v, _, _ := s.group.Do(key, func() (interface{}, error) {
		return s.fetchModels(ctx, req.BrandID, brandName), nil
	})
	res := v.(fetched[domain.Model])
	items := append([]domain.Model(nil), res.items...)

	if res.remote {
		s.cache.Save(ctx, req.SessionID, keyModels, items)
	}
	return Result[domain.Model]{Items: items}
}

// Versions список комплектаций модели. Внешнего источника комплектаций нет,
// поэтому всегда используются встроенные данные с нечётким поиском по названию модели.
func (s *Service) Versions(ctx context.Context, req VersionsRequest) Result[domain.Version] {
	var cached []domain.Version
	if s.cache.Load(ctx, req.SessionID, keyVersions, &cached) && len(cached) > 0 && versionsOf(cached, req.ModelID) {
		return Result[domain.Version]{Items: cached, Notice: cachedNotice(req.Offline)}
	}

	items := fallbackVersionsFor(req.ModelID, req.ModelName)
	s.cache.Save(ctx, req.SessionID, keyVersions, items)

	if req.Offline {
		s.metrics.ObserveFallback(resolverVersions, reasonOffline)
		return Result[domain.Version]{Items: items, Notice: offlineNotice(len(items))}
	}

	s.metrics.ObserveFallback(resolverVersions, reasonNoRemote)
	return Result[domain.Version]{Items: items}
}

// Years модельные годы, начиная с текущего
func (s *Service) Years() []int {
	return domain.ModelYears(s.clock.Now().Year())
}

// fetched результат запроса к внешнему каталогу; remote=false означает запасные данные
type fetched[T any] struct {
	items  []T
	remote bool
}

func (s *Service) fetchBrands(ctx context.Context) fetched[domain.Brand] {
	makes, err := s.catalog.GetMakes(ctx)
	if err != nil {
		s.logger.Warn("Error fetching makes from vehicle catalog, using fallback data: %v", err)
		s.metrics.ObserveRemote(sourceVehicleCatalog, "error")
		s.metrics.ObserveFallback(resolverBrands, reasonRemoteError)
		return fetched[domain.Brand]{items: append([]domain.Brand(nil), fallbackBrands...)}
	}
	s.metrics.ObserveRemote(sourceVehicleCatalog, "ok")

	if len(makes) == 0 {
		s.metrics.ObserveFallback(resolverBrands, reasonEmpty)
		return fetched[domain.Brand]{items: append([]domain.Brand(nil), fallbackBrands...)}
	}

	brands := make([]domain.Brand, 0, len(makes))
	for i, m := range makes {
		id := m.MakeID
		if id == 0 {
			id = int64(i + 1)
		}
		brands = append(brands, domain.Brand{ID: id, Name: m.MakeName})
	}
	return fetched[domain.Brand]{items: brands, remote: true}
}

func (s *Service) fetchModels(ctx context.Context, brandID int64, brandName string) fetched[domain.Model] {
	remote, err := s.catalog.GetModelsForMake(ctx, brandName)
	if err != nil {
		s.logger.Warn("Error fetching models for make=%s, using fallback data: %v", brandName, err)
		s.metrics.ObserveRemote(sourceVehicleCatalog, "error")
		s.metrics.ObserveFallback(resolverModels, reasonRemoteError)
		return fetched[domain.Model]{items: fallbackModelsFor(brandID)}
	}
	s.metrics.ObserveRemote(sourceVehicleCatalog, "ok")

	if len(remote) == 0 {
		s.metrics.ObserveFallback(resolverModels, reasonEmpty)
		return fetched[domain.Model]{items: fallbackModelsFor(brandID)}
	}

	models := make([]domain.Model, 0, len(remote))
	for i, m := range remote {
		id := m.ModelID
		if id == 0 {
			id = brandID*100 + int64(i+1)
		}
		models = append(models, domain.Model{ID: id, BrandID: brandID, Name: m.ModelName})
	}
	return fetched[domain.Model]{items: models, remote: true}
}

func fallbackModelsFor(brandID int64) []domain.Model {
	models := make([]domain.Model, 0)
	for _, m := range fallbackModels {
		if m.BrandID == brandID {
			models = append(models, m)
		}
	}
	return models
}

// fallbackVersionsFor комплектации по идентификатору модели, иначе по совпадению названия.
// Найденные по названию комплектации привязываются к запрошенной модели.
func fallbackVersionsFor(modelID int64, modelName string) []domain.Version {
	versions := versionsByModel(modelID)
	if len(versions) > 0 {
		return versions
	}

	wanted := NormalizeName(modelName)
	if wanted == "" {
		return versions
	}

	for _, m := range fallbackModels {
		if !namesMatch(NormalizeName(m.Name), wanted) {
			continue
		}
		matched := versionsByModel(m.ID)
		for i := range matched {
			matched[i].ModelID = modelID
		}
		return matched
	}

	return versions
}

func versionsByModel(modelID int64) []domain.Version {
	versions := make([]domain.Version, 0)
	for _, v := range fallbackVersions {
		if v.ModelID == modelID {
			versions = append(versions, v)
		}
	}
	return versions
}

func modelsOf(models []domain.Model, brandID int64) bool {
	for _, m := range models {
		if m.BrandID != brandID {
			return false
		}
	}
	return true
}

func versionsOf(versions []domain.Version, modelID int64) bool {
	for _, v := range versions {
		if v.ModelID != modelID {
			return false
		}
	}
	return true
}

func cachedNotice(offline bool) domain.Notice {
	if offline {
		return domain.NoticeOfflineSavedData
	}
	return domain.NoticeNone
}

func offlineNotice(n int) domain.Notice {
	if n == 0 {
		return domain.NoticeNoData
	}
	return domain.NoticeOfflineSavedData
}
