package carform

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/catalog"
)

// Service форма автомобиля (шаг 1): предзаполнение из заявки, каскадные сбросы и отправка
type Service struct {
	catalog Catalog
	store   QuoteStore
	cache   Cache
	logger  Logger
}

func NewService(catalog Catalog, store QuoteStore, cache Cache, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		store:   store,
		cache:   cache,
		logger:  logger,
	}
}

// Load текущее состояние формы. Первая загрузка в сессии предзаполняет форму из сохранённых данных.
func (s *Service) Load(ctx context.Context, sessionID string, offline bool) *Form {
	var form *Form
	if s.cache.Load(ctx, sessionID, keyForm, &form) && form != nil {
		return form
	}

	form = s.prefill(ctx, sessionID, offline)
	s.cache.Save(ctx, sessionID, keyForm, form)
	return form
}

// Invalidate сбрасывает сохранённую форму, следующий Load заново предзаполнит её из заявки.
// Вызывается, когда данные автомобиля в заявке заменены в обход формы.
func (s *Service) Invalidate(ctx context.Context, sessionID string) {
	s.cache.Save(ctx, sessionID, keyForm, (*Form)(nil))
}

// Apply применяет изменение поля. Сбросы зависимых полей выполняются в том же вызове.
func (s *Service) Apply(ctx context.Context, sessionID string, ev Event, offline bool) (*Form, error) {
	form := s.Load(ctx, sessionID, offline)

	var err error
	switch ev.Field {
	case FieldBrand:
		err = s.selectBrand(ctx, sessionID, form, ev.ID, offline)
	case FieldModel:
		err = s.selectModel(ctx, sessionID, form, ev.ID, offline)
	case FieldVersion:
		err = selectVersion(form, ev.ID, ev.Value)
	case FieldYear:
		if ev.Year < 0 {
			return nil, fmt.Errorf("%w: year %d", ErrInvalidValue, ev.Year)
		}
		form.Year = ev.Year
		if form.Model != nil {
			s.loadVersions(ctx, sessionID, form, nil, offline)
		}
	case FieldGNC:
		form.GNC = ev.GNC
	case FieldUsage:
		usage := domain.Usage(strings.ToLower(strings.TrimSpace(ev.Value)))
		if usage != domain.UsageParticular && usage != domain.UsageComercial {
			return nil, fmt.Errorf("%w: usage %q", ErrInvalidValue, ev.Value)
		}
		form.Usage = usage
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, ev.Field)
	}
	if err != nil {
		return nil, err
	}

	s.cache.Save(ctx, sessionID, keyForm, form)
	return form, nil
}

// Submit переносит форму в заявку
func (s *Service) Submit(ctx context.Context, sessionID string, offline bool) (domain.CarData, error) {
	form := s.Load(ctx, sessionID, offline)

	car, ok := form.carData()
	if !ok {
		return domain.CarData{}, ErrFormIncomplete
	}

	s.store.SetCarData(ctx, sessionID, car)
	// форма совпадает с только что сохранёнными данными и остаётся актуальной
	s.cache.Save(ctx, sessionID, keyForm, form)
	s.logger.Info("Car data submitted: session=%s brand=%s model=%s year=%d", sessionID, car.Brand, car.Model, car.Year)
	return car, nil
}

func (s *Service) prefill(ctx context.Context, sessionID string, offline bool) *Form {
	form := &Form{}

	saved := s.store.GetCarData(ctx, sessionID)
	if saved == nil {
		return form
	}

	form.Year = saved.Year
	form.GNC = saved.GNC
	form.Usage = saved.Usage

	brands := s.catalog.Brands(ctx, catalog.BrandsRequest{SessionID: sessionID, Offline: offline})
	form.Notice = brands.Notice
	for _, b := range brands.Items {
		if b.ID == saved.BrandID {
			brand := b
			form.Brand = &brand
			break
		}
	}
	if form.Brand == nil {
		return form
	}

	s.loadModels(ctx, sessionID, form, saved, offline)
	return form
}

func (s *Service) selectBrand(ctx context.Context, sessionID string, form *Form, id int64, offline bool) error {
	var brand *domain.Brand
	if id != 0 {
		brands := s.catalog.Brands(ctx, catalog.BrandsRequest{SessionID: sessionID, Offline: offline})
		for _, b := range brands.Items {
			if b.ID == id {
				found := b
				brand = &found
				break
			}
		}
		if brand == nil {
			return fmt.Errorf("%w: brand %d", ErrUnknownOption, id)
		}
		form.Notice = brands.Notice
	}

	form.BrandModifiedByUser = true
	form.Brand = brand
	form.Model = nil
	form.Models = nil
	clearVersion(form)
	form.Versions = nil

	if brand != nil {
		s.loadModels(ctx, sessionID, form, nil, offline)
	}
	return nil
}

func (s *Service) selectModel(ctx context.Context, sessionID string, form *Form, id int64, offline bool) error {
	if form.Brand == nil {
		return ErrParentRequired
	}

	var model *domain.Model
	if id != 0 {
		for _, m := range form.Models {
			if m.ID == id {
				found := m
				model = &found
				break
			}
		}
		if model == nil {
			return fmt.Errorf("%w: model %d", ErrUnknownOption, id)
		}
	}

	form.ModelModifiedByUser = true
	form.Model = model
	clearVersion(form)
	form.Versions = nil

	if model != nil {
		s.loadVersions(ctx, sessionID, form, nil, offline)
	}
	return nil
}

// selectVersion выбор из списка по id либо комплектация, введённая вручную
func selectVersion(form *Form, id int64, text string) error {
	if form.Model == nil {
		return ErrParentRequired
	}

	clearVersion(form)
	if id != 0 {
		for _, v := range form.Versions {
			if v.ID == id {
				found := v
				form.Version = &found
				return nil
			}
		}
		return fmt.Errorf("%w: version %d", ErrUnknownOption, id)
	}

	form.VersionText = strings.TrimSpace(text)
	return nil
}

// loadModels загружает модели марки; saved != nil восстанавливает сохранённый выбор
func (s *Service) loadModels(ctx context.Context, sessionID string, form *Form, saved *domain.CarData, offline bool) {
	res := s.catalog.Models(ctx, catalog.ModelsRequest{
		SessionID: sessionID,
		BrandID:   form.Brand.ID,
		BrandName: form.Brand.Name,
		Offline:   offline,
	})
	form.Models = res.Items
	if res.Notice != domain.NoticeNone {
		form.Notice = res.Notice
	}

	if saved == nil {
		return
	}
	model, ok := catalog.RestoreSelection(res.Items, saved.ModelID, form.BrandModifiedByUser,
		func(m domain.Model) int64 { return m.ID })
	if !ok {
		return
	}
	form.Model = &model
	s.loadVersions(ctx, sessionID, form, saved, offline)
}

// loadVersions загружает комплектации модели; saved != nil восстанавливает сохранённый выбор
func (s *Service) loadVersions(ctx context.Context, sessionID string, form *Form, saved *domain.CarData, offline bool) {
	req := catalog.VersionsRequest{
		SessionID: sessionID,
		ModelID:   form.Model.ID,
		ModelName: form.Model.Name,
		Offline:   offline,
	}
	if form.Year != 0 {
		year := form.Year
		req.Year = &year
	}

	res := s.catalog.Versions(ctx, req)
	form.Versions = res.Items
	if res.Notice != domain.NoticeNone {
		form.Notice = res.Notice
	}

	if saved == nil || form.ModelModifiedByUser {
		return
	}
	var savedVersionID int64
	if saved.VersionID != nil {
		savedVersionID = *saved.VersionID
	}
	if v, ok := catalog.RestoreSelection(res.Items, savedVersionID, false,
		func(v domain.Version) int64 { return v.ID }); ok {
		form.Version = &v
		return
	}
	if saved.VersionID == nil && saved.Version != nil {
		form.VersionText = *saved.Version
	}
}

func clearVersion(form *Form) {
	form.Version = nil
	form.VersionText = ""
}

// carData данные автомобиля из формы; false, если обязательные поля не заполнены
func (f *Form) carData() (domain.CarData, bool) {
	if f.Brand == nil || f.Model == nil || f.Year == 0 || f.Usage == "" {
		return domain.CarData{}, false
	}

	car := domain.CarData{
		BrandID: f.Brand.ID,
		Brand:   f.Brand.Name,
		ModelID: f.Model.ID,
		Model:   f.Model.Name,
		Year:    f.Year,
		GNC:     f.GNC,
		Usage:   f.Usage,
	}

	switch {
	case f.Version != nil:
		id, name := f.Version.ID, f.Version.Name
		car.VersionID = &id
		car.Version = &name
	case f.VersionText != "":
		name := f.VersionText
		car.Version = &name
	default:
		return domain.CarData{}, false
	}

	return car, car.IsComplete()
}
