package quote

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// state зеркало заявки в памяти процесса
type state struct {
	mu       sync.RWMutex
	car      *domain.CarData
	personal *domain.PersonalData
	plan     *domain.PlanData
	payment  *domain.PaymentData
}

// Service хранилище заявки: состояние в памяти процесса плюс немедленная запись в хранилище сессии.
// Чтение отдаёт последнее записанное значение, даже если запись в хранилище не удалась.
type Service struct {
	cache  Cache
	logger Logger

	states *cache.Cache
	loadMu sync.Mutex

	subMu       sync.RWMutex
	subscribers []Subscriber
}

func NewService(storageCache Cache, ttl time.Duration, logger Logger) *Service {
	cleanup := ttl / 2
	if cleanup <= 0 {
		cleanup = time.Minute
	}
	return &Service{
		cache:  storageCache,
		logger: logger,
		states: cache.New(ttl, cleanup),
	}
}

// Subscribe регистрирует подписчика на изменения всех сессий
func (s *Service) Subscribe(fn Subscriber) {
	s.subMu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.subMu.Unlock()
}

func (s *Service) GetCarData(ctx context.Context, sessionID string) *domain.CarData {
	st := s.state(ctx, sessionID)
	st.mu.RLock()
	defer st.mu.RUnlock()
	return cloneCar(st.car)
}

func (s *Service) SetCarData(ctx context.Context, sessionID string, car domain.CarData) {
	st := s.state(ctx, sessionID)
	st.mu.Lock()
	st.car = cloneCar(&car)
	st.mu.Unlock()

	s.persist(ctx, sessionID, EntityCar, car)
}

func (s *Service) GetPersonalData(ctx context.Context, sessionID string) *domain.PersonalData {
	st := s.state(ctx, sessionID)
	st.mu.RLock()
	defer st.mu.RUnlock()
	return clonePersonal(st.personal)
}

func (s *Service) SetPersonalData(ctx context.Context, sessionID string, personal domain.PersonalData) {
	st := s.state(ctx, sessionID)
	st.mu.Lock()
	st.personal = clonePersonal(&personal)
	st.mu.Unlock()

	s.persist(ctx, sessionID, EntityPersonal, personal)
}

func (s *Service) GetPlanData(ctx context.Context, sessionID string) *domain.PlanData {
	st := s.state(ctx, sessionID)
	st.mu.RLock()
	defer st.mu.RUnlock()
	return clonePlan(st.plan)
}

func (s *Service) SetPlanData(ctx context.Context, sessionID string, plan domain.PlanData) {
	st := s.state(ctx, sessionID)
	st.mu.Lock()
	st.plan = clonePlan(&plan)
	st.mu.Unlock()

	s.persist(ctx, sessionID, EntityPlan, plan)
}

func (s *Service) GetPaymentData(ctx context.Context, sessionID string) *domain.PaymentData {
	st := s.state(ctx, sessionID)
	st.mu.RLock()
	defer st.mu.RUnlock()
	return clonePayment(st.payment)
}

func (s *Service) SetPaymentData(ctx context.Context, sessionID string, payment domain.PaymentData) {
	st := s.state(ctx, sessionID)
	st.mu.Lock()
	st.payment = clonePayment(&payment)
	st.mu.Unlock()

	s.persist(ctx, sessionID, EntityPayment, payment)
}

// Snapshot копия всех сущностей заявки
func (s *Service) Snapshot(ctx context.Context, sessionID string) domain.Quote {
	st := s.state(ctx, sessionID)
	st.mu.RLock()
	defer st.mu.RUnlock()
	return domain.Quote{
		Car:      cloneCar(st.car),
		Personal: clonePersonal(st.personal),
		Plan:     clonePlan(st.plan),
		Payment:  clonePayment(st.payment),
	}
}

// Reset очищает все сущности и всё хранилище сессии, включая кэши справочников
func (s *Service) Reset(ctx context.Context, sessionID string) {
	s.loadMu.Lock()
	s.states.SetDefault(sessionID, &state{})
	s.loadMu.Unlock()

	s.cache.Clear(ctx, sessionID)
	s.logger.Info("Quote session reset: session=%s", sessionID)

	s.notify(Change{SessionID: sessionID, Reset: true})
}

func (s *Service) persist(ctx context.Context, sessionID string, entity Entity, value interface{}) {
	s.cache.Save(ctx, sessionID, string(entity), value)
	s.notify(Change{SessionID: sessionID, Entity: entity})
}

func (s *Service) notify(change Change) {
	s.subMu.RLock()
	subscribers := make([]Subscriber, len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.subMu.RUnlock()

	for _, fn := range subscribers {
		fn(change)
	}
}

// state возвращает зеркало сессии, при первом обращении загружая его из хранилища
func (s *Service) state(ctx context.Context, sessionID string) *state {
	if v, ok := s.states.Get(sessionID); ok {
		return v.(*state)
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if v, ok := s.states.Get(sessionID); ok {
		return v.(*state)
	}

	st := &state{}
	var (
		car      domain.CarData
		personal domain.PersonalData
		plan     domain.PlanData
		payment  domain.PaymentData
	)
	if s.cache.Load(ctx, sessionID, string(EntityCar), &car) {
		st.car = &car
	}
	if s.cache.Load(ctx, sessionID, string(EntityPersonal), &personal) {
		st.personal = &personal
	}
	if s.cache.Load(ctx, sessionID, string(EntityPlan), &plan) {
		st.plan = &plan
	}
	if s.cache.Load(ctx, sessionID, string(EntityPayment), &payment) {
		st.payment = &payment
	}

	s.states.SetDefault(sessionID, st)
	return st
}

func cloneCar(c *domain.CarData) *domain.CarData {
	if c == nil {
		return nil
	}
	out := *c
	if c.VersionID != nil {
		id := *c.VersionID
		out.VersionID = &id
	}
	if c.Version != nil {
		v := *c.Version
		out.Version = &v
	}
	return &out
}

func clonePersonal(p *domain.PersonalData) *domain.PersonalData {
	if p == nil {
		return nil
	}
	out := *p
	return &out
}

func clonePlan(p *domain.PlanData) *domain.PlanData {
	if p == nil {
		return nil
	}
	out := *p
	if p.Features != nil {
		out.Features = append([]string(nil), p.Features...)
	}
	return &out
}

func clonePayment(p *domain.PaymentData) *domain.PaymentData {
	if p == nil {
		return nil
	}
	out := *p
	return &out
}
