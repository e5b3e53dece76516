package confirm_quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/integrations/mailer"
	"github.com/m04kA/SMC-QuoteService/internal/service/guard"
	"github.com/m04kA/SMC-QuoteService/internal/service/pricing"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type staticStore struct{ quote domain.Quote }

func (s staticStore) Snapshot(context.Context, string) domain.Quote { return s.quote }

type fakeMailer struct {
	sent []mailer.Message
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type emailMetrics struct{ outcomes []string }

func (m *emailMetrics) ObserveEmail(kind, outcome string) { m.outcomes = append(m.outcomes, kind+":"+outcome) }

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func fullQuote() domain.Quote {
	version := "Highline Full"
	plan, _ := domain.FindPlan("plan2")
	return domain.Quote{
		Car: &domain.CarData{
			BrandID: 3, Brand: "Volkswagen", ModelID: 30, Model: "Amarok", Version: &version,
			Year: 2018, GNC: true, Usage: domain.UsageParticular,
		},
		Personal: &domain.PersonalData{
			FirstName: "Lucía", LastName: "Fernández", Email: "lucia@example.com", Phone: "221 555 0101",
			PostalCode: "B1900", Locality: "La Plata",
		},
		Plan: &plan,
	}
}

func newTestUseCase(q domain.Quote, m *fakeMailer, metrics *emailMetrics) *UseCase {
	store := staticStore{quote: q}
	uc := NewUseCase(store, pricing.NewEngine(fixedClock{now: now}), m, metrics, "d-quote", nopLogger{})
	uc.timeProvider = fixedClock{now: now}
	return uc
}

func TestExecute(t *testing.T) {
	m := &fakeMailer{}
	metrics := &emailMetrics{}
	uc := newTestUseCase(fullQuote(), m, metrics)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1"})
	require.NoError(t, err)

	// 37000 + 1500 (8 лет) + 5000 + 3000 + 3500 + 2000
	assert.Equal(t, 52000, resp.MonthlyPrice)

	require.Len(t, m.sent, 1)
	msg := m.sent[0]
	assert.Equal(t, "d-quote", msg.TemplateID)
	assert.Equal(t, "lucia@example.com", msg.ToEmail)
	assert.Equal(t, "Lucía Fernández", msg.ToName)

	assert.Equal(t, map[string]string{
		"email":             "lucia@example.com",
		"customer_name":     "Lucía Fernández",
		"plan_name":         "Plan Intermedio",
		"plan_price":        "$52.000/mes",
		"car_brand":         "Volkswagen",
		"car_model":         "Amarok",
		"car_version":       "Highline Full",
		"car_year":          "2018",
		"car_usage":         "Particular",
		"customer_phone":    "221 555 0101",
		"customer_location": "La Plata (B1900)",
		"request_date":      "19/10/2026",
		"features_list":     "Todo Riesgo con Franquicia, Robo Total, Incendio Total, Granizo, Asistencia 24hs",
		"subject":           "✅ Cotización Aprobada - Tu Seguro de Auto",
	}, msg.Params)
	assert.Equal(t, msg.Params, resp.Params)
	assert.Equal(t, []string{"quote:ok"}, metrics.outcomes)
}

func TestExecute_PriceMatchesPreview(t *testing.T) {
	uc := newTestUseCase(fullQuote(), &fakeMailer{}, &emailMetrics{})

	preview, err := uc.Preview(context.Background(), &Request{SessionID: "s1"})
	require.NoError(t, err)
	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1"})
	require.NoError(t, err)

	assert.Equal(t, preview.MonthlyPrice, resp.MonthlyPrice)
	assert.Equal(t, preview.Params, resp.Params)
}

func TestExecute_RedirectsToFirstIncompleteStep(t *testing.T) {
	q := fullQuote()
	q.Plan = nil
	m := &fakeMailer{}
	uc := newTestUseCase(q, m, &emailMetrics{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1"})

	var redirect *guard.RedirectError
	require.ErrorAs(t, err, &redirect)
	assert.Equal(t, domain.StepPlan, redirect.RedirectTo)
	assert.Empty(t, m.sent)
}

// resettingStore отдаёт заявку один раз, дальше сессия как после DELETE
type resettingStore struct {
	quote     domain.Quote
	snapshots int
}

func (s *resettingStore) Snapshot(context.Context, string) domain.Quote {
	s.snapshots++
	if s.snapshots > 1 {
		return domain.Quote{}
	}
	return s.quote
}

func TestExecute_ResetAfterFirstReadDoesNotPanic(t *testing.T) {
	store := &resettingStore{quote: fullQuote()}
	m := &fakeMailer{}
	uc := NewUseCase(store, pricing.NewEngine(fixedClock{now: now}), m, &emailMetrics{}, "d-quote", nopLogger{})
	uc.timeProvider = fixedClock{now: now}

	var resp *Response
	var err error
	require.NotPanics(t, func() {
		resp, err = uc.Execute(context.Background(), &Request{SessionID: "s1"})
	})
	require.NoError(t, err)

	assert.Equal(t, 1, store.snapshots)
	assert.Equal(t, 52000, resp.MonthlyPrice)
	require.Len(t, m.sent, 1)
	assert.Equal(t, "lucia@example.com", m.sent[0].ToEmail)

	// следующий запрос видит пустую сессию и уходит на первый шаг
	_, err = uc.Preview(context.Background(), &Request{SessionID: "s1"})
	var redirect *guard.RedirectError
	require.ErrorAs(t, err, &redirect)
	assert.Equal(t, domain.StepCar, redirect.RedirectTo)
}

func TestExecute_SendFailure(t *testing.T) {
	metrics := &emailMetrics{}
	uc := newTestUseCase(fullQuote(), &fakeMailer{err: errors.New("connection refused")}, metrics)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1"})

	assert.ErrorIs(t, err, ErrSendFailed)
	assert.Equal(t, []string{"quote:error"}, metrics.outcomes)
}

func TestBuildParams_ComercialUsageLabel(t *testing.T) {
	q := fullQuote()
	q.Car.Usage = domain.UsageComercial
	q.Car.Version = nil

	params := BuildParams(q, 26000, now)

	assert.Equal(t, "Comercial", params["car_usage"])
	assert.Equal(t, "", params["car_version"])
	assert.Equal(t, "$26.000/mes", params["plan_price"])
}
