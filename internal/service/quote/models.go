package quote

// Entity ключ сущности заявки в хранилище сессии
type Entity string

const (
	EntityCar      Entity = "carData"
	EntityPersonal Entity = "personalData"
	EntityPlan     Entity = "planData"
	EntityPayment  Entity = "paymentData"
)

// Change уведомление подписчика об изменении заявки
type Change struct {
	SessionID string
	// Entity пустая при сбросе сессии
	Entity Entity
	Reset  bool
}

// Subscriber вызывается синхронно после каждого изменения
type Subscriber func(Change)
