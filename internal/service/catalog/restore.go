package catalog

// RestoreSelection возвращает сохранённый элемент из свежезагруженного списка.
// Восстановление выполняется только если родительское поле не менялось пользователем:
// после ручной смены родителя сохранённый выбор больше не относится к нему.
func RestoreSelection[T any](children []T, savedID int64, parentModifiedByUser bool, id func(T) int64) (T, bool) {
	var zero T
	if parentModifiedByUser || savedID == 0 {
		return zero, false
	}
	for _, child := range children {
		if id(child) == savedID {
			return child, true
		}
	}
	return zero, false
}
