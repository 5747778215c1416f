// Package memory реализует репозитории поверх map в памяти. Используется
// когда DATABASE_URI не задан, а также в тестах сервисного слоя.
// Ключи назначаются как max+1, первая запись получает id 1.
package memory

func nextID[V any](m map[int64]V) int64 {
	var max int64
	for id := range m {
		if id > max {
			max = id
		}
	}
	return max + 1
}
