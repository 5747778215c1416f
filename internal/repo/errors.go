package repo

import "errors"

// ErrNotFound возвращают все реализации репозиториев при промахе по ключу.
// Сервисный слой переводит его в found=false, наружу он не выходит.
var ErrNotFound = errors.New("record not found")
