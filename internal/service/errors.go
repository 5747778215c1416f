package service

import "errors"

// ErrInvalidArgument возвращается до любого обращения к хранилищу:
// nil-сущность, неположительный id, несовпадение id при обновлении.
// Промах по ключу ошибкой не считается и отдаётся как found=false.
var ErrInvalidArgument = errors.New("invalid argument")
