package photo

import "errors"

var (
	// ErrFileTooLarge — файл більший за стелю 10 MiB, відхиляється до декодування.
	ErrFileTooLarge = errors.New("file exceeds the size limit")

	// ErrStorageFull — локальне сховище переповнене навіть після виселення
	// найстаріших фото. Користувачу радимо видалити старі фото.
	ErrStorageFull = errors.New("local storage is full, delete old photos")

	ErrDecode = errors.New("cannot decode image")
)
