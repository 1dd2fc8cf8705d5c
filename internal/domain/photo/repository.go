package photo

// Repository — колекція фото в локальному сховищі. Replace повністю
// перезаписує колекцію, Probe перевіряє квоту пробним записом кандидата.
// Вичерпання квоти реалізація повертає як ErrStorageFull.
type Repository interface {
	List() ([]Photo, error)
	Replace([]Photo) error
	Probe([]Photo) error
}
