package content

// Repository — персистентність контенту. Реалізація живе поверх
// локального key/value сховища, в тестах підміняється фейком.
type Repository interface {
	Load() (*Content, error)
	Save(*Content) error
}
