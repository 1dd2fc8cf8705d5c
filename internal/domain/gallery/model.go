package gallery

// Item — одна картка галереї. Local позначає фото з локальної колекції
// власника (їх можна видаляти), решта — з віддаленого лістингу або
// вітринних заглушок.
type Item struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
	Title    string `json:"title"`
	Local    bool   `json:"local,omitempty"`
}
