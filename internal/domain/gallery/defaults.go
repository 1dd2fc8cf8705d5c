package gallery

// Defaults — вітринні картки, коли віддалений лістинг недоступний або
// дзеркало не налаштоване.
func Defaults() []Item {
	return []Item{
		{ID: "1", ImageURL: "https://picsum.photos/id/102/400/400", Title: "Малинові свічки"},
		{ID: "2", ImageURL: "https://picsum.photos/id/225/400/400", Title: "Сублімація на чашці"},
		{ID: "3", ImageURL: "https://picsum.photos/id/364/400/400", Title: "Брелоки з епоксидки"},
		{ID: "4", ImageURL: "https://picsum.photos/id/175/400/400", Title: "Гіпсова фігурка"},
		{ID: "5", ImageURL: "https://picsum.photos/id/106/400/400", Title: "Вишивка на худі"},
		{ID: "6", ImageURL: "https://picsum.photos/id/250/400/400", Title: "Пластиковий декор"},
	}
}
