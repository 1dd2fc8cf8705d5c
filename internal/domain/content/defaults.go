package content

// Default — контент нового сайту, поки власник нічого не редагував.
func Default() Content {
	return Content{
		HomeTitle:       "DreamPrintUA",
		HomeDescription: "Створюємо мрії з якістю та любов'ю",
		AboutText:       "Ми спеціалізуємося на персоналізованому друці та handmade виробах",
		Products:        []Product{},
		Prices:          []PriceItem{},
	}
}

// ShowcaseProducts — вітринний каталог для сторінок, коли власник ще не
// додав власних товарів. Не зберігається, використовується лише для показу.
func ShowcaseProducts() []Product {
	return []Product{
		{
			ID:          "p1",
			Title:       "Сублімаційний друк",
			Description: "Друк будь-яких зображень на футболках, чашках, подушках та пазлах. Висока стійкість до прання.",
			ImageURL:    "https://picsum.photos/id/400/600/400",
			Category:    CategoryPrinting,
		},
		{
			ID:          "p2",
			Title:       "Вироби з епоксидної смоли",
			Description: "Унікальні підвіски, підставки, годинники та брелоки ручної роботи.",
			ImageURL:    "https://picsum.photos/id/1069/600/400",
			Category:    CategoryHandmade,
		},
		{
			ID:          "p3",
			Title:       "Ароматичні свічки",
			Description: "Соєві свічки з неймовірними ароматами та дерев'яним гнотом.",
			ImageURL:    "https://picsum.photos/id/678/600/400",
			Category:    CategoryHandmade,
		},
		{
			ID:          "p4",
			Title:       "Вишивка",
			Description: "Машинна вишивка на одязі та рушниках. Індивідуальні дизайни.",
			ImageURL:    "https://picsum.photos/id/324/600/400",
			Category:    CategoryPrinting,
		},
		{
			ID:          "p5",
			Title:       "Гіпсові фігурки",
			Description: "Декор для дому, кашпо для сукулентів та свічники з гіпсу.",
			ImageURL:    "https://picsum.photos/id/1070/600/400",
			Category:    CategorySouvenir,
		},
		{
			ID:          "p6",
			Title:       "3D Фігурки",
			Description: "Друк фігурок та деталей з пластику на 3D принтері.",
			ImageURL:    "https://picsum.photos/id/1060/600/400",
			Category:    CategorySouvenir,
		},
	}
}

// ShowcasePrices — вітринний прайс-лист за замовчуванням.
func ShowcasePrices() []PriceItem {
	return []PriceItem{
		{Service: "Друк на чашці (біла)", Price: "250 грн", Details: "Включно з чашкою"},
		{Service: "Друк на футболці (А4)", Price: "450 грн", Details: "Бавовна/Поліестер"},
		{Service: "Брелок (епоксидна смола)", Price: "від 150 грн", Details: "Залежить від складності"},
		{Service: "Свічка у гіпсі (100мл)", Price: "300 грн", Details: "Соєвий віск"},
		{Service: "Машинна вишивка (лого)", Price: "від 200 грн", Details: "Розробка програми + вишивка"},
		{Service: "3D Друк (година)", Price: "50 грн", Details: "PLA/PETG пластик"},
	}
}
