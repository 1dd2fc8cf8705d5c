package content

import (
	"github.com/8Gelos8/DreamPrintUA/internal/domain/photo"
)

// Category — фіксований перелік категорій товарів.
type Category string

const (
	CategoryPrinting Category = "printing"
	CategoryHandmade Category = "handmade"
	CategorySouvenir Category = "souvenir"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryPrinting, CategoryHandmade, CategorySouvenir:
		return true
	}
	return false
}

type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Category    Category `json:"category"`
	Price       string   `json:"price,omitempty"`
}

// PriceItem не має ідентифікатора: позиція в списку і є ідентичністю,
// редагування йде за індексом.
type PriceItem struct {
	Service string `json:"service"`
	Price   string `json:"price"`
	Details string `json:"details"`
}

// Content — повний редагований контент сайту. Зберігається цілком під
// одним ключем і цілком перезаписується при кожній зміні.
type Content struct {
	HomeTitle       string        `json:"homeTitle"`
	HomeDescription string        `json:"homeDescription"`
	AboutText       string        `json:"aboutText"`
	Products        []Product     `json:"products"`
	Prices          []PriceItem   `json:"prices"`
	Photos          []photo.Photo `json:"photos,omitempty"`
}

// Patch — часткове оновлення контенту: nil-поля не змінюються, задані
// замінюють значення цілком (shallow merge, без злиття колекцій).
type Patch struct {
	HomeTitle       *string      `json:"homeTitle,omitempty"`
	HomeDescription *string      `json:"homeDescription,omitempty"`
	AboutText       *string      `json:"aboutText,omitempty"`
	Products        *[]Product   `json:"products,omitempty"`
	Prices          *[]PriceItem `json:"prices,omitempty"`
}
