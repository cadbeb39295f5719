package domain

// Category описывает категорию товара. Используется и как ссылка из
// Product.Category, и как измерение multi-select фильтра. Ссылочная
// целостность не проверяется: осиротевшая ссылка просто не дает совпадений.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func NewCategory(id string, name string, icon string) *Category {
	return &Category{
		ID:   id,
		Name: name,
		Icon: icon,
	}
}
