package domain

import "errors"

// ErrCategoryNotFound возвращается при неизвестной категории услуг
var ErrCategoryNotFound = errors.New("domain: category not found")

// Category описывает категорию услуг из статического каталога
// Каталог принадлежит внешней подсистеме; движку нужна только длительность
type Category struct {
	ID            int64
	Name          string
	DurationHours int
}

// catalog статический справочник категорий с оценочной длительностью работ
var catalog = map[int64]Category{
	1: {ID: 1, Name: "cleaning_basic", DurationHours: 2},
	2: {ID: 2, Name: "cleaning_deep", DurationHours: 4},
	3: {ID: 3, Name: "plumbing", DurationHours: 1},
	4: {ID: 4, Name: "electrical", DurationHours: 1},
	5: {ID: 5, Name: "painting", DurationHours: 8},
	6: {ID: 6, Name: "appliance_repair", DurationHours: 2},
	7: {ID: 7, Name: "assembly", DurationHours: 3},
	8: {ID: 8, Name: "moving_help", DurationHours: 4},
}

// CategoryByID возвращает категорию из каталога
func CategoryByID(id int64) (Category, error) {
	c, ok := catalog[id]
	if !ok {
		return Category{}, ErrCategoryNotFound
	}
	return c, nil
}

// CategoryDurationMinutes возвращает оценочную длительность категории в минутах
func CategoryDurationMinutes(id int64) (int, error) {
	c, err := CategoryByID(id)
	if err != nil {
		return 0, err
	}
	return c.DurationHours * 60, nil
}
