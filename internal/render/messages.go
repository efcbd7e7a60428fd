package render

import (
	"fmt"
	"sort"
)

// DefaultLocale is used when no locale is configured
const DefaultLocale = "en"

// Messages holds every user-facing string for one locale
type Messages struct {
	InputFormat   string
	Prompt        string
	NeedTwo       string
	NeedNumbers   string
	UserFleet     string
	ComputerFleet string

	Miss      string
	Hit       string
	Destroyed string

	OutOfBounds     string
	AlreadyTargeted string

	UserMove     string // format with row and column, 1-indexed
	ComputerMove string // format with row and column, 1-indexed

	UserWon     string
	ComputerWon string
}

var catalog = map[string]Messages{
	"en": {
		InputFormat:     " Input format: x y, where x is the row number and y is the column number",
		Prompt:          "Your move: ",
		NeedTwo:         " Enter 2 coordinates! ",
		NeedNumbers:     " Enter numbers! ",
		UserFleet:       "User fleet:",
		ComputerFleet:   "Computer fleet:",
		Miss:            "Miss!",
		Hit:             "Ship hit!",
		Destroyed:       "Ship destroyed!",
		OutOfBounds:     "Coordinates out of range!",
		AlreadyTargeted: "You have already shot at this cell!",
		UserMove:        "User move: %d %d",
		ComputerMove:    "Computer move: %d %d",
		UserWon:         "User wins!",
		ComputerWon:     "Computer wins!",
	},
	"ru": {
		InputFormat:     " Формат ввода: x y, где x - номер строки, y - номер столбца",
		Prompt:          "Ваш ход: ",
		NeedTwo:         " Введите 2 координаты! ",
		NeedNumbers:     " Введите числа! ",
		UserFleet:       "Флот пользователя:",
		ComputerFleet:   "Флот компьютера:",
		Miss:            "Мимо!",
		Hit:             "Корабль подбит!",
		Destroyed:       "Корабль уничтожен!",
		OutOfBounds:     "Некорректный диапазон ввода!",
		AlreadyTargeted: "Вы уже стреляли в эту клетку!",
		UserMove:        "Ход пользователя: %d %d",
		ComputerMove:    "Ход компьютера: %d %d",
		UserWon:         "Пользователь выиграл!",
		ComputerWon:     "Компьютер выиграл!",
	},
}

// LookupMessages returns the catalog for locale
func LookupMessages(locale string) (Messages, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	m, ok := catalog[locale]
	if !ok {
		return Messages{}, fmt.Errorf("unsupported locale %q (available: %v)", locale, Locales())
	}
	return m, nil
}

// Locales returns the supported locale codes in sorted order
func Locales() []string {
	locales := make([]string, 0, len(catalog))
	for l := range catalog {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	return locales
}
