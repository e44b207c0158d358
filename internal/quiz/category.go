package quiz

import "strings"

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty - "Easy ", "HARD" и т.п. тоже принимаем
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case Easy, Medium, Hard:
		return d, true
	}
	return "", false
}

func (d Difficulty) Label() string {
	switch d {
	case Easy:
		return "Лёгкий"
	case Medium:
		return "Средний"
	case Hard:
		return "Сложный"
	}
	return string(d)
}

// Points - базовые очки за правильный ответ
func (d Difficulty) Points() int {
	switch d {
	case Easy:
		return 5
	case Medium:
		return 10
	case Hard:
		return 15
	}
	return 0
}

// Category - категория вопросов.
// Name совпадает с полем category в questions.json.
type Category struct {
	Slug  string
	Title string
	Name  string
}

var Categories = []Category{
	{Slug: "history", Title: "История 📜", Name: "История"},
	{Slug: "geography", Title: "География 🌍", Name: "География"},
	{Slug: "astronomy", Title: "Астрономия 🌌", Name: "Астрономия"},
	{Slug: "biology", Title: "Биология 🧬", Name: "Биология"},
	{Slug: "cinema", Title: "Кино 🎬", Name: "Кино"},
	{Slug: "music", Title: "Музыка 🎵", Name: "Музыка"},
	{Slug: "literature", Title: "Литература 📚", Name: "Литература"},
	{Slug: "science", Title: "Наука 🔬", Name: "Наука"},
	{Slug: "art", Title: "Искусство 🎨", Name: "Искусство"},
	{Slug: "technique", Title: "Техника ⚙️", Name: "Техника"},
}

func CategoryBySlug(slug string) (Category, bool) {
	for _, c := range Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}

func categoryByName(name string) (Category, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryName - русское имя категории, для неизвестного slug возвращает сам slug
func CategoryName(slug string) string {
	if c, ok := CategoryBySlug(slug); ok {
		return c.Name
	}
	return slug
}
