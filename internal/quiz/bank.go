package quiz

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
)

// Bank - проиндексированный набор вопросов (категория, сложность) -> вопросы
type Bank struct {
	mu   sync.RWMutex
	data *parsed
}

func Parse(r io.Reader) (*Bank, error) {
	p, err := parse(r)
	if err != nil {
		return nil, err
	}
	return &Bank{data: p}, nil
}

func Load(path string) (*Bank, error) {
	p, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load questions %s: %w", path, err)
	}
	return &Bank{data: p}, nil
}

func LoadDefault() (*Bank, error) {
	p, err := loadDefault()
	if err != nil {
		return nil, fmt.Errorf("load default questions: %w", err)
	}
	return &Bank{data: p}, nil
}

// LoadOrDefault - если файла нет, используем встроенный набор (demo)
func LoadOrDefault(path string) (*Bank, error) {
	p, err := loadFile(path)
	if err == nil {
		slog.Info("questions loaded", "file", path, "count", p.total, "skipped", p.skipped)
		return &Bank{data: p}, nil
	}
	if !isNotExist(err) {
		return nil, fmt.Errorf("load questions %s: %w", path, err)
	}

	slog.Warn("questions file not found, using built-in set", "file", path)
	return LoadDefault()
}

// Reload - перечитать файл. При ошибке старый набор остаётся.
func (b *Bank) Reload(path string) error {
	p, err := loadFile(path)
	if err != nil {
		return fmt.Errorf("reload questions %s: %w", path, err)
	}

	b.mu.Lock()
	b.data = p
	b.mu.Unlock()
	return nil
}

// Questions - копия списка, можно мешать
func (b *Bank) Questions(slug string, diff Difficulty) []Question {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return slices.Clone(b.data.byKey[key{slug: slug, diff: diff}])
}

func (b *Bank) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.data.total
}

func (b *Bank) Skipped() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.data.skipped
}
