package quiz

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/Elena5577/quiz-telegram-bot/assets"
)

// Question - один вопрос викторины
type Question struct {
	Category   string // slug
	Difficulty Difficulty
	Text       string
	Options    []string
	Answer     string

	// как в файле, нужны для стабильного хэша
	rawCategory   string
	rawDifficulty string
}

// Hash - ключ для учёта использованных вопросов
func (q Question) Hash() string {
	base := q.rawCategory + "|" + q.rawDifficulty + "|" + q.Text
	sum := sha1.Sum([]byte(base))
	return hex.EncodeToString(sum[:])
}

type rawQuestion struct {
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Answer     string   `json:"answer"`
}

type rawFile struct {
	Questions []rawQuestion `json:"questions"`
}

type key struct {
	slug string
	diff Difficulty
}

type parsed struct {
	byKey   map[key][]Question
	total   int
	skipped int
}

func parse(r io.Reader) (*parsed, error) {
	var raw rawFile
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	p := &parsed{byKey: make(map[key][]Question)}

	for _, rq := range raw.Questions {
		cat, ok := categoryByName(strings.TrimSpace(rq.Category))
		if !ok {
			p.skipped++
			continue
		}
		diff, ok := ParseDifficulty(rq.Difficulty)
		if !ok {
			p.skipped++
			continue
		}
		if len(rq.Options) == 0 || rq.Answer == "" || !slices.Contains(rq.Options, rq.Answer) {
			p.skipped++
			continue
		}

		k := key{slug: cat.Slug, diff: diff}
		p.byKey[k] = append(p.byKey[k], Question{
			Category:      cat.Slug,
			Difficulty:    diff,
			Text:          rq.Question,
			Options:       slices.Clone(rq.Options),
			Answer:        rq.Answer,
			rawCategory:   rq.Category,
			rawDifficulty: rq.Difficulty,
		})
		p.total++
	}

	return p, nil
}

func loadFile(path string) (*parsed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parse(f)
}

func loadDefault() (*parsed, error) {
	return parse(bytes.NewReader(assets.DefaultQuestions))
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
