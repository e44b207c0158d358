package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Elena5577/quiz-telegram-bot/internal/quiz"
)

// Unique для inline-кнопок. Telebot добавляет их к callback data сам.
const (
	UniqueMenu = "menu"
	UniqueInfo = "info"
	UniqueCat  = "cat"
	UniqueDiff = "diff"
	UniqueAns  = "ans"
	UniqueHint = "hint"
	UniqueNext = "next"
)

var ErrBadCallback = errors.New("bad callback data")

// AnswerData - "roundID|index". Текст варианта в data не кладём: лимит Telegram 64 байта.
func AnswerData(roundID uint64, idx int) string {
	return fmt.Sprintf("%d|%d", roundID, idx)
}

func ParseAnswerData(data string) (roundID uint64, idx int, err error) {
	rid, sidx, ok := strings.Cut(data, "|")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCallback, data)
	}
	roundID, err = strconv.ParseUint(rid, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCallback, data)
	}
	idx, err = strconv.Atoi(sidx)
	if err != nil || idx < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCallback, data)
	}
	return roundID, idx, nil
}

func RoundData(roundID uint64) string {
	return strconv.FormatUint(roundID, 10)
}

func ParseRoundData(data string) (uint64, error) {
	id, err := strconv.ParseUint(data, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadCallback, data)
	}
	return id, nil
}

// ChoiceData - "slug|difficulty" для выбора сложности и "следующего вопроса"
func ChoiceData(slug string, diff quiz.Difficulty) string {
	return slug + "|" + string(diff)
}

func ParseChoiceData(data string) (string, quiz.Difficulty, error) {
	slug, rawDiff, ok := strings.Cut(data, "|")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrBadCallback, data)
	}
	if _, ok := quiz.CategoryBySlug(slug); !ok {
		return "", "", fmt.Errorf("%w: unknown category %q", ErrBadCallback, slug)
	}
	diff, ok := quiz.ParseDifficulty(rawDiff)
	if !ok {
		return "", "", fmt.Errorf("%w: unknown difficulty %q", ErrBadCallback, rawDiff)
	}
	return slug, diff, nil
}
